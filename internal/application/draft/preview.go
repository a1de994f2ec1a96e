package draft

import (
	"sync"

	"github.com/google/uuid"

	"github.com/khoahotran/profile-studio/internal/application/service"
)

// PreviewRef identifies a displayable avatar image: either a local blob
// reference or the URL of the persisted avatar.
type PreviewRef string

// Previewer turns a local file into a preview reference without any network call.
type Previewer interface {
	Create(file service.AvatarFile) (PreviewRef, error)
	Release(ref PreviewRef)
}

// BlobPreviewer keeps previews in memory under "blob:<uuid>" references.
// It is safe for concurrent use.
type BlobPreviewer struct {
	mu    sync.Mutex
	blobs map[PreviewRef]service.AvatarFile
}

func NewBlobPreviewer() *BlobPreviewer {
	return &BlobPreviewer{blobs: make(map[PreviewRef]service.AvatarFile)}
}

func (p *BlobPreviewer) Create(file service.AvatarFile) (PreviewRef, error) {
	ref := PreviewRef("blob:" + uuid.NewString())
	p.mu.Lock()
	p.blobs[ref] = file
	p.mu.Unlock()
	return ref, nil
}

func (p *BlobPreviewer) Release(ref PreviewRef) {
	p.mu.Lock()
	delete(p.blobs, ref)
	p.mu.Unlock()
}

// Resolve returns the file behind a live reference.
func (p *BlobPreviewer) Resolve(ref PreviewRef) (service.AvatarFile, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	f, ok := p.blobs[ref]
	return f, ok
}

// Live reports how many references have not been released.
func (p *BlobPreviewer) Live() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.blobs)
}
