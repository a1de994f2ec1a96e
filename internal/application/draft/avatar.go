package draft

import (
	"bytes"
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/gabriel-vasile/mimetype"
	"go.uber.org/zap"

	"github.com/khoahotran/profile-studio/internal/application/service"
	"github.com/khoahotran/profile-studio/pkg/logger"
)

// AvatarPipeline implements the select-then-commit avatar flow. It never
// touches the profile draft: a committed avatar lives only in the remote store.
// Commit may run on another goroutine than Select.
type AvatarPipeline struct {
	gateway   service.ProfileGateway
	previewer Previewer
	logger    logger.Logger

	mu      sync.Mutex
	pending *service.AvatarFile
	preview PreviewRef
	// owned is set when preview came from previewer and must be released.
	owned bool

	committing atomic.Bool
}

func NewAvatarPipeline(gw service.ProfileGateway, previewer Previewer, log logger.Logger) *AvatarPipeline {
	return &AvatarPipeline{gateway: gw, previewer: previewer, logger: log}
}

// Seed shows the persisted avatar until a local file is selected.
func (a *AvatarPipeline) Seed(url string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.pending != nil {
		return
	}
	a.releaseLocked()
	a.preview = PreviewRef(url)
}

// Select holds file for a later Commit and returns its local preview. A
// previous selection that was not committed is replaced.
func (a *AvatarPipeline) Select(file service.AvatarFile) (PreviewRef, error) {
	if file.ContentType == "" {
		file.ContentType = mimetype.Detect(file.Data).String()
	}
	file.Data = append([]byte(nil), file.Data...)

	ref, err := a.previewer.Create(file)
	if err != nil {
		return "", fmt.Errorf("create avatar preview: %w", err)
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	if a.pending != nil {
		a.logger.Debug("Replacing pending avatar selection", zap.String("file_name", a.pending.FileName))
	}
	a.releaseLocked()
	a.pending = &file
	a.preview = ref
	a.owned = true
	return ref, nil
}

func (a *AvatarPipeline) Preview() PreviewRef {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.preview
}

// Pending returns the selection waiting for Commit.
func (a *AvatarPipeline) Pending() (service.AvatarFile, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.pending == nil {
		return service.AvatarFile{}, false
	}
	return *a.pending, true
}

// Commit uploads the pending selection with a single request. On failure the
// selection is kept so Commit can be called again.
func (a *AvatarPipeline) Commit(ctx context.Context) error {
	if !a.committing.CompareAndSwap(false, true) {
		return ErrUploadInFlight
	}
	defer a.committing.Store(false)

	a.mu.Lock()
	if a.pending == nil {
		a.mu.Unlock()
		return ErrNothingSelected
	}
	file := *a.pending
	a.mu.Unlock()

	l := a.logger.With(zap.String("file_name", file.FileName), zap.String("content_type", file.ContentType))
	if err := a.gateway.UploadAvatar(ctx, file); err != nil {
		l.Error("Avatar upload failed, selection kept for retry", err)
		return fmt.Errorf("%w: %w", ErrUploadFailed, err)
	}

	a.mu.Lock()
	if a.pending != nil && sameFile(*a.pending, file) {
		a.pending = nil
	}
	a.mu.Unlock()

	l.Info("Avatar uploaded", zap.Int("bytes", len(file.Data)))
	return nil
}

// Close releases the current preview.
func (a *AvatarPipeline) Close() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.releaseLocked()
	a.preview = ""
	a.pending = nil
}

func (a *AvatarPipeline) releaseLocked() {
	if a.owned && a.preview != "" {
		a.previewer.Release(a.preview)
	}
	a.owned = false
}

func sameFile(x, y service.AvatarFile) bool {
	return x.FileName == y.FileName && x.ContentType == y.ContentType && bytes.Equal(x.Data, y.Data)
}
