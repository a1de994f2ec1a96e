// Package profiletest provides in-memory implementations of the profile ports
// for tests.
package profiletest

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/khoahotran/profile-studio/internal/application/service"
	"github.com/khoahotran/profile-studio/internal/domain/profile"
)

type Repository struct {
	mu      sync.Mutex
	records map[uuid.UUID]profile.Record

	Err error
}

func NewRepository() *Repository {
	return &Repository{records: make(map[uuid.UUID]profile.Record)}
}

func (r *Repository) GetByOwnerID(ctx context.Context, ownerID uuid.UUID) (*profile.Record, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	rec, ok := r.records[ownerID]
	if !ok {
		return &profile.Record{OwnerID: ownerID}, nil
	}
	if rec.Document != nil {
		doc := rec.Document.Clone()
		rec.Document = &doc
	}
	return &rec, nil
}

func (r *Repository) ReplaceDocument(ctx context.Context, ownerID uuid.UUID, doc *profile.Profile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	rec := r.records[ownerID]
	rec.OwnerID = ownerID
	stored := doc.Clone()
	rec.Document = &stored
	rec.OnboardingCompleted = doc.OnboardingCompleted
	rec.UpdatedAt = time.Now().UTC()
	r.records[ownerID] = rec
	return nil
}

func (r *Repository) SetAvatar(ctx context.Context, ownerID uuid.UUID, url, publicID string) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return "", r.Err
	}
	rec := r.records[ownerID]
	previous := rec.AvatarPublicID
	rec.OwnerID = ownerID
	rec.AvatarURL = url
	rec.AvatarPublicID = publicID
	rec.UpdatedAt = time.Now().UTC()
	r.records[ownerID] = rec
	return previous, nil
}

func (r *Repository) GetOnboardingStatus(ctx context.Context, ownerID uuid.UUID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return false, r.Err
	}
	return r.records[ownerID].OnboardingCompleted, nil
}

type Cache struct {
	mu      sync.Mutex
	records map[uuid.UUID]profile.Record

	Deletes int
}

func NewCache() *Cache {
	return &Cache{records: make(map[uuid.UUID]profile.Record)}
}

func (c *Cache) Get(ctx context.Context, ownerID uuid.UUID) (*profile.Record, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	rec, ok := c.records[ownerID]
	if !ok {
		return nil, profile.ErrCacheMiss
	}
	return &rec, nil
}

func (c *Cache) Set(ctx context.Context, rec *profile.Record) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.records[rec.OwnerID] = *rec
	return nil
}

func (c *Cache) Delete(ctx context.Context, ownerID uuid.UUID) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.records, ownerID)
	c.Deletes++
	return nil
}

func (c *Cache) Has(ownerID uuid.UUID) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.records[ownerID]
	return ok
}

type Uploader struct {
	mu      sync.Mutex
	Assets  map[string][]byte
	Deleted []string

	UploadErr error
	DeleteErr error
}

func NewUploader() *Uploader {
	return &Uploader{Assets: make(map[string][]byte)}
}

func (u *Uploader) Upload(ctx context.Context, file io.Reader, folder string, publicID string) (*service.UploadResult, error) {
	if u.UploadErr != nil {
		return nil, u.UploadErr
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, file); err != nil {
		return nil, err
	}
	id := folder + "/" + publicID
	u.mu.Lock()
	u.Assets[id] = buf.Bytes()
	u.mu.Unlock()
	return &service.UploadResult{URL: fmt.Sprintf("https://cdn.test/%s", id), PublicID: id}, nil
}

func (u *Uploader) Delete(ctx context.Context, publicID string) error {
	if u.DeleteErr != nil {
		return u.DeleteErr
	}
	u.mu.Lock()
	defer u.mu.Unlock()
	if _, ok := u.Assets[publicID]; !ok {
		return errors.New("asset not found")
	}
	delete(u.Assets, publicID)
	u.Deleted = append(u.Deleted, publicID)
	return nil
}

type Publisher struct {
	mu     sync.Mutex
	Events []profile.Event

	Err error
}

func (p *Publisher) PublishProfileEvent(ctx context.Context, evt profile.Event) error {
	if p.Err != nil {
		return p.Err
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.Events = append(p.Events, evt)
	return nil
}

func (p *Publisher) Published() []profile.Event {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]profile.Event(nil), p.Events...)
}
