package draft

import (
	"context"
	"sync"

	"github.com/khoahotran/profile-studio/internal/application/service"
	"github.com/khoahotran/profile-studio/internal/domain/profile"
)

type fakeGateway struct {
	mu sync.Mutex

	fetchResult *service.FetchResult
	fetchErr    error
	replaceErr  error
	uploadErr   error

	// block, when set, is waited on inside ReplaceProfile and UploadAvatar.
	block   chan struct{}
	entered chan struct{}

	replaced []profile.Profile
	uploads  []service.AvatarFile
}

func (g *fakeGateway) FetchProfile(ctx context.Context) (*service.FetchResult, error) {
	if g.fetchErr != nil {
		return nil, g.fetchErr
	}
	if g.fetchResult == nil {
		return &service.FetchResult{}, nil
	}
	return g.fetchResult, nil
}

func (g *fakeGateway) ReplaceProfile(ctx context.Context, doc profile.Profile) error {
	g.wait()
	g.mu.Lock()
	defer g.mu.Unlock()
	g.replaced = append(g.replaced, doc)
	return g.replaceErr
}

func (g *fakeGateway) UploadAvatar(ctx context.Context, file service.AvatarFile) error {
	g.wait()
	g.mu.Lock()
	defer g.mu.Unlock()
	g.uploads = append(g.uploads, file)
	return g.uploadErr
}

func (g *fakeGateway) wait() {
	if g.entered != nil {
		g.entered <- struct{}{}
	}
	if g.block != nil {
		<-g.block
	}
}

type recordingNavigator struct {
	reasons []LoadReason
}

func (n *recordingNavigator) RedirectToLogin(reason LoadReason) {
	n.reasons = append(n.reasons, reason)
}

type recordingSeeder struct {
	urls []string
}

func (s *recordingSeeder) Seed(url string) {
	s.urls = append(s.urls, url)
}
