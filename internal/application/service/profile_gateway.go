package service

import (
	"context"
	"errors"

	"github.com/khoahotran/profile-studio/internal/domain/profile"
)

// ErrUnauthenticated is returned by a gateway when no authenticated session exists.
var ErrUnauthenticated = errors.New("no authenticated session")

type FetchResult struct {
	// Profile is nil when the store has no document for the user yet.
	Profile  *profile.Profile
	ImageURL string
}

type AvatarFile struct {
	FileName    string
	ContentType string
	Data        []byte
}

// ProfileGateway is the remote profile store as seen by an editing session.
type ProfileGateway interface {
	FetchProfile(ctx context.Context) (*FetchResult, error)
	ReplaceProfile(ctx context.Context, doc profile.Profile) error
	UploadAvatar(ctx context.Context, file AvatarFile) error
}
