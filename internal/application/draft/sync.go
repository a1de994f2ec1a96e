package draft

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/khoahotran/profile-studio/internal/application/service"
	"github.com/khoahotran/profile-studio/pkg/logger"
)

type LoadReason string

const (
	ReasonSessionMissing LoadReason = "session_missing"
	ReasonFetchFailed    LoadReason = "fetch_failed"
)

// Navigator leaves the editing surface for the login surface.
type Navigator interface {
	RedirectToLogin(reason LoadReason)
}

// LoadError reports why the initial load failed. Both reasons redirect to
// login, so every LoadError matches ErrLoginRequired.
type LoadError struct {
	Reason LoadReason
	Err    error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load profile (%s): %v", e.Reason, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

func (e *LoadError) Is(target error) bool { return target == ErrLoginRequired }

// SyncClient loads the persisted profile into a Store and submits the draft
// back as a full replace.
type SyncClient struct {
	gateway   service.ProfileGateway
	store     *Store
	navigator Navigator
	logger    logger.Logger

	saving atomic.Bool
}

func NewSyncClient(gw service.ProfileGateway, store *Store, nav Navigator, log logger.Logger) *SyncClient {
	return &SyncClient{gateway: gw, store: store, navigator: nav, logger: log}
}

// Load fetches the profile once. Any failure redirects to login without retry.
func (c *SyncClient) Load(ctx context.Context) error {
	res, err := c.gateway.FetchProfile(ctx)
	if err != nil {
		reason := ReasonFetchFailed
		if errors.Is(err, service.ErrUnauthenticated) {
			reason = ReasonSessionMissing
		}
		c.logger.Warn("Profile load failed, redirecting to login", zap.String("reason", string(reason)), zap.Error(err))
		if c.navigator != nil {
			c.navigator.RedirectToLogin(reason)
		}
		return &LoadError{Reason: reason, Err: err}
	}

	c.store.Load(res.Profile, res.ImageURL)
	c.logger.Debug("Profile draft loaded", zap.Bool("had_profile", res.Profile != nil))
	return nil
}

// Save submits the whole draft with onboarding marked complete. Only one save
// may be outstanding; a second call returns ErrSaveInFlight. The draft is left
// as it was when the save fails.
func (c *SyncClient) Save(ctx context.Context) error {
	if !c.saving.CompareAndSwap(false, true) {
		return ErrSaveInFlight
	}
	defer c.saving.Store(false)

	doc := c.store.Snapshot()
	doc.OnboardingCompleted = true

	if err := c.gateway.ReplaceProfile(ctx, doc); err != nil {
		c.logger.Error("Profile save failed", err)
		return fmt.Errorf("%w: %w", ErrSaveFailed, err)
	}

	c.store.markOnboarded()
	c.logger.Info("Profile saved")
	return nil
}

// Saving reports whether a save is outstanding, for disabling the submit trigger.
func (c *SyncClient) Saving() bool {
	return c.saving.Load()
}
