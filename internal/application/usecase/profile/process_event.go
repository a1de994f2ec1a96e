package profile

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/khoahotran/profile-studio/internal/application/service"
	"github.com/khoahotran/profile-studio/internal/domain/profile"
	"github.com/khoahotran/profile-studio/pkg/logger"
)

// ProcessProfileEventUseCase runs in the worker for every 'profile.events' message.
type ProcessProfileEventUseCase struct {
	profileRepo  profile.Repository
	profileCache profile.Cache
	uploader     service.Uploader
	logger       logger.Logger
}

func NewProcessProfileEventUseCase(repo profile.Repository, cache profile.Cache, u service.Uploader, log logger.Logger) *ProcessProfileEventUseCase {
	return &ProcessProfileEventUseCase{profileRepo: repo, profileCache: cache, uploader: u, logger: log}
}

func (uc *ProcessProfileEventUseCase) Execute(ctx context.Context, evt profile.Event) error {
	l := uc.logger.With(zap.String("owner_id", evt.OwnerID.String()), zap.String("event_type", string(evt.EventType)))
	l.Info("Worker UseCase processing profile event")

	switch evt.EventType {
	case profile.EventTypeAvatarReplaced:
		if evt.PreviousAvatarPublicID == "" {
			return nil
		}
		// Best effort: a leftover asset is harmless, so failures are not retried.
		if err := uc.uploader.Delete(ctx, evt.PreviousAvatarPublicID); err != nil {
			l.Warn("Failed to delete previous avatar", zap.String("public_id", evt.PreviousAvatarPublicID), zap.Error(err))
		}
		return uc.warmCache(ctx, evt)
	case profile.EventTypeReplaced:
		return uc.warmCache(ctx, evt)
	default:
		l.Warn("Unknown profile event type, skipping")
		return nil
	}
}

func (uc *ProcessProfileEventUseCase) warmCache(ctx context.Context, evt profile.Event) error {
	rec, err := uc.profileRepo.GetByOwnerID(ctx, evt.OwnerID)
	if err != nil {
		return fmt.Errorf("warm profile cache: %w", err)
	}
	if err := uc.profileCache.Set(ctx, rec); err != nil {
		return fmt.Errorf("warm profile cache: %w", err)
	}
	return nil
}
