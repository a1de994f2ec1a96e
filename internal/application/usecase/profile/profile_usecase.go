package profile

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/khoahotran/profile-studio/internal/application/service"
	"github.com/khoahotran/profile-studio/internal/domain/profile"
	"github.com/khoahotran/profile-studio/pkg/logger"
)

var tracer = otel.Tracer("profile_usecase")

type ProfileUseCase struct {
	profileRepo  profile.Repository
	profileCache profile.Cache
	publisher    service.EventPublisher
	logger       logger.Logger
}

func NewProfileUseCase(repo profile.Repository, cache profile.Cache, pub service.EventPublisher, log logger.Logger) *ProfileUseCase {
	return &ProfileUseCase{
		profileRepo:  repo,
		profileCache: cache,
		publisher:    pub,
		logger:       log,
	}
}

type GetProfileInput struct {
	OwnerID uuid.UUID
}

type GetProfileOutput struct {
	Record *profile.Record
}

func (uc *ProfileUseCase) ExecuteGetProfile(ctx context.Context, input GetProfileInput) (*GetProfileOutput, error) {
	ctx, span := tracer.Start(ctx, "GetProfile")
	defer span.End()
	span.SetAttributes(attribute.String("owner_id", input.OwnerID.String()))

	l := uc.logger.With(zap.String("owner_id", input.OwnerID.String()))

	rec, err := uc.profileCache.Get(ctx, input.OwnerID)
	if err == nil {
		span.SetAttributes(attribute.Bool("cache_hit", true))
		return &GetProfileOutput{Record: rec}, nil
	}
	if !errors.Is(err, profile.ErrCacheMiss) {
		l.Warn("Profile cache read failed", zap.Error(err))
	}

	rec, err = uc.profileRepo.GetByOwnerID(ctx, input.OwnerID)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("get profile failed: %w", err)
	}

	if err := uc.profileCache.Set(ctx, rec); err != nil {
		l.Warn("Profile cache write failed", zap.Error(err))
	}
	return &GetProfileOutput{Record: rec}, nil
}

type ReplaceProfileInput struct {
	OwnerID  uuid.UUID
	Document profile.Profile
}

// ExecuteReplaceProfile stores the submitted document as a whole. Submitting
// is what completes onboarding, so the flag is always stored as true.
func (uc *ProfileUseCase) ExecuteReplaceProfile(ctx context.Context, input ReplaceProfileInput) error {
	ctx, span := tracer.Start(ctx, "ReplaceProfile")
	defer span.End()
	span.SetAttributes(attribute.String("owner_id", input.OwnerID.String()))

	l := uc.logger.With(zap.String("owner_id", input.OwnerID.String()))

	doc := input.Document.Clone()
	doc.OnboardingCompleted = true

	if err := uc.profileRepo.ReplaceDocument(ctx, input.OwnerID, &doc); err != nil {
		span.RecordError(err)
		return fmt.Errorf("replace profile failed: %w", err)
	}

	if err := uc.profileCache.Delete(ctx, input.OwnerID); err != nil {
		l.Warn("Profile cache invalidation failed", zap.Error(err))
	}

	evt := profile.Event{EventType: profile.EventTypeReplaced, OwnerID: input.OwnerID}
	if err := uc.publisher.PublishProfileEvent(ctx, evt); err != nil {
		l.Error("Failed to publish Kafka 'profile.replaced' event", err)
	}

	l.Info("Profile replaced")
	return nil
}

type GetOnboardingStatusInput struct {
	OwnerID uuid.UUID
}

func (uc *ProfileUseCase) ExecuteGetOnboardingStatus(ctx context.Context, input GetOnboardingStatusInput) (bool, error) {
	completed, err := uc.profileRepo.GetOnboardingStatus(ctx, input.OwnerID)
	if err != nil {
		return false, fmt.Errorf("get onboarding status failed: %w", err)
	}
	return completed, nil
}
