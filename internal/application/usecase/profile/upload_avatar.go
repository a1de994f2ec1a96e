package profile

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/khoahotran/profile-studio/internal/application/service"
	"github.com/khoahotran/profile-studio/internal/domain/profile"
	"github.com/khoahotran/profile-studio/pkg/apperror"
	"github.com/khoahotran/profile-studio/pkg/logger"
)

type UploadAvatarUseCase struct {
	profileRepo  profile.Repository
	profileCache profile.Cache
	uploader     service.Uploader
	publisher    service.EventPublisher
	maxBytes     int64
	logger       logger.Logger
}

func NewUploadAvatarUseCase(
	repo profile.Repository,
	cache profile.Cache,
	u service.Uploader,
	pub service.EventPublisher,
	maxBytes int64,
	log logger.Logger,
) *UploadAvatarUseCase {
	return &UploadAvatarUseCase{
		profileRepo:  repo,
		profileCache: cache,
		uploader:     u,
		publisher:    pub,
		maxBytes:     maxBytes,
		logger:       log,
	}
}

type UploadAvatarInput struct {
	OwnerID uuid.UUID
	File    io.Reader
}

type UploadAvatarOutput struct {
	URL string
}

func AvatarFolder(ownerID uuid.UUID) string {
	return fmt.Sprintf("pfp/%s", ownerID.String())
}

// Execute stores a new avatar for the owner. The superseded asset is removed
// by the worker after the 'avatar.replaced' event.
func (uc *UploadAvatarUseCase) Execute(ctx context.Context, input UploadAvatarInput) (*UploadAvatarOutput, error) {
	ctx, span := tracer.Start(ctx, "UploadAvatar")
	defer span.End()
	span.SetAttributes(attribute.String("owner_id", input.OwnerID.String()))

	data, err := io.ReadAll(io.LimitReader(input.File, uc.maxBytes+1))
	if err != nil {
		return nil, apperror.NewInvalidInput("failed to read file", err)
	}
	if int64(len(data)) > uc.maxBytes {
		return nil, apperror.NewTooLarge(fmt.Sprintf("avatar exceeds %d bytes", uc.maxBytes))
	}

	mtype := mimetype.Detect(data)
	if !strings.HasPrefix(mtype.String(), "image/") {
		return nil, apperror.NewInvalidInput("File must be an image", nil)
	}
	span.SetAttributes(attribute.String("content_type", mtype.String()))

	publicID := uuid.NewString()
	l := uc.logger.With(zap.String("owner_id", input.OwnerID.String()), zap.String("public_id", publicID))

	uploaded, err := uc.uploader.Upload(ctx, bytes.NewReader(data), AvatarFolder(input.OwnerID), publicID)
	if err != nil {
		span.RecordError(err)
		return nil, apperror.NewInternal("failed to upload avatar", err)
	}

	previous, err := uc.profileRepo.SetAvatar(ctx, input.OwnerID, uploaded.URL, uploaded.PublicID)
	if err != nil {
		if delErr := uc.uploader.Delete(context.WithoutCancel(ctx), uploaded.PublicID); delErr != nil {
			l.Warn("Failed to remove orphaned avatar asset", zap.Error(delErr))
		}
		return nil, err
	}

	if err := uc.profileCache.Delete(ctx, input.OwnerID); err != nil {
		l.Warn("Profile cache invalidation failed", zap.Error(err))
	}

	evt := profile.Event{
		EventType:              profile.EventTypeAvatarReplaced,
		OwnerID:                input.OwnerID,
		AvatarURL:              uploaded.URL,
		PreviousAvatarPublicID: previous,
	}
	if err := uc.publisher.PublishProfileEvent(ctx, evt); err != nil {
		l.Error("Failed to publish Kafka 'avatar.replaced' event", err)
	}

	l.Info("Avatar uploaded", zap.String("content_type", mtype.String()), zap.Int("bytes", len(data)))
	return &UploadAvatarOutput{URL: uploaded.URL}, nil
}
