package persistence

import (
	"context"
	"encoding/json"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/khoahotran/profile-studio/internal/domain/profile"
	"github.com/khoahotran/profile-studio/pkg/apperror"
	"github.com/khoahotran/profile-studio/pkg/logger"
)

type postgresProfileRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresProfileRepo(db *pgxpool.Pool, logger logger.Logger) profile.Repository {
	return &postgresProfileRepo{db: db, logger: logger}
}

var psqlProfile = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

func (r *postgresProfileRepo) GetByOwnerID(ctx context.Context, ownerID uuid.UUID) (*profile.Record, error) {
	query, args, err := psqlProfile.
		Select("owner_id", "document", "avatar_url", "avatar_public_id", "onboarding_completed", "updated_at").
		From("profiles").
		Where(sq.Eq{"owner_id": ownerID}).
		ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build profile query", err)
	}

	rec := &profile.Record{}
	var documentBytes []byte
	err = r.db.QueryRow(ctx, query, args...).Scan(
		&rec.OwnerID,
		&documentBytes,
		&rec.AvatarURL,
		&rec.AvatarPublicID,
		&rec.OnboardingCompleted,
		&rec.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &profile.Record{OwnerID: ownerID}, nil
		}
		return nil, apperror.NewInternal("failed to query profile", err)
	}

	if len(documentBytes) > 0 {
		var doc profile.Profile
		if err := json.Unmarshal(documentBytes, &doc); err != nil {
			r.logger.Warn("Failed to unmarshal profile document", zap.String("owner_id", ownerID.String()), zap.Error(err))
		} else {
			rec.Document = &doc
		}
	}
	return rec, nil
}

func (r *postgresProfileRepo) ReplaceDocument(ctx context.Context, ownerID uuid.UUID, doc *profile.Profile) error {
	documentBytes, err := json.Marshal(doc)
	if err != nil {
		return apperror.NewInternal("failed to marshal profile document", err)
	}

	query := `
		INSERT INTO profiles (owner_id, document, onboarding_completed, updated_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (owner_id) DO UPDATE SET
			document = EXCLUDED.document,
			onboarding_completed = EXCLUDED.onboarding_completed,
			updated_at = NOW()
	`
	if _, err := r.db.Exec(ctx, query, ownerID, documentBytes, doc.OnboardingCompleted); err != nil {
		return apperror.NewInternal("failed to replace profile", err)
	}
	return nil
}

func (r *postgresProfileRepo) SetAvatar(ctx context.Context, ownerID uuid.UUID, url, publicID string) (string, error) {
	var previous string
	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		err := tx.QueryRow(ctx,
			`SELECT avatar_public_id FROM profiles WHERE owner_id = $1 FOR UPDATE`, ownerID,
		).Scan(&previous)
		if err != nil && !errors.Is(err, pgx.ErrNoRows) {
			return err
		}

		_, err = tx.Exec(ctx, `
			INSERT INTO profiles (owner_id, avatar_url, avatar_public_id, updated_at)
			VALUES ($1, $2, $3, NOW())
			ON CONFLICT (owner_id) DO UPDATE SET
				avatar_url = EXCLUDED.avatar_url,
				avatar_public_id = EXCLUDED.avatar_public_id,
				updated_at = NOW()
		`, ownerID, url, publicID)
		return err
	})
	if err != nil {
		return "", apperror.NewInternal("failed to set avatar", err)
	}
	return previous, nil
}

func (r *postgresProfileRepo) GetOnboardingStatus(ctx context.Context, ownerID uuid.UUID) (bool, error) {
	query, args, err := psqlProfile.
		Select("onboarding_completed").
		From("profiles").
		Where(sq.Eq{"owner_id": ownerID}).
		ToSql()
	if err != nil {
		return false, apperror.NewInternal("failed to build onboarding query", err)
	}

	var completed bool
	if err := r.db.QueryRow(ctx, query, args...).Scan(&completed); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, apperror.NewInternal("failed to query onboarding status", err)
	}
	return completed, nil
}
