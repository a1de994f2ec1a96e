package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/khoahotran/profile-studio/internal/domain/profile"
)

type ProfileCacheIntegrationTestSuite struct {
	suite.Suite
	container testcontainers.Container
	rdb       *redis.Client
	cache     profile.Cache
}

func (s *ProfileCacheIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForLog("Ready to accept connections").WithStartupTimeout(1 * time.Minute),
		},
		Started: true,
	})
	if err != nil {
		s.T().Fatalf("Failed to start redis container: %s", err)
	}
	s.container = container

	addr, err := container.Endpoint(ctx, "")
	if err != nil {
		s.T().Fatalf("Failed to get redis endpoint: %s", err)
	}

	s.rdb = redis.NewClient(&redis.Options{Addr: addr})
	s.cache = NewRedisProfileCache(s.rdb, time.Minute)
}

func (s *ProfileCacheIntegrationTestSuite) TearDownSuite() {
	if s.rdb != nil {
		s.rdb.Close()
	}
	if s.container != nil {
		if err := s.container.Terminate(context.Background()); err != nil {
			s.T().Fatalf("Failed to terminate redis container: %s", err)
		}
	}
}

func TestProfileCacheIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode.")
	}
	suite.Run(t, new(ProfileCacheIntegrationTestSuite))
}

func (s *ProfileCacheIntegrationTestSuite) Test_Get_MissIsErrCacheMiss() {
	_, err := s.cache.Get(context.Background(), uuid.New())
	s.ErrorIs(err, profile.ErrCacheMiss)
}

func (s *ProfileCacheIntegrationTestSuite) Test_SetGetDelete() {
	ctx := context.Background()
	doc := profile.Empty()
	doc.Bio = "cached"
	doc.Skills = []profile.SkillLabel{"Go"}
	rec := &profile.Record{
		OwnerID:             uuid.New(),
		Document:            &doc,
		AvatarURL:           "https://cdn/pfp.png",
		OnboardingCompleted: true,
	}

	s.Require().NoError(s.cache.Set(ctx, rec))

	got, err := s.cache.Get(ctx, rec.OwnerID)
	s.Require().NoError(err)
	s.Require().NotNil(got.Document)
	s.Equal(doc, *got.Document)
	s.Equal(rec.AvatarURL, got.AvatarURL)
	s.True(got.OnboardingCompleted)

	ttl, err := s.rdb.TTL(ctx, profileKey(rec.OwnerID)).Result()
	s.Require().NoError(err)
	s.Positive(ttl)

	s.Require().NoError(s.cache.Delete(ctx, rec.OwnerID))
	_, err = s.cache.Get(ctx, rec.OwnerID)
	s.ErrorIs(err, profile.ErrCacheMiss)
}

func (s *ProfileCacheIntegrationTestSuite) Test_NullCollectionsSurviveCaching() {
	ctx := context.Background()
	doc := profile.Profile{Bio: "partial"}
	rec := &profile.Record{OwnerID: uuid.New(), Document: &doc}

	s.Require().NoError(s.cache.Set(ctx, rec))
	got, err := s.cache.Get(ctx, rec.OwnerID)
	s.Require().NoError(err)
	s.Nil(got.Document.Skills)
	s.Nil(got.Document.Projects)
}

func (s *ProfileCacheIntegrationTestSuite) Test_Get_CorruptEntryIsError() {
	ctx := context.Background()
	owner := uuid.New()
	s.Require().NoError(s.rdb.Set(ctx, profileKey(owner), "not-json", time.Minute).Err())

	_, err := s.cache.Get(ctx, owner)
	s.Require().Error(err)
	s.NotErrorIs(err, profile.ErrCacheMiss)
}
