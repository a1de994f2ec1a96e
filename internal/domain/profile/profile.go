package profile

import (
	"context"
	"errors"
	"slices"
	"time"

	"github.com/google/uuid"
)

type SkillLabel string

type TimezoneID string

type Project struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type Experience struct {
	Company string  `json:"company"`
	Years   float64 `json:"years"`
}

type Certificate struct {
	Title          string `json:"title"`
	Link           string `json:"link"`
	CompletionDate string `json:"completion_date"`
}

// Profile is the full editable document. Skills, timezone and years of
// experience are not checked against the catalogs or for range.
type Profile struct {
	Bio                 string        `json:"bio"`
	PersonalWebsite     string        `json:"personal_website"`
	LinkedIn            string        `json:"linkedin"`
	YearsOfExperience   int           `json:"years_of_experience"`
	Skills              []SkillLabel  `json:"skills"`
	Projects            []Project     `json:"projects"`
	Experiences         []Experience  `json:"experiences"`
	Education           []string      `json:"education"`
	Certificates        []Certificate `json:"certificates"`
	Timezone            TimezoneID    `json:"timezone"`
	Availability        string        `json:"availability"`
	OnboardingCompleted bool          `json:"onboarding_completed"`
}

// Empty returns the default profile used when none has been stored yet.
func Empty() Profile {
	return Profile{
		Skills:       []SkillLabel{},
		Projects:     []Project{},
		Experiences:  []Experience{},
		Education:    []string{},
		Certificates: []Certificate{},
	}
}

// Clone returns a deep copy; collections are never shared with the receiver.
// A nil collection stays nil so a stored null round-trips unchanged.
func (p Profile) Clone() Profile {
	out := p
	out.Skills = slices.Clone(p.Skills)
	out.Projects = slices.Clone(p.Projects)
	out.Experiences = slices.Clone(p.Experiences)
	out.Education = slices.Clone(p.Education)
	out.Certificates = slices.Clone(p.Certificates)
	return out
}

// Record is the server-side view of a stored profile. Document is nil until
// the owner submits the profile for the first time.
type Record struct {
	OwnerID             uuid.UUID `json:"owner_id"`
	Document            *Profile  `json:"document"`
	AvatarURL           string    `json:"avatar_url"`
	AvatarPublicID      string    `json:"avatar_public_id"`
	OnboardingCompleted bool      `json:"onboarding_completed"`
	UpdatedAt           time.Time `json:"updated_at"`
}

var ErrCacheMiss = errors.New("profile cache miss")

type Repository interface {
	GetByOwnerID(ctx context.Context, ownerID uuid.UUID) (*Record, error)
	ReplaceDocument(ctx context.Context, ownerID uuid.UUID, doc *Profile) error
	// SetAvatar stores the new avatar and returns the public id it replaced.
	SetAvatar(ctx context.Context, ownerID uuid.UUID, url, publicID string) (string, error)
	GetOnboardingStatus(ctx context.Context, ownerID uuid.UUID) (bool, error)
}

type Cache interface {
	Get(ctx context.Context, ownerID uuid.UUID) (*Record, error)
	Set(ctx context.Context, rec *Record) error
	Delete(ctx context.Context, ownerID uuid.UUID) error
}
