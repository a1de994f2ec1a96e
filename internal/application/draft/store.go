// Package draft holds the client-side editing session for a profile: the
// in-memory draft, the add-item dialogs for its collections, the two-phase
// avatar upload and the load/save synchronisation with the profile store.
//
// A session is owned by one caller and is not safe for concurrent mutation,
// except where a type says otherwise.
package draft

import (
	"fmt"

	"github.com/khoahotran/profile-studio/internal/domain/profile"
)

// AvatarSeeder receives the persisted image reference when a draft is loaded.
type AvatarSeeder interface {
	Seed(url string)
}

// Store owns the single mutable Profile draft of a session.
type Store struct {
	draft  profile.Profile
	seeder AvatarSeeder
}

// NewStore returns a store holding the empty profile. seeder may be nil.
func NewStore(seeder AvatarSeeder) *Store {
	return &Store{draft: profile.Empty(), seeder: seeder}
}

// Load replaces the whole draft. A nil initial profile loads the empty default.
func (s *Store) Load(initial *profile.Profile, imageURL string) {
	if initial == nil {
		s.draft = profile.Empty()
	} else {
		s.draft = initial.Clone()
	}
	if imageURL != "" && s.seeder != nil {
		s.seeder.Seed(imageURL)
	}
}

// Snapshot returns a deep copy of the current draft.
func (s *Store) Snapshot() profile.Profile {
	return s.draft.Clone()
}

// SetField replaces one scalar field. Values are stored as given; only the Go
// type is checked.
func (s *Store) SetField(field profile.Field, value any) error {
	switch field {
	case profile.FieldBio, profile.FieldPersonalWebsite, profile.FieldLinkedIn, profile.FieldAvailability:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("%w: %s wants string, got %T", ErrFieldType, field, value)
		}
		switch field {
		case profile.FieldBio:
			s.draft.Bio = v
		case profile.FieldPersonalWebsite:
			s.draft.PersonalWebsite = v
		case profile.FieldLinkedIn:
			s.draft.LinkedIn = v
		case profile.FieldAvailability:
			s.draft.Availability = v
		}
	case profile.FieldYearsOfExperience:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("%w: %s wants int, got %T", ErrFieldType, field, value)
		}
		s.draft.YearsOfExperience = v
	case profile.FieldTimezone:
		switch v := value.(type) {
		case profile.TimezoneID:
			s.draft.Timezone = v
		case string:
			s.draft.Timezone = profile.TimezoneID(v)
		default:
			return fmt.Errorf("%w: %s wants timezone id, got %T", ErrFieldType, field, value)
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownField, field)
	}
	return nil
}

// SetSkills replaces the skills sequence. Catalog membership and duplicates
// are not checked.
func (s *Store) SetSkills(selected []profile.SkillLabel) {
	s.draft.Skills = append(make([]profile.SkillLabel, 0, len(selected)), selected...)
}

// AppendToCollection appends item to the collection its kind names.
func (s *Store) AppendToCollection(item profile.Entry) error {
	switch v := item.(type) {
	case profile.Project:
		s.draft.Projects = append(s.draft.Projects, v)
	case profile.Experience:
		s.draft.Experiences = append(s.draft.Experiences, v)
	case profile.EducationEntry:
		s.draft.Education = append(s.draft.Education, string(v))
	case profile.Certificate:
		s.draft.Certificates = append(s.draft.Certificates, v)
	default:
		return fmt.Errorf("%w: %T", ErrUnknownCollection, item)
	}
	return nil
}

// RemoveFromCollection deletes the item at index. An out-of-range index is a
// caller error and leaves the draft untouched.
func (s *Store) RemoveFromCollection(kind profile.CollectionKind, index int) error {
	var err error
	switch kind {
	case profile.KindProject:
		s.draft.Projects, err = removeAt(s.draft.Projects, index)
	case profile.KindExperience:
		s.draft.Experiences, err = removeAt(s.draft.Experiences, index)
	case profile.KindEducation:
		s.draft.Education, err = removeAt(s.draft.Education, index)
	case profile.KindCertificate:
		s.draft.Certificates, err = removeAt(s.draft.Certificates, index)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownCollection, kind)
	}
	if err != nil {
		return fmt.Errorf("remove %s[%d]: %w", kind, index, err)
	}
	return nil
}

// Len reports the length of a collection, or -1 for an unknown kind.
func (s *Store) Len(kind profile.CollectionKind) int {
	switch kind {
	case profile.KindProject:
		return len(s.draft.Projects)
	case profile.KindExperience:
		return len(s.draft.Experiences)
	case profile.KindEducation:
		return len(s.draft.Education)
	case profile.KindCertificate:
		return len(s.draft.Certificates)
	}
	return -1
}

func (s *Store) markOnboarded() {
	s.draft.OnboardingCompleted = true
}

func removeAt[T any](items []T, index int) ([]T, error) {
	if index < 0 || index >= len(items) {
		return items, ErrIndexOutOfRange
	}
	out := make([]T, 0, len(items)-1)
	out = append(out, items[:index]...)
	return append(out, items[index+1:]...), nil
}
