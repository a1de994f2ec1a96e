package draft

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khoahotran/profile-studio/internal/domain/profile"
)

func TestStore_LoadNilGivesEmptyDefault(t *testing.T) {
	s := NewStore(nil)
	s.Load(&profile.Profile{Bio: "old"}, "")
	s.Load(nil, "")

	assert.Equal(t, profile.Empty(), s.Snapshot())
}

func TestStore_LoadCopiesInputAndSeedsAvatar(t *testing.T) {
	seeder := &recordingSeeder{}
	s := NewStore(seeder)

	in := profile.Profile{Bio: "hi", Skills: []profile.SkillLabel{"Go"}}
	s.Load(&in, "https://cdn.example.com/pfp.png")
	in.Skills[0] = "Rust"

	snap := s.Snapshot()
	assert.Equal(t, "hi", snap.Bio)
	assert.Equal(t, []profile.SkillLabel{"Go"}, snap.Skills)
	assert.Equal(t, []string{"https://cdn.example.com/pfp.png"}, seeder.urls)

	s.Load(&in, "")
	assert.Len(t, seeder.urls, 1, "no seed without an image reference")
}

func TestStore_SetField(t *testing.T) {
	s := NewStore(nil)

	require.NoError(t, s.SetField(profile.FieldBio, "bio"))
	require.NoError(t, s.SetField(profile.FieldPersonalWebsite, "https://me.dev"))
	require.NoError(t, s.SetField(profile.FieldLinkedIn, "in/me"))
	require.NoError(t, s.SetField(profile.FieldAvailability, "part-time"))
	require.NoError(t, s.SetField(profile.FieldYearsOfExperience, -3))
	require.NoError(t, s.SetField(profile.FieldTimezone, "Not/AZone"))

	snap := s.Snapshot()
	assert.Equal(t, "bio", snap.Bio)
	assert.Equal(t, "https://me.dev", snap.PersonalWebsite)
	assert.Equal(t, "in/me", snap.LinkedIn)
	assert.Equal(t, "part-time", snap.Availability)
	assert.Equal(t, -3, snap.YearsOfExperience, "no range validation")
	assert.Equal(t, profile.TimezoneID("Not/AZone"), snap.Timezone, "no catalog validation")

	require.NoError(t, s.SetField(profile.FieldTimezone, profile.TimezoneID("Asia/Tokyo")))
	assert.Equal(t, profile.TimezoneID("Asia/Tokyo"), s.Snapshot().Timezone)
}

func TestStore_SetFieldErrors(t *testing.T) {
	s := NewStore(nil)

	assert.ErrorIs(t, s.SetField("nickname", "x"), ErrUnknownField)
	assert.ErrorIs(t, s.SetField(profile.FieldYearsOfExperience, "five"), ErrFieldType)
	assert.ErrorIs(t, s.SetField(profile.FieldBio, 5), ErrFieldType)
	assert.ErrorIs(t, s.SetField(profile.FieldTimezone, 9), ErrFieldType)
	assert.Equal(t, profile.Empty(), s.Snapshot())
}

func TestStore_SetSkillsKeepsOrderAndDuplicates(t *testing.T) {
	s := NewStore(nil)
	in := []profile.SkillLabel{"Python", "Go", "Go", "Klingon"}
	s.SetSkills(in)
	in[0] = "Rust"

	assert.Equal(t, []profile.SkillLabel{"Python", "Go", "Go", "Klingon"}, s.Snapshot().Skills)
}

func TestStore_AppendRemoveAreInverse(t *testing.T) {
	entries := []profile.Entry{
		profile.Project{Title: "p"},
		profile.Experience{Company: "c", Years: 2},
		profile.EducationEntry("e"),
		profile.Certificate{Title: "t", Link: "l", CompletionDate: "2024-01-01"},
	}

	for _, entry := range entries {
		t.Run(string(entry.Kind()), func(t *testing.T) {
			s := NewStore(nil)
			require.NoError(t, s.AppendToCollection(profile.NewEntry(entry.Kind())))
			before := s.Snapshot()

			require.NoError(t, s.AppendToCollection(entry))
			assert.Equal(t, 2, s.Len(entry.Kind()))

			require.NoError(t, s.RemoveFromCollection(entry.Kind(), s.Len(entry.Kind())-1))
			assert.Equal(t, before, s.Snapshot())
		})
	}
}

func TestStore_AppendAllowsDuplicates(t *testing.T) {
	s := NewStore(nil)
	p := profile.Project{Title: "same"}
	require.NoError(t, s.AppendToCollection(p))
	require.NoError(t, s.AppendToCollection(p))
	assert.Equal(t, []profile.Project{p, p}, s.Snapshot().Projects)
}

func TestStore_RemoveMiddlePreservesOrder(t *testing.T) {
	s := NewStore(nil)
	for _, e := range []string{"a", "b", "c"} {
		require.NoError(t, s.AppendToCollection(profile.EducationEntry(e)))
	}
	require.NoError(t, s.RemoveFromCollection(profile.KindEducation, 1))
	assert.Equal(t, []string{"a", "c"}, s.Snapshot().Education)
}

func TestStore_RemoveOutOfRange(t *testing.T) {
	s := NewStore(nil)
	require.NoError(t, s.AppendToCollection(profile.Project{Title: "only"}))
	before := s.Snapshot()

	assert.ErrorIs(t, s.RemoveFromCollection(profile.KindProject, 1), ErrIndexOutOfRange)
	assert.ErrorIs(t, s.RemoveFromCollection(profile.KindProject, -1), ErrIndexOutOfRange)
	assert.ErrorIs(t, s.RemoveFromCollection(profile.KindCertificate, 0), ErrIndexOutOfRange)
	assert.ErrorIs(t, s.RemoveFromCollection("award", 0), ErrUnknownCollection)
	assert.Equal(t, before, s.Snapshot())
}

func TestStore_SnapshotIsDetached(t *testing.T) {
	s := NewStore(nil)
	require.NoError(t, s.AppendToCollection(profile.Project{Title: "a"}))

	snap := s.Snapshot()
	snap.Projects[0].Title = "changed"
	assert.Equal(t, "a", s.Snapshot().Projects[0].Title)
}
