package profile

import (
	"errors"
	"fmt"
	"strconv"
)

// CollectionKind names one of the repeatable lists of a Profile.
type CollectionKind string

const (
	KindProject     CollectionKind = "project"
	KindExperience  CollectionKind = "experience"
	KindEducation   CollectionKind = "education"
	KindCertificate CollectionKind = "certificate"
)

var Kinds = []CollectionKind{KindProject, KindExperience, KindEducation, KindCertificate}

func (k CollectionKind) Known() bool {
	switch k {
	case KindProject, KindExperience, KindEducation, KindCertificate:
		return true
	}
	return false
}

// Entry is one item of a repeatable collection. The concrete type decides
// which collection it belongs to.
type Entry interface {
	Kind() CollectionKind
}

// EducationEntry is free text, unlike the other three record kinds.
type EducationEntry string

func (Project) Kind() CollectionKind        { return KindProject }
func (Experience) Kind() CollectionKind     { return KindExperience }
func (EducationEntry) Kind() CollectionKind { return KindEducation }
func (Certificate) Kind() CollectionKind    { return KindCertificate }

// NewEntry returns the zero entry for kind, or nil when kind is unknown.
func NewEntry(kind CollectionKind) Entry {
	switch kind {
	case KindProject:
		return Project{}
	case KindExperience:
		return Experience{}
	case KindEducation:
		return EducationEntry("")
	case KindCertificate:
		return Certificate{}
	}
	return nil
}

var (
	ErrUnknownEntryField = errors.New("unknown entry field")
	ErrInvalidEntryValue = errors.New("invalid entry value")
)

// WithField returns a copy of e with one field replaced from its text form.
// Education entries accept the field name "entry".
func WithField(e Entry, name, value string) (Entry, error) {
	switch v := e.(type) {
	case Project:
		switch name {
		case "title":
			v.Title = value
		case "description":
			v.Description = value
		default:
			return e, fmt.Errorf("%w: project.%s", ErrUnknownEntryField, name)
		}
		return v, nil
	case Experience:
		switch name {
		case "company":
			v.Company = value
		case "years":
			years, err := strconv.ParseFloat(value, 64)
			if err != nil {
				return e, fmt.Errorf("%w: experience.years %q", ErrInvalidEntryValue, value)
			}
			v.Years = years
		default:
			return e, fmt.Errorf("%w: experience.%s", ErrUnknownEntryField, name)
		}
		return v, nil
	case EducationEntry:
		if name != "entry" {
			return e, fmt.Errorf("%w: education.%s", ErrUnknownEntryField, name)
		}
		return EducationEntry(value), nil
	case Certificate:
		switch name {
		case "title":
			v.Title = value
		case "link":
			v.Link = value
		case "completion_date":
			v.CompletionDate = value
		default:
			return e, fmt.Errorf("%w: certificate.%s", ErrUnknownEntryField, name)
		}
		return v, nil
	}
	return e, fmt.Errorf("%w: %T", ErrUnknownEntryField, e)
}

// Field names a scalar Profile field.
type Field string

const (
	FieldBio               Field = "bio"
	FieldPersonalWebsite   Field = "personal_website"
	FieldLinkedIn          Field = "linkedin"
	FieldYearsOfExperience Field = "years_of_experience"
	FieldTimezone          Field = "timezone"
	FieldAvailability      Field = "availability"
)
