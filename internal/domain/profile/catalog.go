package profile

import (
	"fmt"
	"slices"
	"time"
	_ "time/tzdata"
)

var skillCatalog = []SkillLabel{
	"Python", "Go", "JavaScript", "TypeScript", "Java", "Kotlin", "Swift", "C", "C++", "C#",
	"Rust", "Ruby", "PHP", "Scala", "Elixir", "SQL", "React", "Vue", "Angular", "Svelte",
	"Node.js", "Django", "Flask", "FastAPI", "Spring", "Rails", "GraphQL", "PostgreSQL",
	"MySQL", "MongoDB", "Redis", "Kafka", "Docker", "Kubernetes", "Terraform", "AWS", "GCP",
	"Azure", "Linux", "Git", "CI/CD", "Machine Learning", "Data Engineering", "DevOps",
	"UI/UX Design", "Product Management",
}

var timezoneCatalog = []TimezoneID{
	"Pacific/Honolulu", "America/Anchorage", "America/Los_Angeles", "America/Denver",
	"America/Chicago", "America/New_York", "America/Halifax", "America/Sao_Paulo",
	"Atlantic/Azores", "UTC", "Europe/London", "Europe/Paris", "Europe/Berlin",
	"Europe/Athens", "Africa/Cairo", "Africa/Lagos", "Africa/Nairobi", "Europe/Moscow",
	"Asia/Dubai", "Asia/Karachi", "Asia/Kolkata", "Asia/Kathmandu", "Asia/Dhaka",
	"Asia/Bangkok", "Asia/Ho_Chi_Minh", "Asia/Singapore", "Asia/Shanghai", "Asia/Tokyo",
	"Asia/Seoul", "Australia/Adelaide", "Australia/Sydney", "Pacific/Auckland",
}

// SkillCatalog returns the valid skill labels in display order.
func SkillCatalog() []SkillLabel {
	return slices.Clone(skillCatalog)
}

func IsKnownSkill(label SkillLabel) bool {
	return slices.Contains(skillCatalog, label)
}

// TimezoneCatalog returns the selectable timezone identifiers, west to east.
func TimezoneCatalog() []TimezoneID {
	return slices.Clone(timezoneCatalog)
}

func IsKnownTimezone(id TimezoneID) bool {
	return slices.Contains(timezoneCatalog, id)
}

// OffsetLabel formats the UTC offset of id at the given instant, e.g. "UTC+05:30".
// It accepts any IANA identifier, not only catalog members.
func OffsetLabel(id TimezoneID, at time.Time) (string, error) {
	loc, err := time.LoadLocation(string(id))
	if err != nil {
		return "", fmt.Errorf("unknown timezone %q: %w", id, err)
	}
	_, offset := at.In(loc).Zone()

	sign := '+'
	if offset < 0 {
		sign = '-'
		offset = -offset
	}
	return fmt.Sprintf("UTC%c%02d:%02d", sign, offset/3600, (offset%3600)/60), nil
}
