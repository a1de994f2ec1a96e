package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/khoahotran/profile-studio/internal/application/draft"
	"github.com/khoahotran/profile-studio/internal/domain/profile"
)

func newShowCmd(a *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the persisted profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sess, err := a.openSession(cmd.Context())
			if err != nil {
				return err
			}
			defer sess.Close()

			if asJSON {
				enc := json.NewEncoder(a.out)
				enc.SetIndent("", "  ")
				return enc.Encode(sess.Store.Snapshot())
			}
			writeProfile(a.out, sess.Store.Snapshot(), sess.Avatar.Preview())
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the draft as JSON")
	return cmd
}

func writeProfile(w io.Writer, p profile.Profile, avatar draft.PreviewRef) {
	line := func(label, value string) {
		if value == "" {
			value = "-"
		}
		fmt.Fprintf(w, "%-20s %s\n", label+":", value)
	}

	line("Avatar", string(avatar))
	line("Bio", p.Bio)
	line("Personal website", p.PersonalWebsite)
	line("LinkedIn", p.LinkedIn)
	line("Years of experience", fmt.Sprint(p.YearsOfExperience))

	skills := make([]string, len(p.Skills))
	for i, s := range p.Skills {
		skills[i] = string(s)
	}
	line("Skills", strings.Join(skills, ", "))
	line("Timezone", string(p.Timezone))
	line("Availability", p.Availability)
	line("Onboarding", map[bool]string{true: "completed", false: "pending"}[p.OnboardingCompleted])

	fmt.Fprintf(w, "\nProjects (%d)\n", len(p.Projects))
	for i, pr := range p.Projects {
		fmt.Fprintf(w, "  [%d] %s: %s\n", i, pr.Title, pr.Description)
	}
	fmt.Fprintf(w, "Experiences (%d)\n", len(p.Experiences))
	for i, ex := range p.Experiences {
		fmt.Fprintf(w, "  [%d] %s, %g years\n", i, ex.Company, ex.Years)
	}
	fmt.Fprintf(w, "Education (%d)\n", len(p.Education))
	for i, ed := range p.Education {
		fmt.Fprintf(w, "  [%d] %s\n", i, ed)
	}
	fmt.Fprintf(w, "Certificates (%d)\n", len(p.Certificates))
	for i, c := range p.Certificates {
		fmt.Fprintf(w, "  [%d] %s (%s) %s\n", i, c.Title, c.CompletionDate, c.Link)
	}
}
