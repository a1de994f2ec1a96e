package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/khoahotran/profile-studio/internal/application/draft"
	"github.com/khoahotran/profile-studio/internal/domain/profile"
)

type editOptions struct {
	sets    []string
	skills  []string
	add     string
	fields  []string
	removes []string
	dryRun  bool
}

func newEditCmd(a *app) *cobra.Command {
	var opts editOptions

	cmd := &cobra.Command{
		Use:   "edit",
		Short: "Apply edits to the profile and submit it",
		Long: `Loads the profile into a draft, applies the edits in this order and submits the whole draft:
  1. --remove kind:index (as given)
  2. --set field=value
  3. --skills (replaces the whole list)
  4. --add kind with its --field name=value pairs

Submitting marks onboarding as completed.`,
		Example: `  profilectl edit --set bio="Backend engineer" --set years_of_experience=6
  profilectl edit --skills Go,PostgreSQL,Kafka
  profilectl edit --add experience --field company=Acme --field years=2.5
  profilectl edit --remove project:0`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sess, err := a.openSession(cmd.Context())
			if err != nil {
				return err
			}
			defer sess.Close()

			if err := applyEdits(a, sess, opts, cmd.Flags().Changed("skills")); err != nil {
				return err
			}

			if opts.dryRun {
				writeProfile(a.out, sess.Store.Snapshot(), sess.Avatar.Preview())
				return nil
			}
			if err := sess.Sync.Save(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(a.out, "Profile saved")
			return nil
		},
	}

	f := cmd.Flags()
	f.StringArrayVar(&opts.sets, "set", nil, "Set a scalar field: bio, personal_website, linkedin, years_of_experience, timezone, availability")
	f.StringSliceVar(&opts.skills, "skills", nil, "Replace the skill list (comma separated)")
	f.StringVar(&opts.add, "add", "", "Add one entry to a collection: project, experience, education, certificate")
	f.StringArrayVar(&opts.fields, "field", nil, "Field of the entry given by --add, as name=value")
	f.StringArrayVar(&opts.removes, "remove", nil, "Remove an entry, as kind:index")
	f.BoolVar(&opts.dryRun, "dry-run", false, "Print the resulting draft without submitting it")
	return cmd
}

func applyEdits(a *app, sess *draft.Session, opts editOptions, skillsChanged bool) error {
	for _, r := range opts.removes {
		kind, index, err := parseRemoval(r)
		if err != nil {
			return err
		}
		if err := sess.Store.RemoveFromCollection(kind, index); err != nil {
			return fmt.Errorf("--remove %s: %w", r, err)
		}
	}

	for _, s := range opts.sets {
		name, value, err := parseAssignment(s)
		if err != nil {
			return fmt.Errorf("--set: %w", err)
		}
		if err := setField(a, sess.Store, profile.Field(name), value); err != nil {
			return fmt.Errorf("--set %s: %w", name, err)
		}
	}

	if skillsChanged {
		skills := make([]profile.SkillLabel, 0, len(opts.skills))
		for _, s := range opts.skills {
			label := profile.SkillLabel(strings.TrimSpace(s))
			if label == "" {
				continue
			}
			if !profile.IsKnownSkill(label) {
				fmt.Fprintf(a.errOut, "note: %q is not in the skill catalog\n", label)
			}
			skills = append(skills, label)
		}
		sess.Store.SetSkills(skills)
	}

	if opts.add == "" {
		if len(opts.fields) > 0 {
			return fmt.Errorf("--field needs --add")
		}
		return nil
	}

	kind := profile.CollectionKind(opts.add)
	if !kind.Known() {
		return fmt.Errorf("--add: unknown collection %q", opts.add)
	}
	sess.Editor.OpenAdd(kind)
	for _, fv := range opts.fields {
		name, value, err := parseAssignment(fv)
		if err != nil {
			sess.Editor.Cancel()
			return fmt.Errorf("--field: %w", err)
		}
		if err := sess.Editor.SetScratchField(name, value); err != nil {
			sess.Editor.Cancel()
			return fmt.Errorf("--field %s: %w", name, err)
		}
	}
	return sess.Editor.Save()
}

func setField(a *app, store *draft.Store, field profile.Field, value string) error {
	switch field {
	case profile.FieldYearsOfExperience:
		years, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("%w: want a whole number, got %q", draft.ErrFieldType, value)
		}
		return store.SetField(field, years)
	case profile.FieldTimezone:
		tz := profile.TimezoneID(value)
		if !profile.IsKnownTimezone(tz) {
			fmt.Fprintf(a.errOut, "note: %q is not in the timezone catalog\n", value)
		}
		return store.SetField(field, tz)
	default:
		return store.SetField(field, value)
	}
}

func parseAssignment(s string) (string, string, error) {
	name, value, ok := strings.Cut(s, "=")
	name = strings.TrimSpace(name)
	if !ok || name == "" {
		return "", "", fmt.Errorf("expected name=value, got %q", s)
	}
	return name, value, nil
}

func parseRemoval(s string) (profile.CollectionKind, int, error) {
	k, idx, ok := strings.Cut(s, ":")
	if !ok {
		return "", 0, fmt.Errorf("--remove: expected kind:index, got %q", s)
	}
	index, err := strconv.Atoi(idx)
	if err != nil {
		return "", 0, fmt.Errorf("--remove: index %q is not a number", idx)
	}
	return profile.CollectionKind(k), index, nil
}
