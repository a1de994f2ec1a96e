package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/khoahotran/profile-studio/internal/domain/profile"
)

func newCatalogCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "List the selectable skills or timezones",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "skills",
		Short: "List the skill catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, s := range profile.SkillCatalog() {
				fmt.Fprintln(a.out, s)
			}
			return nil
		},
	})

	var at string
	tzCmd := &cobra.Command{
		Use:   "timezones",
		Short: "List the timezone catalog with current UTC offsets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			when := time.Now()
			if at != "" {
				t, err := time.Parse(time.RFC3339, at)
				if err != nil {
					return fmt.Errorf("--at: %w", err)
				}
				when = t
			}
			for _, tz := range profile.TimezoneCatalog() {
				label, err := profile.OffsetLabel(tz, when)
				if err != nil {
					return err
				}
				fmt.Fprintf(a.out, "%-22s %s\n", tz, label)
			}
			return nil
		},
	}
	tzCmd.Flags().StringVar(&at, "at", "", "Instant for the offsets, RFC3339 (default now)")
	cmd.AddCommand(tzCmd)

	return cmd
}
