package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/khoahotran/profile-studio/internal/application/draft"
	"github.com/khoahotran/profile-studio/internal/application/service"
)

func newStatusCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Report whether onboarding has been completed",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			completed, err := a.client().OnboardingStatus(cmd.Context())
			if err != nil {
				if errors.Is(err, service.ErrUnauthenticated) {
					(&cliNavigator{w: a.errOut}).RedirectToLogin(draft.ReasonSessionMissing)
				}
				return err
			}
			if completed {
				fmt.Fprintln(a.out, "Onboarding: completed")
			} else {
				fmt.Fprintln(a.out, "Onboarding: pending")
			}
			return nil
		},
	}
}
