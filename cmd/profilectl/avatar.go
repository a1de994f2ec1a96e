package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/khoahotran/profile-studio/internal/application/service"
)

func newAvatarCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "avatar <image-file>",
		Short: "Upload a new profile picture",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read image: %w", err)
			}

			sess, err := a.openSession(cmd.Context())
			if err != nil {
				return err
			}
			defer sess.Close()

			preview, err := sess.Avatar.Select(service.AvatarFile{FileName: filepath.Base(args[0]), Data: data})
			if err != nil {
				return err
			}
			pending, _ := sess.Avatar.Pending()
			fmt.Fprintf(a.out, "Selected %s (%s, %d bytes) as %s\n", pending.FileName, pending.ContentType, len(pending.Data), preview)

			if err := sess.Avatar.Commit(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(a.out, "Profile picture uploaded")
			return nil
		},
	}
}
