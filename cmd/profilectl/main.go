// Command profilectl edits the signed-in user's profile from the terminal.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/khoahotran/profile-studio/adapters/profileapi"
	"github.com/khoahotran/profile-studio/internal/application/draft"
	"github.com/khoahotran/profile-studio/internal/config"
	"github.com/khoahotran/profile-studio/pkg/logger"
)

type app struct {
	out    io.Writer
	errOut io.Writer

	apiURL    string
	tokenFile string
	timeout   time.Duration
	verbose   bool

	logger logger.Logger
}

func newRootCmd(out, errOut io.Writer) *cobra.Command {
	a := &app{out: out, errOut: errOut, logger: logger.NewNop()}

	rootCmd := &cobra.Command{
		Use:           "profilectl",
		Short:         "Profile Studio command line client",
		Long:          "profilectl loads your profile from the Profile Studio API into a local draft, applies edits and submits the draft back.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.configure(cmd)
		},
	}
	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.apiURL, "api-url", "", "Profile API base URL (default from PROFILE_API_URL or config.yaml)")
	flags.StringVar(&a.tokenFile, "token-file", "", "Where the session token is kept (default from PROFILE_TOKEN_FILE)")
	flags.DurationVar(&a.timeout, "timeout", 0, "Limit for each API request, 0 for none (default from PROFILE_API_TIMEOUT)")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "Log requests and draft transitions to stderr")

	rootCmd.AddCommand(
		newLoginCmd(a),
		newLogoutCmd(a),
		newShowCmd(a),
		newEditCmd(a),
		newAvatarCmd(a),
		newCatalogCmd(a),
		newStatusCmd(a),
	)
	return rootCmd
}

func (a *app) configure(cmd *cobra.Command) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if !cmd.Flags().Changed("api-url") {
		a.apiURL = cfg.Client.APIURL
	}
	if !cmd.Flags().Changed("token-file") {
		a.tokenFile = cfg.Client.TokenFile
	}
	if !cmd.Flags().Changed("timeout") {
		a.timeout = cfg.Client.Timeout
	}
	if a.verbose {
		a.logger = logger.NewZapLogger("development")
	}
	return nil
}

func (a *app) client() *profileapi.Client {
	return profileapi.NewClient(a.apiURL, a.timeout, profileapi.NewFileTokenStore(a.tokenFile), a.logger)
}

// openSession loads the persisted profile into a fresh draft.
func (a *app) openSession(ctx context.Context) (*draft.Session, error) {
	sess := draft.NewSession(a.client(), &cliNavigator{w: a.errOut}, draft.NewBlobPreviewer(), a.logger)
	if err := sess.Sync.Load(ctx); err != nil {
		sess.Close()
		return nil, err
	}
	return sess, nil
}

// cliNavigator points the user at the login command.
type cliNavigator struct {
	w io.Writer
}

func (n *cliNavigator) RedirectToLogin(reason draft.LoadReason) {
	switch reason {
	case draft.ReasonSessionMissing:
		fmt.Fprintln(n.w, "You are not signed in. Run 'profilectl login --email <address>' first.")
	default:
		fmt.Fprintln(n.w, "Could not load your profile. Sign in again with 'profilectl login --email <address>'.")
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd(os.Stdout, os.Stderr).ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}
