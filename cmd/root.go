package cmd

import (
	"io"
	"os"

	"github.com/javoire/branchsweep/internal/config"
	"github.com/javoire/branchsweep/internal/git"
	"github.com/javoire/branchsweep/internal/logging"
	"github.com/javoire/branchsweep/internal/prompt"
	"github.com/javoire/branchsweep/internal/spinner"
	"github.com/javoire/branchsweep/internal/sweep"
	"github.com/javoire/branchsweep/internal/ui"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "branchsweep",
	Short: "Interactively delete local git branches",
	Long: `Pick local branches from a menu and delete them one at a time.

Branches that are merged are deleted with 'git branch -d'. Branches with
unmerged commits are only deleted with 'git branch -D' after you confirm.
The list is reloaded after every deletion.`,
	Example: `  # Start an interactive session
  branchsweep

  # Use the numbered menu instead of the arrow-key list
  branchsweep --menu numeric

  # See what would be deleted without deleting anything
  branchsweep --dry-run`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		// outside a repository only the home config applies; the sweep
		// reports the error itself
		repoRoot, _ := git.NewGitClient(git.Options{}).GetRepoRoot()

		cfg, err := config.Load(cfgFile, cmd.Flags(), repoRoot)
		if err != nil {
			return err
		}

		logger, err := logging.New(cfg.LogLevel, cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		defer func() { _ = logging.Sync(logger) }()

		ui.SetNoColor(cfg.NoColor)
		spinner.Enabled = !cfg.Verbose && isatty.IsTerminal(os.Stdout.Fd())

		style, err := prompt.ParseStyle(cfg.Menu)
		if err != nil {
			return err
		}

		gitClient := git.NewGitClient(git.Options{
			DryRun: cfg.DryRun,
			Out:    cmd.OutOrStdout(),
			Logger: logger,
		})
		prompter := prompt.Open(style, os.Stdin, os.Stdout)

		runSweep(gitClient, prompter, cmd.OutOrStdout(), logger)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file (default: branchsweep.yaml in the repository root or ~/.config/branchsweep/)")
	config.RegisterFlags(rootCmd.Flags())
}

// runSweep runs one interactive session. Failures are shown to the user
// and end the session; they do not change the exit status.
func runSweep(gitClient git.GitClient, prompter prompt.Prompter, out io.Writer, logger *zap.Logger) {
	loop := sweep.NewLoop(sweep.NewService(gitClient, logger), prompter, out, logger)
	if err := loop.Run(); err != nil {
		logger.Debug("session ended with error", zap.Error(err))
	}
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}
