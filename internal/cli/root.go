// Package cli provides the command-line interface for takma.
package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/takma/takma-desktop/internal/config"
	"github.com/takma/takma-desktop/internal/logging"
	"github.com/takma/takma-desktop/internal/version"
	"github.com/takma/takma-desktop/internal/wailsapp"
)

var (
	// Global flags
	cfgFile string
	debug   bool

	// Global logger
	logger *logging.Logger
)

// GUIRunner starts the desktop window with the full argument vector.
type GUIRunner func(argv []string, cfg *config.Config) error

// NewRootCmd creates the root command. Without a subcommand it starts the
// GUI; positional arguments are passed through because the OS delivers
// takma:// links as the first argument.
func NewRootCmd(runGUI GUIRunner) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "takma [takma://link]",
		Short: "Takma - boards and cards on your desktop",
		Long: `Takma ` + version.Version + ` - Built: ` + version.BuildTime + `

Running takma without a subcommand opens the desktop app. A takma:// link
given as the first argument is opened once the app has loaded; if Takma is
already running, the link is handed to the running window instead.`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger = logging.NewDefaultCLILogger()
			logger.SetOutput(cmd.ErrOrStderr())
			logging.SetGlobalLevel(logging.LevelFor(debug))
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if debug {
				cfg.Debug = true
			}
			argv := append([]string{os.Args[0]}, args...)
			return runGUI(argv, cfg)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "Configuration file path")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug output")

	rootCmd.Version = version.Version + " (" + version.BuildTime + ")"

	return rootCmd
}

// AddCommands registers all subcommands on rootCmd.
func AddCommands(rootCmd *cobra.Command) {
	rootCmd.AddCommand(newRevealCmd())
	rootCmd.AddCommand(newMoveCmd())
	rootCmd.AddCommand(newLinkCmd())
	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newVersionCmd())
}

// Execute runs the root command against os.Args.
func Execute() error {
	rootCmd := NewRootCmd(wailsapp.Run)
	AddCommands(rootCmd)
	return rootCmd.Execute()
}

func loadConfig() (*config.Config, error) {
	return config.Load(cfgFile)
}
