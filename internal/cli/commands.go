package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/takma/takma-desktop/internal/deeplink"
	"github.com/takma/takma-desktop/internal/fsops"
	"github.com/takma/takma-desktop/internal/pathutil"
	"github.com/takma/takma-desktop/internal/reveal"
	"github.com/takma/takma-desktop/internal/version"
)

// ErrNoDeepLink is returned by `takma link` when no argument is a takma:// link.
var ErrNoDeepLink = errors.New("no deep link found")

// newRevealer is replaced in tests.
var newRevealer = func() reveal.Revealer {
	return reveal.New(logger)
}

func newRevealCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reveal <path>",
		Short: "Show a file or folder in the system file manager",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := pathutil.ResolveAbsolutePath(args[0])
			if err != nil {
				return fmt.Errorf("failed to resolve %s: %w", args[0], err)
			}
			return newRevealer().Reveal(path)
		},
	}
}

func newMoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "move <from> <to>",
		Short: "Move a directory within the same filesystem",
		Long: `Move a directory with a single rename.

The destination must not exist. Moving across filesystems is not supported
and fails without copying anything.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, err := pathutil.ResolveAbsolutePath(args[0])
			if err != nil {
				return fmt.Errorf("failed to resolve %s: %w", args[0], err)
			}
			to, err := pathutil.ResolveAbsolutePath(args[1])
			if err != nil {
				return fmt.Errorf("failed to resolve %s: %w", args[1], err)
			}
			if err := fsops.MoveDirectory(from, to); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Moved %s -> %s\n", from, to)
			return nil
		},
	}
}

func newLinkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "link [args...]",
		Short: "Print the deep link Takma would open for these arguments",
		Long: `Print the first takma:// link in the given arguments, the same way the
app picks one at startup. Exits with an error when there is none.`,
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			link, ok := deeplink.FromArgs(append([]string{"takma"}, args...))
			if !ok {
				return ErrNoDeepLink
			}
			fmt.Fprintln(cmd.OutOrStdout(), link)
			return nil
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "takma %s (built %s)\n", version.Version, version.BuildTime)
		},
	}
}
