package main

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/Phippsaurus/ppsh/internal/cli"
	"github.com/Phippsaurus/ppsh/internal/editor"
	"github.com/Phippsaurus/ppsh/internal/styles"
	"github.com/Phippsaurus/ppsh/pkg/log"
)

// Global flag values
var (
	dir        string
	prompt     string
	strictUTF8 bool
	noColor    bool
	verbose    bool
)

func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ppsh",
		Short: "Minimal interactive shell with inline completion",
		Long: `ppsh reads a command line key by key and runs it on Enter.

While typing, the first directory entry that starts with the input is shown
after the cursor. Output of the command is printed below the prompt, standard
error in red. Lines whose first word is not an executable are echoed back.

Keys:
  Left/Right   move the cursor
  Backspace    delete the character before the cursor
  Enter        run the line
  Ctrl+C       quit`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if !verbose {
				log.SetOutput(io.Discard)
			}
			if noColor {
				styles.DisableColor()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cli.RunShell(cmd.Context(), cli.Options{
				Dir:        dir,
				Prompt:     prompt,
				StrictUTF8: strictUTF8,
			})
		},
	}

	cmd.Flags().StringVar(&dir, "dir", ".", "Directory whose entries are offered as completions")
	cmd.Flags().StringVar(&prompt, "prompt", editor.DefaultPrompt, "Prompt marker drawn before the input")
	cmd.Flags().BoolVar(&strictUTF8, "strict-utf8", false, "Suppress command output that is not valid UTF-8 instead of replacing invalid bytes")
	cmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log startup diagnostics to stderr")

	cmd.AddCommand(newVersionCmd())
	return cmd
}
