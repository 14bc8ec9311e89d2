package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/blocken/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a game in the terminal.

Controls:
  Arrows/WASD/HJKL  - Steer (hold to fast-forward)
  P/Esc             - Pause
  R                 - Restart
  Ctrl+S            - Copy the board to the clipboard
  Tab               - Show the runs of this session
  Q/Ctrl+C          - Quit

The game pauses while the terminal is unfocused, in terminals that report
focus changes.

Examples:
  blocken play
  blocken play --seed 42
  blocken play --log-file blocken.log --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	// Logs only go to --log-file; anything else would garble the screen.
	env, cleanup, err := newEnv(envOptions{Audio: true})
	if err != nil {
		return err
	}
	defer cleanup()

	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		env.Runtime.ScreenW = w
		env.Runtime.ScreenH = h
	}

	return runFrontend(tui.FrontendID, env)
}
