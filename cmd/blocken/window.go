package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/blocken/internal/platform/window"
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Start a game in a desktop window.

Controls:
  Arrows/WASD/HJKL  - Steer (hold to fast-forward)
  P                 - Pause
  R                 - Restart
  Ctrl+S            - Copy the board to the clipboard
  Q/Esc             - Quit

The game pauses while the window is unfocused.`,
	Args: cobra.NoArgs,
	RunE: runWindow,
}

func runWindow(cmd *cobra.Command, args []string) error {
	env, cleanup, err := newEnv(envOptions{LogFallback: os.Stderr, Audio: true})
	if err != nil {
		return err
	}
	defer cleanup()

	return runFrontend(window.FrontendID, env)
}
