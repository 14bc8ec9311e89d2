package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/blocken/internal/engine"
	"github.com/vovakirdan/blocken/internal/games/blocken"
)

var (
	flagTicks     uint64
	flagPlacement string
	flagRuns      int
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run a headless autopilot game",
	Long: `Play without a frontend. An autopilot steers toward the nearest pickup
on a simulated clock, so runs finish instantly and are reproducible with
--seed. The final board and a summary are printed for each run.

Examples:
  blocken simulate --seed 42
  blocken simulate --seed 7 --runs 10 --ticks 5000
  blocken simulate --placement rejection`,
	Args: cobra.NoArgs,
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().Uint64Var(&flagTicks, "ticks", 2000, "Stop a run after this many ticks")
	simulateCmd.Flags().StringVar(&flagPlacement, "placement", "", "Placement strategy: freelist, rejection")
	simulateCmd.Flags().IntVar(&flagRuns, "runs", 1, "Number of runs")
}

func runSimulate(cmd *cobra.Command, args []string) error {
	env, cleanup, err := newEnv(envOptions{LogFallback: os.Stderr})
	if err != nil {
		return err
	}
	defer cleanup()

	opts := env.SessionOptions()
	if flagPlacement != "" {
		opts.Placement = flagPlacement
	}
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}
	clock := engine.NewManualClock(time.Now())
	opts.Clock = clock

	session, err := engine.NewSession(opts)
	if err != nil {
		return err
	}

	for i := range max(flagRuns, 1) {
		if i > 0 {
			if err := session.Restart(); err != nil {
				return err
			}
		}
		final, err := engine.RunHeadless(session, clock, blocken.Autopilot{}, flagTicks)
		if err != nil {
			return err
		}

		fmt.Println(blocken.BoardString(final))
		fmt.Printf("Run %s (seed %d)\n", session.Run().ID, session.Run().Seed)
		fmt.Printf("  %s\n", blocken.HUDLine(final))
		fmt.Printf("  Ticks: %d  Grow: %d  Speed: %d  Ended by: %s\n\n",
			final.Ticks, final.GrowEaten, final.SpeedEaten, final.Cause)
	}
	session.Close()

	stats, err := env.Store.Stats()
	if err != nil {
		return err
	}
	fmt.Printf("%d runs  best score %d  average %.1f  longest trail %d\n",
		stats.Runs, stats.BestScore, stats.AvgScore, stats.BestLength)
	return nil
}
