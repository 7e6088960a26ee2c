package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/star-fire/internal/config"
	"github.com/vovakirdan/star-fire/internal/core"
	"github.com/vovakirdan/star-fire/internal/games/starfire"
	"github.com/vovakirdan/star-fire/internal/storage"
)

var flagTicks int

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run the game headless with an autopilot",
	Long: `Run Star Fire without a terminal UI. An autopilot plays for the given
number of ticks, starting a new run whenever the previous one ends, and a
summary of every run is printed at the end. Useful for tuning a config.

Examples:
  starfire simulate
  starfire simulate --ticks 100000 --seed 42
  starfire simulate --config ./hard.yaml --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagTicks, "ticks", 30000, "Number of ticks to simulate")
}

func runSimulate(cmd *cobra.Command, args []string) error {
	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()
	starfire.SetLogger(logger)

	if flagTicks <= 0 {
		return fmt.Errorf("--ticks must be positive, got %d", flagTicks)
	}

	cfg, err := config.LoadStarfire(flagConfig)
	if err != nil {
		return err
	}

	store, err := storage.Open()
	if err != nil {
		return err
	}
	defer store.Close()

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	runtime := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: flagFPS, Seed: seed}

	game := starfire.New()
	game.ResetWithConfig(runtime, cfg)
	pilot := starfire.NewAutopilot()

	logger.Info("simulating", "ticks", flagTicks, "seed", seed, "fps", runtime.TickRate)
	for range flagTicks {
		game.Step(pilot.Next(game.Snapshot(), cfg))

		if phase, ok := game.Events().PhaseEntered(); ok && phase == starfire.PhaseGameOver {
			st := game.State()
			stats := game.RunStats()
			if _, err := store.SaveRun(storage.RunRecord{
				Score:         st.Score,
				ElapsedMillis: st.ElapsedMillis,
				Kills:         stats.Kills,
				Shots:         stats.Shots,
				Hits:          stats.Hits,
				Dashes:        stats.Dashes,
			}); err != nil {
				return err
			}
		}
	}

	return printSummary(cmd, store, game, runtime)
}

func printSummary(cmd *cobra.Command, store *storage.Store, game *starfire.Game, runtime core.RuntimeConfig) error {
	out := cmd.OutOrStdout()

	sum, err := store.Summary()
	if err != nil {
		return err
	}
	runs, err := store.TopRuns(5)
	if err != nil {
		return err
	}

	simulated := time.Duration(game.NowMillis()) * time.Millisecond
	fmt.Fprintf(out, "Simulated %d ticks (%s of game time at %d fps)\n", flagTicks, simulated, runtime.TickRate)
	fmt.Fprintf(out, "Finished runs: %d\n", sum.Runs)
	if sum.Runs > 0 {
		fmt.Fprintf(out, "Best score:    %d\n", sum.BestScore)
		fmt.Fprintf(out, "Average score: %.1f\n", sum.AvgScore)
		fmt.Fprintf(out, "Total kills:   %d\n", sum.TotalKills)
		fmt.Fprintf(out, "Longest run:   %ds\n", sum.LongestMs/1000)
		fmt.Fprintln(out)
		fmt.Fprintf(out, "  %-4s  %-6s  %-6s  %-5s  %-5s  %-4s  %s\n", "Rank", "Score", "Time", "Kills", "Shots", "Hits", "Dashes")
		for i, r := range runs {
			fmt.Fprintf(out, "  %-4d  %-6d  %-6s  %-5d  %-5d  %-4d  %d\n",
				i+1, r.Score, fmt.Sprintf("%ds", r.ElapsedMillis/1000), r.Kills, r.Shots, r.Hits, r.Dashes)
		}
	}

	if st := game.State(); !st.InMenu && !st.GameOver {
		fmt.Fprintf(out, "\nUnfinished run: score %d after %ds\n", st.Score, st.ElapsedMillis/1000)
	}
	return nil
}
