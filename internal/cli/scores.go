package cli

import (
	"github.com/spf13/cobra"
)

func newSubmitCmd() *cobra.Command {
	var (
		gameType  string
		score     int
		accuracy  float64
		timeTaken int
	)

	cmd := &cobra.Command{
		Use:   "submit",
		Short: "Submit a completed game score",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]any{
				"game_type":  gameType,
				"score":      score,
				"accuracy":   accuracy,
				"time_taken": timeTaken,
			}
			var result Receipt

			if err := client.Post("/api/v1/scores", req, &result); err != nil {
				return err
			}

			NewOutput(cfg.Output).Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&gameType, "game", "", "Game type, e.g. ai_image (required)")
	cmd.Flags().IntVar(&score, "score", 0, "Score achieved")
	cmd.Flags().Float64Var(&accuracy, "accuracy", 0, "Accuracy percentage (0-100)")
	cmd.Flags().IntVar(&timeTaken, "time", 0, "Time taken in seconds")
	_ = cmd.MarkFlagRequired("game")

	return cmd
}

func newStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show your per-game statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Stats
			if err := client.Get("/api/v1/stats/user", &result); err != nil {
				return err
			}

			NewOutput(cfg.Output).Print(result)
			return nil
		},
	}
}

func newLeaderboardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "leaderboard",
		Short: "Show the human and AI leaderboards",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Leaderboard
			if err := client.Get("/api/v1/leaderboard", &result); err != nil {
				return err
			}

			NewOutput(cfg.Output).Print(result)
			return nil
		},
	}
}
