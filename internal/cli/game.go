package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newGameCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "game",
		Short: "Fetch game content and submit graded answers",
	}

	cmd.AddCommand(newGameImagesCmd())
	cmd.AddCommand(newGameTextsCmd())
	cmd.AddCommand(newGameAudioCmd())
	cmd.AddCommand(newGameMemoryCmd())
	cmd.AddCommand(newGamePuzzleCmd())
	cmd.AddCommand(newGameSolveCmd())
	cmd.AddCommand(newGamePromptCmd())
	cmd.AddCommand(newGameWriteCmd())

	return cmd
}

func newGameImagesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "images",
		Short: "Fetch an image discrimination round",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result map[string]any
			if err := client.Get("/api/v1/games/ai-image/data", &result); err != nil {
				return err
			}

			NewOutput(cfg.Output).Print(result)
			return nil
		},
	}
}

func newGameTextsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "texts",
		Short: "Fetch a text discrimination round",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result map[string]any
			if err := client.Get("/api/v1/games/text-ai/data", &result); err != nil {
				return err
			}

			NewOutput(cfg.Output).Print(result)
			return nil
		},
	}
}

func newGameAudioCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "audio",
		Short: "Fetch an audio discrimination round",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result map[string]any
			if err := client.Get("/api/v1/games/audio-recognition/data", &result); err != nil {
				return err
			}

			NewOutput(cfg.Output).Print(result)
			return nil
		},
	}
}

func newGameMemoryCmd() *cobra.Command {
	var difficulty int

	cmd := &cobra.Command{
		Use:   "memory",
		Short: "Fetch a memory sequence",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result MemoryChallenge
			path := fmt.Sprintf("/api/v1/games/memory/data?difficulty=%d", difficulty)
			if err := client.Get(path, &result); err != nil {
				return err
			}

			NewOutput(cfg.Output).Print(result)
			return nil
		},
	}

	cmd.Flags().IntVar(&difficulty, "difficulty", 1, "Difficulty level")

	return cmd
}

func newGamePuzzleCmd() *cobra.Command {
	var difficulty int

	cmd := &cobra.Command{
		Use:   "puzzle",
		Short: "Fetch a logical reasoning puzzle",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Puzzle
			path := fmt.Sprintf("/api/v1/games/logical-reasoning/data?difficulty=%d", difficulty)
			if err := client.Get(path, &result); err != nil {
				return err
			}

			NewOutput(cfg.Output).Print(result)
			return nil
		},
	}

	cmd.Flags().IntVar(&difficulty, "difficulty", 1, "Difficulty level")

	return cmd
}

func newGameSolveCmd() *cobra.Command {
	var challengeID, answer string

	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Submit an answer to a logical reasoning puzzle",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]string{
				"challenge_id": challengeID,
				"answer":       answer,
			}
			var result PuzzleResult

			if err := client.Post("/api/v1/games/logical-reasoning/submit", req, &result); err != nil {
				return err
			}

			NewOutput(cfg.Output).Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&challengeID, "challenge", "", "Challenge ID (required)")
	cmd.Flags().StringVar(&answer, "answer", "", "Your answer (required)")
	_ = cmd.MarkFlagRequired("challenge")
	_ = cmd.MarkFlagRequired("answer")

	return cmd
}

func newGamePromptCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "prompt",
		Short: "Fetch a creative writing prompt",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result WritingPrompt
			if err := client.Get("/api/v1/games/creative-writing/prompt", &result); err != nil {
				return err
			}

			NewOutput(cfg.Output).Print(result)
			return nil
		},
	}
}

func newGameWriteCmd() *cobra.Command {
	var challengeID, text string

	cmd := &cobra.Command{
		Use:   "write",
		Short: "Submit a creative writing response",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]string{
				"challenge_id": challengeID,
				"text":         text,
			}
			var result map[string]any

			if err := client.Post("/api/v1/games/creative-writing/submit", req, &result); err != nil {
				return err
			}

			NewOutput(cfg.Output).Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&challengeID, "challenge", "", "Challenge ID (required)")
	cmd.Flags().StringVar(&text, "text", "", "Your writing (required)")
	_ = cmd.MarkFlagRequired("challenge")
	_ = cmd.MarkFlagRequired("text")

	return cmd
}
