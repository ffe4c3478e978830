package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/rferrer/mundi/pkg/config"
	"github.com/rferrer/mundi/pkg/feedback"
	"github.com/rferrer/mundi/pkg/log"
	"github.com/rferrer/mundi/pkg/storage"
	"github.com/urfave/cli/v3"
)

// FeedbackCommand creates the feedback command with its subcommands
func FeedbackCommand() *cli.Command {
	return &cli.Command{
		Name:  "feedback",
		Usage: "Send, list or export feedback",
		Commands: []*cli.Command{
			{
				Name:  "send",
				Usage: "Submit a rating and comment to a running mundi server",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  "rating",
						Usage: "Star rating, 1 to 5",
					},
					&cli.StringFlag{
						Name:  "comment",
						Usage: "Comment text",
					},
					&cli.StringFlag{
						Name:  "endpoint",
						Usage: "Feedback endpoint URL (defaults to the configured server)",
					},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					return sendFeedback(ctx, c, c.Int("rating"), c.String("comment"), c.String("endpoint"))
				},
			},
			{
				Name:  "list",
				Usage: "List feedback stored in the local database",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  "limit",
						Usage: "Maximum number of records (0 for no limit)",
						Value: 50,
					},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					return listFeedback(c, c.Int("limit"))
				},
			},
			{
				Name:      "export",
				Usage:     "Export all feedback as zstd-compressed JSON lines",
				ArgsUsage: "<file>",
				Action: func(ctx context.Context, c *cli.Command) error {
					if c.Args().Len() == 0 {
						return fmt.Errorf("usage: mundi feedback export <file>")
					}
					return exportFeedback(c, c.Args().First())
				},
			},
		},
	}
}

func sendFeedback(ctx context.Context, c *cli.Command, rating int, comment, endpoint string) error {
	log.SetGlobalDebug(c.Bool("debug"))

	cfg, err := config.LoadConfig(c.String("config"))
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if endpoint == "" {
		endpoint = fmt.Sprintf("http://%s:%s/api/feedback", cfg.Server.Host, cfg.Server.Port)
	}

	if rating == 0 {
		return feedback.ErrMissingRating
	}
	if rating < 1 || rating > feedback.MaxRating {
		return feedback.ErrBadRating
	}

	client := feedback.NewClient(endpoint, cfg.Source.Timeout.Duration)
	ack, err := client.Submit(ctx, rating, comment)
	if err != nil {
		return fmt.Errorf("submitting feedback: %w", err)
	}

	fmt.Printf("Feedback %s: %s\n", ack.Status, ack.ID)
	return nil
}

func openStore(c *cli.Command) (*storage.Store, error) {
	log.SetGlobalDebug(c.Bool("debug"))

	cfg, err := config.LoadConfig(c.String("config"))
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return storage.NewStore(cfg.StorageDir)
}

func listFeedback(c *cli.Command, limit int) error {
	store, err := openStore(c)
	if err != nil {
		return err
	}
	defer func() {
		if err := store.Close(); err != nil {
			fmt.Printf("Warning: failed to close store: %v\n", err)
		}
	}()

	records, err := store.List(limit)
	if err != nil {
		return err
	}

	if len(records) == 0 {
		fmt.Println("No feedback stored.")
		return nil
	}
	for _, fb := range records {
		fmt.Printf("%s  %d★  %s\n    %s\n", fb.CreatedAt.Format("2006-01-02 15:04"), fb.Rating, fb.ID, fb.Comment)
	}
	return nil
}

func exportFeedback(c *cli.Command, path string) error {
	store, err := openStore(c)
	if err != nil {
		return err
	}
	defer func() {
		if err := store.Close(); err != nil {
			fmt.Printf("Warning: failed to close store: %v\n", err)
		}
	}()

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating export file: %w", err)
	}
	defer func() {
		if err := f.Close(); err != nil {
			fmt.Printf("Warning: failed to close export file: %v\n", err)
		}
	}()

	if err := store.Export(f); err != nil {
		return fmt.Errorf("exporting feedback: %w", err)
	}

	count, err := store.Count()
	if err != nil {
		return err
	}
	fmt.Printf("Exported %d feedback records to %s\n", count, path)
	return nil
}
