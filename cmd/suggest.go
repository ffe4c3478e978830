package cmd

import (
	"context"
	"fmt"

	"github.com/rferrer/mundi/pkg/countries"
	"github.com/urfave/cli/v3"
)

// SuggestCommand creates the suggest command
func SuggestCommand() *cli.Command {
	return &cli.Command{
		Name:      "suggest",
		Usage:     "Show name autocomplete candidates for the given text",
		ArgsUsage: "<text>",
		Action: func(ctx context.Context, c *cli.Command) error {
			if c.Args().Len() == 0 {
				return fmt.Errorf("usage: mundi suggest <text>")
			}
			return runSuggest(ctx, c, c.Args().First())
		},
	}
}

func runSuggest(ctx context.Context, c *cli.Command, text string) error {
	_, client, err := loadSetup(c)
	if err != nil {
		return err
	}

	list, err := client.AllCountries(ctx)
	if err != nil {
		return fmt.Errorf("loading catalog: %w", err)
	}
	catalog := countries.NewCatalog(list)

	suggestions := catalog.Suggest(text)
	if len(suggestions) == 0 {
		fmt.Println(noDataStyle.Render("no suggestions"))
		return nil
	}

	for i, sg := range suggestions {
		fmt.Printf("%d. %s (%s)\n", i+1, highlightTerm(sg), sg.Country.Code)
	}
	return nil
}
