package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rferrer/mundi/pkg/browse"
	"github.com/rferrer/mundi/pkg/countries"
	"github.com/rferrer/mundi/pkg/feedback"
	"github.com/urfave/cli/v3"
)

// Define styles using lipgloss
var (
	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1).
			Margin(0, 0, 1, 2)

	nameStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("86"))

	metaStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	pagerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("214")).
			Margin(1, 0, 0, 2)

	noticeStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("203")).
			Margin(1, 0, 1, 2)

	noDataStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Italic(true).
			Margin(1, 0, 1, 2)

	matchStyle = lipgloss.NewStyle().
			Bold(true).
			Underline(true)
)

// BrowseCommand creates the browse command
func BrowseCommand() *cli.Command {
	return &cli.Command{
		Name:  "browse",
		Usage: "Browse countries with filters and interactive paging",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "name",
				Usage: "Filter by country name",
			},
			&cli.StringFlag{
				Name:  "code",
				Usage: "Filter by ISO alpha code",
			},
			&cli.StringFlag{
				Name:  "capital",
				Usage: "Filter by capital city",
			},
			&cli.StringFlag{
				Name:  "region",
				Usage: "Filter by region (Africa, Americas, Antarctic, Asia, Europe, Oceania)",
			},
			&cli.BoolFlag{
				Name:  "no-interactive",
				Usage: "Print the first page and exit",
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			filters := browse.Filters{
				Name:    c.String("name"),
				Code:    c.String("code"),
				Capital: c.String("capital"),
				Region:  c.String("region"),
			}
			return runBrowse(ctx, c, filters, c.Bool("no-interactive"))
		},
	}
}

// termSurface renders pages and notices to the terminal.
type termSurface struct{}

func (t *termSurface) ShowPage(view browse.PageView) {
	fmt.Println()
	for i, country := range view.Countries {
		header := nameStyle.Render(fmt.Sprintf("%d. %s", i+1, country.CommonName))
		lines := []string{
			header,
			fmt.Sprintf("Capital: %s", orDash(country.Capital)),
			fmt.Sprintf("Region: %s", country.Region),
			fmt.Sprintf("Population: %d", country.Population),
		}
		fmt.Println(cardStyle.Render(strings.Join(lines, "\n")))
	}

	prev, next := "[p]rev", "[n]ext"
	if !view.HasPrevious {
		prev = metaStyle.Render("prev")
	}
	if !view.HasNext {
		next = metaStyle.Render("next")
	}
	fmt.Println(pagerStyle.Render(fmt.Sprintf(
		"Page %d/%d — %d countries — %s %s", view.Page, view.TotalPages, view.TotalCount, prev, next)))
}

func (t *termSurface) ShowEmpty() {
	fmt.Println(noDataStyle.Render("No countries found."))
}

func (t *termSurface) ShowNotice(msg string) {
	fmt.Println(noticeStyle.Render(msg))
}

func orDash(s string) string {
	if s == "" {
		return "—"
	}
	return s
}

// termFeedbackSurface renders the rating capture flow in the terminal.
type termFeedbackSurface struct{}

func (t *termFeedbackSurface) SetStars(n int) {
	if n == 0 {
		return
	}
	fmt.Println("  " + nameStyle.Render(strings.Repeat("★", n)+strings.Repeat("☆", feedback.MaxRating-n)))
}

func (t *termFeedbackSurface) SetDescription(text string) {
	if text != "" {
		fmt.Println("  " + metaStyle.Render(text))
	}
}

func (t *termFeedbackSurface) ShowAck() {
	fmt.Println(pagerStyle.Render("Thanks for your feedback!"))
}

func (t *termFeedbackSurface) HideAck() {}
func (t *termFeedbackSurface) Close()   {}

func runBrowse(ctx context.Context, c *cli.Command, filters browse.Filters, once bool) error {
	cfg, client, err := loadSetup(c)
	if err != nil {
		return err
	}

	client.SetBusyFunc(func(busy bool) {
		if busy {
			fmt.Println(metaStyle.Render("loading..."))
		}
	})

	surface := &termSurface{}
	pager := browse.NewPager(cfg.PageSize, surface)
	dispatcher := browse.NewDispatcher(client, pager, surface)

	dispatcher.Dispatch(ctx, filters)
	if once {
		return nil
	}

	// The catalog backs the in-session suggest command.
	catalogList, err := client.AllCountries(ctx)
	if err != nil {
		return fmt.Errorf("loading catalog: %w", err)
	}
	catalog := countries.NewCatalog(catalogList)

	endpoint := fmt.Sprintf("http://%s:%s/api/feedback", cfg.Server.Host, cfg.Server.Port)
	flow := feedback.NewFlow(feedback.NewClient(endpoint, cfg.Source.Timeout.Duration), &termFeedbackSurface{})

	fmt.Println(metaStyle.Render("commands: n(ext), p(rev), r(edraw), 1-9 detail, s <text> suggest, use <n>, f <filters...>,"))
	fmt.Println(metaStyle.Render("          rate <1-5>, comment <text>, submit, q(uit)"))

	var suggestions []countries.Suggestion
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			return scanner.Err()
		}
		input := strings.TrimSpace(scanner.Text())
		switch {
		case input == "q" || input == "quit":
			return nil
		case input == "n":
			pager.GoNext()
		case input == "p":
			pager.GoPrevious()
		case input == "r":
			pager.Render()
		case strings.HasPrefix(input, "s "):
			suggestions = catalog.Suggest(strings.TrimPrefix(input, "s "))
			if len(suggestions) == 0 {
				fmt.Println(noDataStyle.Render("no suggestions"))
				continue
			}
			for i, sg := range suggestions {
				fmt.Printf("  %d. %s\n", i+1, highlightTerm(sg))
			}
		case strings.HasPrefix(input, "use "):
			n, err := strconv.Atoi(strings.TrimSpace(strings.TrimPrefix(input, "use ")))
			if err != nil || n < 1 || n > len(suggestions) {
				fmt.Println(noticeStyle.Render("no such suggestion"))
				continue
			}
			pager.Replace([]countries.Country{suggestions[n-1].Country})
			suggestions = nil
		case strings.HasPrefix(input, "f "):
			dispatcher.Dispatch(ctx, parseFilterArgs(strings.Fields(strings.TrimPrefix(input, "f "))))
		case strings.HasPrefix(input, "rate "):
			n, err := strconv.Atoi(strings.TrimSpace(strings.TrimPrefix(input, "rate ")))
			if err != nil {
				fmt.Println(noticeStyle.Render("usage: rate <1-5>"))
				continue
			}
			if err := flow.SetRating(n); err != nil {
				fmt.Println(noticeStyle.Render(err.Error()))
			}
		case strings.HasPrefix(input, "comment "):
			flow.SetComment(strings.TrimPrefix(input, "comment "))
		case input == "submit":
			if err := flow.Submit(ctx); err != nil {
				fmt.Println(noticeStyle.Render(err.Error()))
			}
		case input != "":
			if n, err := strconv.Atoi(input); err == nil {
				showDetail(pager, n)
			} else {
				fmt.Println(metaStyle.Render("unknown command"))
			}
		}
	}
}

// parseFilterArgs reads "name=x code=y capital=z region=w" pairs.
func parseFilterArgs(args []string) browse.Filters {
	var f browse.Filters
	for _, arg := range args {
		key, value, ok := strings.Cut(arg, "=")
		if !ok {
			f.Name = arg
			continue
		}
		switch key {
		case "name":
			f.Name = value
		case "code":
			f.Code = value
		case "capital":
			f.Capital = value
		case "region":
			f.Region = value
		}
	}
	return f
}

func showDetail(pager *browse.Pager, n int) {
	view, ok := pager.View()
	if !ok || n < 1 || n > len(view.Countries) {
		fmt.Println(noticeStyle.Render("no such card"))
		return
	}
	c := view.Countries[n-1]

	lines := []string{
		nameStyle.Render(c.CommonName),
		metaStyle.Render(c.OfficialName),
		fmt.Sprintf("Code: %s", c.Code),
		fmt.Sprintf("Capital: %s", orDash(c.Capital)),
		fmt.Sprintf("Region: %s", c.Region),
	}
	if c.Subregion != "" {
		lines = append(lines, fmt.Sprintf("Subregion: %s", c.Subregion))
	}
	lines = append(lines,
		fmt.Sprintf("Population: %d", c.Population),
		fmt.Sprintf("Area: %.0f km2", c.Area),
		fmt.Sprintf("Timezones: %s", strings.Join(c.Timezones, ", ")),
	)
	if dial := c.DialCode(); dial != "" {
		lines = append(lines, fmt.Sprintf("Dial code: %s", dial))
	}
	if c.MapURL != "" {
		lines = append(lines, metaStyle.Render(c.MapURL))
	}
	fmt.Println(cardStyle.Render(strings.Join(lines, "\n")))
}

// highlightTerm bolds the matched span at its actual position.
func highlightTerm(sg countries.Suggestion) string {
	name := sg.Country.CommonName
	start, length := sg.MatchStart, sg.MatchLen
	if start < 0 || start+length > len(name) {
		return name
	}
	return name[:start] + matchStyle.Render(name[start:start+length]) + name[start+length:]
}
