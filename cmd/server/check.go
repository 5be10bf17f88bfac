package main

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/ricci/novel-reader-go/internal/config"
	"github.com/ricci/novel-reader-go/internal/content"
	"github.com/ricci/novel-reader-go/internal/library"
	"github.com/ricci/novel-reader-go/pkg/logger"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Audit the published index and manifests",
	Long:  "Fetch every manifest and report slug collisions, chapters listed as both public and premium, chapters without a body url and unreachable manifests",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		logger.Init(cfg.LogLevel, cfg.IsProduction())

		client := content.NewClient(cfg)
		entries, err := client.FetchIndex(cmd.Context())
		if err != nil {
			return err
		}
		results := library.Gather(cmd.Context(), client, entries, cfg.FetchConcurrency)
		issues := library.Audit(entries, results)

		if len(issues) == 0 {
			fmt.Printf("\n✅ %d novels checked, no issues found\n", len(entries))
			return nil
		}

		fmt.Printf("\n⚠️  %d issues in %d novels\n\n", len(issues), len(entries))
		fmt.Println(issueTable(issues).View())
		return fmt.Errorf("%d issues found", len(issues))
	},
}

func issueTable(issues []library.Issue) table.Model {
	columns := []table.Column{
		{Title: "Novel", Width: 32},
		{Title: "Issue", Width: 18},
		{Title: "Subject", Width: 24},
		{Title: "Detail", Width: 48},
	}

	rows := make([]table.Row, 0, len(issues))
	for _, issue := range issues {
		rows = append(rows, table.Row{
			truncateString(issue.Novel, 30),
			issue.Kind,
			truncateString(issue.Subject, 22),
			truncateString(issue.Detail, 46),
		})
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(false),
		table.WithHeight(len(rows)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.NoColor{}).
		Bold(false)
	t.SetStyles(s)

	return t
}

func truncateString(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-3]) + "..."
}
