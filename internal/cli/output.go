package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"contract-mapper/internal/diagnostic"
	"contract-mapper/internal/mapping"
	"contract-mapper/internal/match"
)

var headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)

var cellStyle = lipgloss.NewStyle().Padding(0, 1)

func renderTable(w io.Writer, headers []string, rows [][]string) {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Headers(headers...).
		Rows(rows...)

	fmt.Fprintln(w, t.Render())
}

func printRules(w io.Writer, rules []mapping.Rule) {
	rows := make([][]string, 0, len(rules))
	for _, r := range rules {
		rows = append(rows, []string{
			r.ID,
			r.SourceField,
			r.TargetField,
			strconv.Itoa(r.ConfidencePercent()) + "%",
			string(r.Status),
			r.Transformation,
		})
	}
	renderTable(w, []string{"ID", "SOURCE", "TARGET", "CONFIDENCE", "STATUS", "TRANSFORMATION"}, rows)
}

func printFindings(w io.Writer, findings diagnostic.Findings) {
	rows := make([][]string, 0, len(findings))
	for _, f := range findings {
		rows = append(rows, []string{f.Severity.String(), string(f.Code), f.FieldPath, f.Message, f.Suggestion})
	}
	renderTable(w, []string{"SEVERITY", "CODE", "FIELD", "MESSAGE", "SUGGESTION"}, rows)
}

func printCandidates(w io.Writer, candidates match.CandidateList) {
	rows := make([][]string, 0, len(candidates))
	for _, c := range candidates {
		rows = append(rows, []string{
			c.TargetPath,
			fmt.Sprintf("%.2f", c.Score()),
			fmt.Sprintf("%.2f", c.Breakdown.Name),
			c.Breakdown.Type.Compatibility.String(),
			fmt.Sprintf("%.2f", c.Breakdown.Description),
			fmt.Sprintf("%.2f", c.Breakdown.Format),
		})
	}
	renderTable(w, []string{"TARGET", "SCORE", "NAME", "TYPE", "DESCRIPTION", "FORMAT"}, rows)
}
