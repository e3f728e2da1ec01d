// Package dashboard holds the registration and enrollment summary command
package dashboard

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/shsenroll/internal/cli/handler"
	"github.com/thenoetrevino/shsenroll/internal/models"
)

// wordWrap is the width handed to the markdown renderer
const wordWrap = 80

// DashboardCmd returns the dashboard command
func DashboardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Show registration and enrollment totals",
		Long: `Show how many students are registered, enrolled and unenrolled,
with enrollments broken down by grade level and strand.

Examples:
  shsenroll dashboard
  shsenroll dashboard --json
`,
		RunE: handler.SimpleCommand(&dashboardHandler{}),
	}

	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output")

	return cmd
}

// dashboardHandler implements handler.Handler for the dashboard
type dashboardHandler struct{}

// Execute implements the Handler interface
func (h *dashboardHandler) Execute(ctx context.Context, args *handler.Arguments) (any, error) {
	stats, err := args.Service().Dashboard(ctx)
	if err != nil {
		return nil, err
	}
	return &dashboardResult{DashboardStats: stats}, nil
}

// dashboardResult renders stats as markdown for the terminal
type dashboardResult struct {
	*models.DashboardStats
}

// Human implements cli.HumanRenderer
func (r *dashboardResult) Human() string {
	md := Markdown(r.DashboardStats)
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(wordWrap),
	)
	if err != nil {
		return md
	}
	out, err := renderer.Render(md)
	if err != nil {
		return md
	}
	return strings.TrimRight(out, "\n")
}

// Markdown formats dashboard stats as a markdown document
func Markdown(stats *models.DashboardStats) string {
	var b strings.Builder

	b.WriteString("# Enrollment Dashboard\n\n")
	b.WriteString("| Registered | Enrolled | Unenrolled |\n")
	b.WriteString("|---:|---:|---:|\n")
	fmt.Fprintf(&b, "| %d | %d | %d |\n\n", stats.Registered, stats.Enrolled, stats.Unenrolled)

	b.WriteString("## By grade level\n\n")
	b.WriteString("| Grade | Enrolled |\n|---|---:|\n")
	for _, grade := range models.GradeLevels() {
		fmt.Fprintf(&b, "| Grade %s | %d |\n", grade, stats.ByGrade[grade])
	}

	b.WriteString("\n## By strand\n\n")
	header := []string{"Strand"}
	align := []string{"---"}
	for _, grade := range models.GradeLevels() {
		header = append(header, "Grade "+grade)
		align = append(align, "---:")
	}
	header = append(header, "Total")
	align = append(align, "---:")
	b.WriteString("| " + strings.Join(header, " | ") + " |\n")
	b.WriteString("|" + strings.Join(align, "|") + "|\n")
	for _, strand := range models.Strands() {
		row := []string{strand}
		total := 0
		for _, grade := range models.GradeLevels() {
			count := stats.ByStrand[strand][grade]
			total += count
			row = append(row, fmt.Sprint(count))
		}
		row = append(row, fmt.Sprint(total))
		b.WriteString("| " + strings.Join(row, " | ") + " |\n")
	}

	return b.String()
}
