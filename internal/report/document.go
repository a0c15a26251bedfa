package report

import (
	"fmt"
	"strings"
	"time"

	"childstat/internal/dataset"
)

// ChartBlock pairs a rendered chart with its interpretive paragraph
type ChartBlock struct {
	Heading    string
	ImageFile  string
	Commentary string
}

// DocumentInput carries everything the narrative document needs. All tables
// arrive fully materialized; assembly is pure string building.
type DocumentInput struct {
	RunID       string
	GeneratedAt time.Time
	Tables      []*dataset.Table
	HeadRows    int
	Missing     *dataset.Table
	MergedRows  int
	Charts      []ChartBlock
}

// BuildDocument assembles the Markdown report: introduction, dataset shapes
// and head previews, the missing-value table, one block per chart with its
// commentary, and the closing narrative.
func BuildDocument(in DocumentInput) string {
	var b strings.Builder

	b.WriteString("# Child deprivation and maternity leave\n\n")
	b.WriteString("This report explores two UNICEF country indicators: the share of ")
	b.WriteString("children experiencing deprivation of basic needs, and the statutory ")
	b.WriteString("duration of maternity leave. The two indicator tables are joined on ")
	b.WriteString("the ISO-3166 alpha-3 country code; a third metadata table is used ")
	b.WriteString("only to gauge data completeness. Two of the charts below are built ")
	b.WriteString("on simulated data and are labelled as such.\n\n")

	b.WriteString("## Datasets\n\n")
	for _, t := range in.Tables {
		shape := t.Shape()
		b.WriteString(fmt.Sprintf("`%s`: %d rows x %d columns\n\n", t.Name, shape.Rows, shape.Cols))
	}

	headRows := in.HeadRows
	if headRows <= 0 {
		headRows = 5
	}
	for _, t := range in.Tables {
		b.WriteString(fmt.Sprintf("### Preview: %s\n\n", t.Name))
		b.WriteString(markdownTable(t.Head(headRows)))
		b.WriteString("\n")
	}

	if in.Missing != nil {
		b.WriteString("## Missing values\n\n")
		b.WriteString("Counts of empty cells per column, per source table. A blank cell ")
		b.WriteString("means the table does not have that column.\n\n")
		b.WriteString(markdownTable(in.Missing))
		b.WriteString("\n")
	}

	for _, chart := range in.Charts {
		b.WriteString(fmt.Sprintf("## %s\n\n", chart.Heading))
		b.WriteString(fmt.Sprintf("![%s](%s)\n\n", chart.Heading, chart.ImageFile))
		b.WriteString(chart.Commentary)
		b.WriteString("\n\n")
	}

	b.WriteString("## Closing notes\n\n")
	b.WriteString(fmt.Sprintf(
		"The joined table retains %d country rows, those with indicator values on both "+
			"sides of the join. The association between maternity leave and child "+
			"deprivation shown above is descriptive, not causal: both indicators track "+
			"national income and social policy more broadly. The simulated map and time "+
			"series stand in for real geocoded and longitudinal data and should be read "+
			"as placeholders for what such views would show.\n", in.MergedRows))

	b.WriteString(fmt.Sprintf("\n---\n\nGenerated %s, run %s\n",
		in.GeneratedAt.Format("2006-01-02 15:04:05 MST"), in.RunID))

	return b.String()
}

// markdownTable renders a table as GitHub-style Markdown
func markdownTable(t *dataset.Table) string {
	var b strings.Builder

	b.WriteString("| ")
	b.WriteString(strings.Join(t.Columns, " | "))
	b.WriteString(" |\n|")
	for range t.Columns {
		b.WriteString("---|")
	}
	b.WriteString("\n")

	for _, row := range t.Rows {
		b.WriteString("| ")
		b.WriteString(strings.Join(row, " | "))
		b.WriteString(" |\n")
	}

	return b.String()
}
