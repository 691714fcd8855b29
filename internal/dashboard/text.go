package dashboard

import (
	"fmt"
	"io"
	"strings"

	"github.com/euncover/euncover/internal/declaration"
	"github.com/mattn/go-runewidth"
)

// MaxCellWidth truncates wide table cells in terminal output.
const MaxCellWidth = 40

// WriteText renders page for a terminal.
func WriteText(w io.Writer, page *Page) error {
	var b strings.Builder

	if page.Welcome != nil {
		writeWelcome(&b, page.Welcome)
		_, err := io.WriteString(w, b.String())
		return err
	}

	if p := page.Profile; p != nil {
		fmt.Fprintf(&b, "Information about %s\n", p.Name)
		writeError(&b, p.Error)
		if p.HasDetails() {
			writeTable(&b, nil, [][]string{
				{"Representing Country", p.Country},
				{"National party", p.Party},
				{"EU party", p.EUGroup},
				{"EU Committees", p.Committees},
				{"EU Delegations", p.Delegations},
			})
		}
		b.WriteString("\nLinks to profiles:\n")
		for _, l := range p.Links {
			fmt.Fprintf(&b, "  - %s: %s\n", l.Title, l.URL)
		}
	}

	if d := page.Declaration; d != nil {
		b.WriteString("\nDeclared Interest\n")
		writeError(&b, d.Error)
		if d.Report != nil {
			writeReport(&b, d.Report)
		}
	}

	if n := page.Network; n != nil {
		b.WriteString("\nMEP Consolidated Interest Map\n")
		writeError(&b, n.Error)
		if n.Error == nil {
			fmt.Fprintf(&b, "  %d entities, %d relations", n.Nodes, n.Edges)
			if n.Dangling > 0 {
				fmt.Fprintf(&b, " (%d not drawn: unknown endpoint)", n.Dangling)
			}
			b.WriteString("\n")
		}
	}

	if a := page.Articles; a != nil {
		b.WriteString("\nFeatured in Articles\n")
		writeError(&b, a.Error)
		if a.Message != "" {
			fmt.Fprintf(&b, "  %s\n", a.Message)
		}
		for _, art := range a.Articles {
			fmt.Fprintf(&b, "  • %s\n    %s\n", art.Title, art.Link)
		}
	}

	if page.About != "" {
		fmt.Fprintf(&b, "\nAbout this site:\n  %s\n", page.About)
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func writeWelcome(b *strings.Builder, wc *Welcome) {
	fmt.Fprintf(b, "%s\n%s\n", wc.Title, wc.Subtitle)
	for _, blk := range wc.Blocks {
		fmt.Fprintf(b, "\n%s\n", blk.Heading)
		for _, p := range blk.Paragraphs {
			fmt.Fprintf(b, "  %s\n", p)
		}
		for _, item := range blk.Items {
			fmt.Fprintf(b, "  - %s\n", item)
		}
	}
}

func writeReport(b *strings.Builder, r *declaration.Report) {
	fmt.Fprintf(b, "%s\n", r.Heading)
	for _, s := range r.Sections {
		fmt.Fprintf(b, "\n  %s\n", s.Title)
		switch {
		case s.Table != nil:
			writeTable(b, s.Table.Columns, s.Table.Rows)
		case s.Text != "":
			fmt.Fprintf(b, "  %s\n", s.Text)
		default:
			fmt.Fprintf(b, "  %s\n", s.Fallback)
		}
	}
}

func writeError(b *strings.Builder, pe *PanelError) {
	if pe != nil {
		fmt.Fprintf(b, "  error: %s\n", pe.Message)
	}
}

// writeTable aligns columns by display width so accented names line up.
func writeTable(b *strings.Builder, header []string, rows [][]string) {
	cols := len(header)
	for _, r := range rows {
		if len(r) > cols {
			cols = len(r)
		}
	}

	cell := func(row []string, i int) string {
		if i >= len(row) {
			return ""
		}
		return runewidth.Truncate(strings.ReplaceAll(row[i], "\n", " "), MaxCellWidth, "…")
	}

	widths := make([]int, cols)
	for _, r := range append([][]string{header}, rows...) {
		for i := 0; i < cols; i++ {
			if w := runewidth.StringWidth(cell(r, i)); w > widths[i] {
				widths[i] = w
			}
		}
	}

	line := func(row []string) {
		b.WriteString(" ")
		for i := 0; i < cols; i++ {
			b.WriteString(" ")
			b.WriteString(runewidth.FillRight(cell(row, i), widths[i]))
		}
		b.WriteString("\n")
	}

	if len(header) > 0 {
		line(header)
		sep := make([]string, cols)
		for i, w := range widths {
			sep[i] = strings.Repeat("-", w)
		}
		line(sep)
	}
	for _, r := range rows {
		line(r)
	}
}
