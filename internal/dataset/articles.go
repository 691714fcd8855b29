package dataset

import (
	"github.com/euncover/euncover/internal/mep"
)

// Article table columns.
const (
	colTitle = "title"
	colLink  = "link"
)

// ReadArticles reads the articles table in file order. Rows missing a
// name, title or link are skipped and returned separately.
func ReadArticles(path string) ([]mep.Article, []InvalidRow, error) {
	t, err := readTable(path, NameColumn, colTitle, colLink)
	if err != nil {
		return nil, nil, err
	}

	articles := make([]mep.Article, 0, len(t.rows))
	var invalid []InvalidRow
	for i, rec := range t.rows {
		a := mep.Article{
			FullName: t.get(rec, NameColumn),
			Title:    t.get(rec, colTitle),
			Link:     t.get(rec, colLink),
		}
		if err := validateRecord(&a); err != nil {
			invalid = append(invalid, invalidRow(i, a.FullName, err))
			continue
		}
		articles = append(articles, a)
	}
	return articles, invalid, nil
}

// ArticlesFor returns the articles whose name equals name, preserving order.
// The result is empty, not nil, when nothing matches.
func ArticlesFor(articles []mep.Article, name string) []mep.Article {
	out := make([]mep.Article, 0)
	for _, a := range articles {
		if a.FullName == name {
			out = append(out, a)
		}
	}
	return out
}
