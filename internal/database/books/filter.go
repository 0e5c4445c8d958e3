package books

import (
	"strings"

	"gorm.io/gorm"
)

// FilterAll is the sentinel the front end sends for "no filter applied".
const FilterAll = "Hepsi"

// Filter holds the optional list-query constraints. Empty values and the
// FilterAll sentinel mean "no constraint"; unknown values are treated as
// real filter values, never as errors.
type Filter struct {
	Category string
	Level    string
	Search   string
}

// clause is one structured predicate. Clauses are combined with AND and
// always bound as query parameters, never spliced into SQL text.
type clause struct {
	expr string
	args []any
}

// clauses compiles the active constraints in a fixed order: category,
// level, then free-text search.
func (f Filter) clauses() []clause {
	var cs []clause

	if f.Category != "" && f.Category != FilterAll {
		cs = append(cs, clause{expr: "category = ?", args: []any{f.Category}})
	}
	if f.Level != "" && f.Level != FilterAll {
		cs = append(cs, clause{expr: "level = ?", args: []any{f.Level}})
	}
	if f.Search != "" {
		// One search term reused across title, author and notes.
		term := "%" + strings.ToLower(f.Search) + "%"
		cs = append(cs, clause{
			expr: "(LOWER(title) LIKE ? OR LOWER(author) LIKE ? OR LOWER(notes) LIKE ?)",
			args: []any{term, term, term},
		})
	}

	return cs
}

// apply adds every active clause to the query.
func (f Filter) apply(db *gorm.DB) *gorm.DB {
	for _, c := range f.clauses() {
		db = db.Where(c.expr, c.args...)
	}
	return db
}
