package api

// Schema describes the dataset under review.
type Schema struct {
	Dataset string  `json:"dataset"`
	Tables  []Table `json:"tables"`
}

// Table is one table of the dataset.
type Table struct {
	Name     string   `json:"name"`
	RowCount int64    `json:"rowCount"`
	Columns  []Column `json:"columns"`
}

// Column carries per-column cleaning stats.
type Column struct {
	Name    string  `json:"name"`
	Type    string  `json:"type"`
	NullPct float64 `json:"nullPct"`
}

// Issue is one data-quality finding.
type Issue struct {
	ID       string `json:"id"`
	Table    string `json:"table"`
	Column   string `json:"column,omitempty"`
	Rule     string `json:"rule"`
	Severity string `json:"severity"`
	Summary  string `json:"summary"`
	Count    int64  `json:"count"`
	Favorite bool   `json:"favorite"`
}

// IssueFilter narrows an issue listing. Zero values mean "any".
type IssueFilter struct {
	Table        string
	Severity     string
	FavoriteOnly bool
}

// SampleSet is a page of raw rows from one table.
type SampleSet struct {
	Table   string     `json:"table"`
	Columns []string   `json:"columns"`
	Rows    [][]string `json:"rows"`
}

// Meta identifies the cleaning service.
type Meta struct {
	Service string `json:"service"`
	Version string `json:"version"`
}
