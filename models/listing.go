package models

// Item is one normalized search result from either marketplace, before the
// user has annotated it.
type Item struct {
	Title        string
	PriceDisplay string   // price as shown by the source, "N/A" when absent
	PriceNumeric *float64 // nil when the source provides no parseable price
	Link         string
	Description  string
}

// WithinCeiling reports whether the item passes the optional price ceiling.
// Items with no parseable price always pass.
func (i *Item) WithinCeiling(maxPrice *float64) bool {
	if maxPrice == nil || i.PriceNumeric == nil {
		return true
	}
	return *i.PriceNumeric <= *maxPrice
}

// SavedListing is the annotated record persisted to SQLite.
type SavedListing struct {
	ID          int64
	Platform    string
	Title       string
	Price       string // display form, e.g. "$45.00"
	Link        string
	Description string
	Notes       string
}
