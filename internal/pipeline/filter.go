package pipeline

import (
	"fmt"
	"strings"
	"time"

	"product-apis/internal/models"
)

// DateLayout is the calendar date format used by release dates and the
// date-range query parameters.
const DateLayout = "2006-01-02"

// DateFilter holds the parsed, optional release-date bounds. Both bounds are
// inclusive.
type DateFilter struct {
	Start *time.Time
	End   *time.Time
}

// Active reports whether at least one bound was supplied.
func (f DateFilter) Active() bool {
	return f.Start != nil || f.End != nil
}

// ParseDateFilter validates the raw query parameters. A supplied bound that
// does not parse is a caller error, not a silently-dropped filter.
func ParseDateFilter(start, end string) (DateFilter, error) {
	var f DateFilter
	if start != "" {
		t, err := time.Parse(DateLayout, start)
		if err != nil {
			return DateFilter{}, fmt.Errorf("invalid release_date_start %q, expected YYYY-MM-DD", start)
		}
		f.Start = &t
	}
	if end != "" {
		t, err := time.Parse(DateLayout, end)
		if err != nil {
			return DateFilter{}, fmt.Errorf("invalid release_date_end %q, expected YYYY-MM-DD", end)
		}
		f.End = &t
	}
	return f, nil
}

// FilterByDate keeps products whose release date falls within the bounds.
// With no active bound every record passes untouched, including records with
// no release date at all. With any bound active, a record whose release date
// is absent or unparseable is excluded.
func FilterByDate(products []models.Product, f DateFilter) []models.Product {
	if !f.Active() {
		return products
	}
	out := make([]models.Product, 0, len(products))
	for _, p := range products {
		if p.ReleaseDate == nil {
			continue
		}
		t, err := time.Parse(DateLayout, *p.ReleaseDate)
		if err != nil {
			continue
		}
		if f.Start != nil && t.Before(*f.Start) {
			continue
		}
		if f.End != nil && t.After(*f.End) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// ParseBrandFilter splits the comma-separated brands parameter into a set of
// trimmed names. An empty string, or one with no non-empty tokens, means no
// filter and returns nil.
func ParseBrandFilter(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	set := make([]string, 0, len(parts))
	for _, part := range parts {
		if name := strings.TrimSpace(part); name != "" {
			set = append(set, name)
		}
	}
	if len(set) == 0 {
		return nil
	}
	return set
}

// FilterByBrand keeps products whose brand name exactly matches one entry in
// the set. Matching is case-sensitive; products without a brand name are
// excluded whenever the filter is active.
func FilterByBrand(products []models.Product, set []string) []models.Product {
	if len(set) == 0 {
		return products
	}
	out := make([]models.Product, 0, len(products))
	for _, p := range products {
		if p.BrandName == nil {
			continue
		}
		for _, name := range set {
			if *p.BrandName == name {
				out = append(out, p)
				break
			}
		}
	}
	return out
}
