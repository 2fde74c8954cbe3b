package pipeline

import (
	"strconv"
	"strings"
	"time"

	"product-apis/internal/models"
)

// BrandRecord is one parsed entry of the upstream brand directory.
type BrandRecord struct {
	Name        string
	YearFounded *int
	Street      *string
	City        *string
	State       *string
	PostalCode  *string
	Country     *string
}

// ParseBrandRecords parses the raw directory payload. Entries without a
// usable name cannot participate in the join and are dropped.
func ParseBrandRecords(items []any) []BrandRecord {
	out := make([]BrandRecord, 0, len(items))
	for _, item := range items {
		rec, ok := item.(map[string]any)
		if !ok {
			continue
		}
		name, ok := rec["name"].(string)
		if !ok || name == "" {
			continue
		}
		b := BrandRecord{
			Name:        name,
			YearFounded: yearField(rec["yearFounded"]),
		}
		if addr, ok := rec["address"].(map[string]any); ok {
			b.Street = stringField(addr, "street")
			b.City = stringField(addr, "city")
			b.State = stringField(addr, "state")
			b.PostalCode = stringField(addr, "postalCode")
			b.Country = stringField(addr, "country")
		}
		out = append(out, b)
	}
	return out
}

// yearField accepts a founding year as a JSON number or a numeric string;
// anything else means "unknown".
func yearField(v any) *int {
	switch t := v.(type) {
	case float64:
		y := int(t)
		return &y
	case string:
		if y, err := strconv.Atoi(strings.TrimSpace(t)); err == nil {
			return &y
		}
	}
	return nil
}

// Detail builds the nested brand object for the merged response. The company
// age is computed against the supplied instant so callers (and tests) control
// "now".
func (b BrandRecord) Detail(now time.Time) *models.BrandDetail {
	return &models.BrandDetail{
		Name:        b.Name,
		YearFounded: b.YearFounded,
		CompanyAge:  CompanyAge(b.YearFounded, now),
		Address:     ComposeAddress(b.Street, b.City, b.State, b.PostalCode, b.Country),
	}
}

// CompanyAge is the current calendar year minus the founding year, or nil
// when the founding year is unknown.
func CompanyAge(year *int, now time.Time) *int {
	if year == nil {
		return nil
	}
	age := now.Year() - *year
	return &age
}

// ComposeAddress joins the non-empty components with ", ". All components
// empty means no address at all, not an empty string.
func ComposeAddress(parts ...*string) *string {
	segs := make([]string, 0, len(parts))
	for _, p := range parts {
		if p == nil {
			continue
		}
		if s := strings.TrimSpace(*p); s != "" {
			segs = append(segs, s)
		}
	}
	if len(segs) == 0 {
		return nil
	}
	addr := strings.Join(segs, ", ")
	return &addr
}

// Join attaches brand details to each product by exact name match against the
// directory. The first matching entry wins; a product with no match (or no
// brand name) gets a null brand.
func Join(products []models.Product, directory []BrandRecord, now time.Time) []models.MergedProduct {
	out := make([]models.MergedProduct, 0, len(products))
	for _, p := range products {
		var detail *models.BrandDetail
		if p.BrandName != nil {
			for _, b := range directory {
				if b.Name == *p.BrandName {
					detail = b.Detail(now)
					break
				}
			}
		}
		out = append(out, p.Merged(detail))
	}
	return out
}
