package booking

import (
	"strconv"
	"strings"

	"drepto/models"
)

// DefaultListingPageSize is the number of cards per listing page.
const DefaultListingPageSize = 6

// filterAll disables a facet.
const filterAll = "All"

// ListingFilter holds the free-text search and facet selections. Empty facets
// behave like "All".
type ListingFilter struct {
	Search       string `json:"search" form:"search"`
	Availability string `json:"availability" form:"availability"` // "All", "Today" or "Tomorrow"
	MinRating    string `json:"minRating" form:"minRating"`       // "All" or a number such as "4.5"
	Category     string `json:"category" form:"category"`
	City         string `json:"city" form:"city"`
}

// Validate rejects a non-numeric rating facet.
func (f ListingFilter) Validate() error {
	if active(f.MinRating) {
		if _, err := strconv.ParseFloat(f.MinRating, 64); err != nil {
			return newFlowError(ErrInvalidFilter, "minRating %q is not a number", f.MinRating)
		}
	}
	return nil
}

// Matches reports whether b passes every active facet.
func (f ListingFilter) Matches(b models.Bookable) bool {
	if q := strings.ToLower(f.Search); q != "" && !searchMatches(b, q) {
		return false
	}
	if active(f.Availability) && b.Availability != f.Availability {
		return false
	}
	if active(f.MinRating) {
		min, _ := strconv.ParseFloat(f.MinRating, 64)
		if b.Rating < min {
			return false
		}
	}
	if active(f.Category) && b.Category != f.Category {
		return false
	}
	if active(f.City) && !strings.Contains(b.Availability, f.City) {
		return false
	}
	return true
}

func active(facet string) bool {
	return facet != "" && facet != filterAll
}

// FilterBookables keeps the entities matching f, preserving catalog order.
func FilterBookables(items []models.Bookable, f ListingFilter) []models.Bookable {
	out := make([]models.Bookable, 0, len(items))
	for _, b := range items {
		if f.Matches(b) {
			out = append(out, b)
		}
	}
	return out
}

// ListingPage is one page of filtered results.
type ListingPage struct {
	Filter     ListingFilter     `json:"filter"`
	Items      []models.Bookable `json:"items"`
	Page       int               `json:"page"`
	TotalPages int               `json:"totalPages"`
	Total      int               `json:"total"`
}

// Listing holds search state for one catalog screen. Not safe for concurrent use.
type Listing struct {
	items    []models.Bookable
	filter   ListingFilter
	page     int
	pageSize int
}

// NewListing creates a listing over items starting at page 1.
func NewListing(items []models.Bookable, pageSize int) *Listing {
	if pageSize <= 0 {
		pageSize = DefaultListingPageSize
	}
	return &Listing{items: items, page: 1, pageSize: pageSize}
}

// SetItems swaps the catalog, keeping the filter and resetting to page 1.
func (l *Listing) SetItems(items []models.Bookable) {
	l.items = items
	l.page = 1
}

// SetFilter applies a new filter. Any change returns the listing to page 1.
func (l *Listing) SetFilter(f ListingFilter) error {
	if err := f.Validate(); err != nil {
		return err
	}
	if f != l.filter {
		l.filter = f
		l.page = 1
	}
	return nil
}

// SetPage moves to page p, clamped to the available pages.
func (l *Listing) SetPage(p int) {
	l.page = clampPage(p, pageCount(len(FilterBookables(l.items, l.filter)), l.pageSize))
}

// Current returns the page currently shown.
func (l *Listing) Current() ListingPage {
	return paginate(FilterBookables(l.items, l.filter), l.filter, l.page, l.pageSize)
}

func paginate(filtered []models.Bookable, f ListingFilter, page, size int) ListingPage {
	total := len(filtered)
	pages := pageCount(total, size)
	page = clampPage(page, pages)
	start := (page - 1) * size
	end := min(start+size, total)
	if start > total {
		start = total
	}
	return ListingPage{Filter: f, Items: filtered[start:end], Page: page, TotalPages: pages, Total: total}
}

// searchMatches compares the lowercased query with the name, and for doctors
// with the specialty too. The query is used as typed.
func searchMatches(b models.Bookable, q string) bool {
	if strings.Contains(strings.ToLower(b.Name), q) {
		return true
	}
	return b.Kind == models.KindDoctor && strings.Contains(strings.ToLower(b.Category), q)
}

func pageCount(total, size int) int {
	return (total + size - 1) / size
}

// clampPage keeps page within [1, pages]; an empty result still reports page 1.
func clampPage(page, pages int) int {
	if page > pages {
		page = pages
	}
	if page < 1 {
		page = 1
	}
	return page
}
