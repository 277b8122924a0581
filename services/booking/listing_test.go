package booking

import (
	"fmt"
	"testing"

	"drepto/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func doctors(n int) []models.Bookable {
	out := make([]models.Bookable, 0, n)
	for i := 1; i <= n; i++ {
		avail := "Today"
		if i%2 == 0 {
			avail = "Tomorrow"
		}
		out = append(out, models.Bookable{
			ID:           fmt.Sprint(i),
			Kind:         models.KindDoctor,
			Name:         fmt.Sprintf("Dr. %c", 'A'+i-1),
			Category:     []string{"Cardiologist", "Dermatologist"}[i%2],
			Rating:       []float64{4.2, 4.5, 4.6, 4.7, 4.8, 4.9, 5.0, 4.3}[(i-1)%8],
			Availability: avail,
		})
	}
	return out
}

func TestFilterBookablesSearchMatchesNameOrCategory(t *testing.T) {
	items := doctors(4)

	got := FilterBookables(items, ListingFilter{Search: "DERMA"})
	require.Len(t, got, 2)
	for _, b := range got {
		assert.Equal(t, "Dermatologist", b.Category)
	}

	got = FilterBookables(items, ListingFilter{Search: "dr. c"})
	require.Len(t, got, 1)
	assert.Equal(t, "3", got[0].ID)
}

func TestFilterBookablesSearchScopedByKind(t *testing.T) {
	items := []models.Bookable{
		{ID: "1", Kind: models.KindLabTest, Name: "Lipid Profile", Category: "Pathology"},
		{ID: "2", Kind: models.KindLabTest, Name: "Pathology Panel", Category: "Biochemistry"},
	}

	got := FilterBookables(items, ListingFilter{Search: "patho"})
	require.Len(t, got, 1)
	assert.Equal(t, "2", got[0].ID)

	// The query is not trimmed.
	assert.Empty(t, FilterBookables(items, ListingFilter{Search: " lipid"}))
	assert.Len(t, FilterBookables(items, ListingFilter{Search: "lipid"}), 1)
}

func TestFilterBookablesFacets(t *testing.T) {
	items := doctors(8)

	assert.Len(t, FilterBookables(items, ListingFilter{Availability: "Today"}), 4)
	assert.Len(t, FilterBookables(items, ListingFilter{Availability: "All", MinRating: "All"}), 8)

	high := FilterBookables(items, ListingFilter{MinRating: "4.6"})
	for _, b := range high {
		assert.GreaterOrEqual(t, b.Rating, 4.6)
	}
	assert.Len(t, high, 5)

	assert.Len(t, FilterBookables(items, ListingFilter{Category: "Cardiologist", Availability: "Tomorrow"}), 4)
}

func TestFilterBookablesCity(t *testing.T) {
	items := []models.Bookable{
		{ID: "1", Name: "CBC Test", Availability: "Available in all locations"},
		{ID: "2", Name: "Vitamin D", Availability: "Mumbai, Pune"},
	}
	got := FilterBookables(items, ListingFilter{City: "Pune"})
	require.Len(t, got, 1)
	assert.Equal(t, "2", got[0].ID)
}

func TestListingPaginationResetsOnFilterChange(t *testing.T) {
	l := NewListing(doctors(14), 0)

	page := l.Current()
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 3, page.TotalPages)
	assert.Len(t, page.Items, DefaultListingPageSize)

	l.SetPage(3)
	page = l.Current()
	assert.Equal(t, 3, page.Page)
	assert.Len(t, page.Items, 2)

	l.SetPage(9)
	assert.Equal(t, 3, l.Current().Page)

	require.NoError(t, l.SetFilter(ListingFilter{Availability: "Today"}))
	page = l.Current()
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 7, page.Total)

	l.SetPage(2)
	require.NoError(t, l.SetFilter(ListingFilter{Availability: "Today"}))
	assert.Equal(t, 2, l.Current().Page, "unchanged filter keeps the page")
}

func TestListingRejectsBadRating(t *testing.T) {
	l := NewListing(doctors(3), 6)
	assert.ErrorIs(t, l.SetFilter(ListingFilter{MinRating: "high"}), ErrInvalidFilter)
}

func TestListingEmpty(t *testing.T) {
	page := NewListing(nil, 6).Current()
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 0, page.TotalPages)
	assert.Empty(t, page.Items)
}
