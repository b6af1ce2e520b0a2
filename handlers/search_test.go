package handlers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"foodie-backend/storage"
)

func decodeResults(t *testing.T, body []byte) []storage.SearchResult {
	t.Helper()
	var results []storage.SearchResult
	require.NoError(t, json.Unmarshal(body, &results))
	return results
}

func TestSearch_PriceInterval(t *testing.T) {
	r := newTestRouter(newStubUserStore(), seedCatalog())

	w := doJSON(t, r, http.MethodGet, "/search?minPrice=10&maxPrice=15", nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	results := decodeResults(t, w.Body.Bytes())
	require.Len(t, results, 1)
	require.Equal(t, "Pizza Hut", results[0].RestaurantName)
	require.Equal(t, "Margherita", results[0].ItemName)
	for _, res := range results {
		require.GreaterOrEqual(t, res.Price, 10.0)
		require.LessOrEqual(t, res.Price, 15.0)
	}
}

func TestSearch_NoMatchIsNotFound(t *testing.T) {
	r := newTestRouter(newStubUserStore(), seedCatalog())

	w := doJSON(t, r, http.MethodGet, "/search?minPrice=20", nil, "")
	require.Equal(t, http.StatusNotFound, w.Code)
	require.Contains(t, w.Body.String(), "No items found")
}

func TestSearch_MinRating(t *testing.T) {
	r := newTestRouter(newStubUserStore(), seedCatalog())

	w := doJSON(t, r, http.MethodGet, "/search?minRating=4", nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	results := decodeResults(t, w.Body.Bytes())
	require.Len(t, results, 2)
	for _, res := range results {
		require.GreaterOrEqual(t, res.Rating, 4.0)
	}
}

func TestSearch_TextIsCaseInsensitiveSubstring(t *testing.T) {
	r := newTestRouter(newStubUserStore(), seedCatalog())

	w := doJSON(t, r, http.MethodGet, "/search?q=MARGHER", nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	results := decodeResults(t, w.Body.Bytes())
	require.Len(t, results, 1)
	require.Equal(t, "Margherita", results[0].ItemName)
}

func TestSearch_CombinedFilters(t *testing.T) {
	catalog := seedCatalog()
	r := newTestRouter(newStubUserStore(), catalog)

	w := doJSON(t, r, http.MethodGet, "/search?category=Drinks&subCategory=Hot&maxPrice=5", nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	results := decodeResults(t, w.Body.Bytes())
	require.Len(t, results, 1)
	require.Equal(t, "Masala Chai", results[0].ItemName)

	// only the present parameters reach the store as constraints
	require.Equal(t, "Drinks", catalog.lastFilter.Category)
	require.Equal(t, "Hot", catalog.lastFilter.SubCategory)
	require.Nil(t, catalog.lastFilter.MinPrice)
	require.NotNil(t, catalog.lastFilter.MaxPrice)
	require.Nil(t, catalog.lastFilter.MinRating)
	require.Empty(t, catalog.lastFilter.Text)
}

func TestSearch_InvalidNumericParam(t *testing.T) {
	r := newTestRouter(newStubUserStore(), seedCatalog())

	for _, path := range []string{
		"/search?minPrice=abc",
		"/search?maxPrice=abc",
		"/search?minRating=abc",
	} {
		w := doJSON(t, r, http.MethodGet, path, nil, "")
		require.Equal(t, http.StatusBadRequest, w.Code, path)
	}
}
