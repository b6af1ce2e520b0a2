package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"foodie-backend/handlers"
	"foodie-backend/middleware"
	"foodie-backend/models"
	"foodie-backend/routes"
	"foodie-backend/storage"
)

var testSecret = []byte("handler_test_secret")

// ── in-memory stores implementing the storage interfaces ────────────────────

type stubUserStore struct {
	users []*models.User
}

func newStubUserStore() *stubUserStore { return &stubUserStore{} }

func (s *stubUserStore) Create(ctx context.Context, u *models.User) error {
	for _, existing := range s.users {
		if existing.Email == u.Email || existing.PhoneNumber == u.PhoneNumber {
			return storage.ErrUserExists
		}
	}
	if u.ID.IsZero() {
		u.ID = primitive.NewObjectID()
	}
	now := time.Now().UTC()
	u.CreatedAt = now
	u.UpdatedAt = now
	if u.OrderHistory == nil {
		u.OrderHistory = []models.OrderHistory{}
	}
	cp := *u
	s.users = append(s.users, &cp)
	return nil
}

func (s *stubUserStore) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	for _, u := range s.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, storage.ErrUserNotFound
}

func (s *stubUserStore) GetByID(ctx context.Context, id string) (*models.User, error) {
	for _, u := range s.users {
		if u.ID.Hex() == id {
			cp := *u
			return &cp, nil
		}
	}
	return nil, storage.ErrUserNotFound
}

func (s *stubUserStore) ReplaceCart(ctx context.Context, id string, cart *models.Cart) error {
	for _, u := range s.users {
		if u.ID.Hex() == id {
			u.Cart = cart
			u.UpdatedAt = time.Now().UTC()
			return nil
		}
	}
	return storage.ErrUserNotFound
}

func (s *stubUserStore) AppendOrder(ctx context.Context, id string, entry models.OrderHistory) error {
	for _, u := range s.users {
		if u.ID.Hex() == id {
			u.OrderHistory = append(u.OrderHistory, entry)
			u.UpdatedAt = time.Now().UTC()
			return nil
		}
	}
	return storage.ErrUserNotFound
}

type stubRestaurantStore struct {
	restaurants []models.Restaurant
	lastFilter  storage.SearchFilter
}

func (s *stubRestaurantStore) List(ctx context.Context) ([]models.Restaurant, error) {
	return append([]models.Restaurant{}, s.restaurants...), nil
}

func (s *stubRestaurantStore) AppendMenuItem(ctx context.Context, restaurantName string, item models.MenuItem) (*models.MenuItem, int, error) {
	for i := range s.restaurants {
		if s.restaurants[i].Name == restaurantName {
			s.restaurants[i].Menus = append(s.restaurants[i].Menus, item)
			pos := len(s.restaurants[i].Menus) - 1
			return &s.restaurants[i].Menus[pos], pos, nil
		}
	}
	return nil, 0, storage.ErrRestaurantNotFound
}

// Search mirrors the aggregation semantics over the in-memory catalog.
func (s *stubRestaurantStore) Search(ctx context.Context, f storage.SearchFilter) ([]storage.SearchResult, error) {
	s.lastFilter = f
	var out []storage.SearchResult
	for _, r := range s.restaurants {
		for _, m := range r.Menus {
			if !matches(f, m) {
				continue
			}
			out = append(out, storage.SearchResult{
				RestaurantName: r.Name,
				ItemName:       m.ItemName,
				Price:          m.Price,
				Category:       m.Category,
				SubCategory:    m.SubCategory,
				Image:          m.Image,
				Rating:         m.Rating,
			})
		}
	}
	return out, nil
}

func matches(f storage.SearchFilter, m models.MenuItem) bool {
	if f.Text != "" && !strings.Contains(strings.ToLower(m.ItemName), strings.ToLower(f.Text)) {
		return false
	}
	if f.Category != "" && m.Category != f.Category {
		return false
	}
	if f.SubCategory != "" && m.SubCategory != f.SubCategory {
		return false
	}
	if f.MinPrice != nil && m.Price < *f.MinPrice {
		return false
	}
	if f.MaxPrice != nil && m.Price > *f.MaxPrice {
		return false
	}
	if f.MinRating != nil && m.Rating < *f.MinRating {
		return false
	}
	return true
}

func (s *stubRestaurantStore) CategoryTree(ctx context.Context) ([]storage.RestaurantCategories, error) {
	var triples []storage.CategoryTriple
	seen := make(map[storage.CategoryTriple]bool)
	for _, r := range s.restaurants {
		for _, m := range r.Menus {
			t := storage.CategoryTriple{Restaurant: r.Name, Category: m.Category, SubCategory: m.SubCategory}
			if !seen[t] {
				seen[t] = true
				triples = append(triples, t)
			}
		}
	}
	return storage.BuildCategoryTree(triples), nil
}

// ── helpers ─────────────────────────────────────────────────────────────────

func newTestRouter(users storage.UserStore, restaurants storage.RestaurantStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	routes.SetupRoutes(r, handlers.New(users, restaurants, testSecret, time.Hour))
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func registerUser(t *testing.T, r *gin.Engine, email, phone, password string) {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/register", gin.H{
		"fullName":    "Test User",
		"phoneNumber": phone,
		"email":       email,
		"password":    password,
	}, "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
}

func tokenFor(t *testing.T, id string) string {
	t.Helper()
	token, err := middleware.GenerateToken(id, testSecret, time.Hour)
	require.NoError(t, err)
	return token
}
