package kassal

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/renvare/backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient(t *testing.T) {
	client := NewClient("test-token", "https://kassal.app")

	assert.NotNil(t, client)
	assert.Equal(t, "test-token", client.apiToken)
	assert.Equal(t, "https://kassal.app", client.baseURL)
	assert.NotNil(t, client.httpClient)
	assert.NotNil(t, client.rateLimiter)
	assert.False(t, client.debug)
}

func TestSetDebug(t *testing.T) {
	client := NewClient("test-token", "https://kassal.app")

	client.SetDebug(true)
	assert.True(t, client.debug)

	client.SetDebug(false)
	assert.False(t, client.debug)
}

func TestBackoff(t *testing.T) {
	tests := []struct {
		attempt  int
		expected time.Duration
	}{
		{1, 500 * time.Millisecond},
		{2, 1000 * time.Millisecond},
		{3, 1500 * time.Millisecond},
	}

	for _, tt := range tests {
		t.Run("", func(t *testing.T) {
			assert.Equal(t, tt.expected, backoff(tt.attempt))
		})
	}
}

func TestSearchProducts_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/products", r.URL.Path)
		assert.Equal(t, "melk", r.URL.Query().Get("search"))
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))

		response := searchResponse{
			Data: []kassalProduct{
				{
					Name:         "Lettmelk 1%",
					Brand:        "Tine",
					EAN:          "7038010013966",
					CurrentPrice: 21.90,
					Ingredients:  "pasteurisert melk, vitamin d",
					Allergens: []kassalAllergen{
						{DisplayName: "Melk", Contains: "YES"},
						{DisplayName: "Gluten", Contains: "NO"},
					},
					Store: kassalStore{Name: "Meny"},
				},
			},
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(response)
	}))
	defer server.Close()

	client := NewClient("test-token", server.URL)
	products, err := client.SearchProducts(context.Background(), "melk")

	require.NoError(t, err)
	require.Len(t, products, 1)

	product := products[0]
	assert.Equal(t, "Lettmelk 1%", product.Name)
	assert.Equal(t, "Tine", product.Brand)
	assert.Equal(t, "7038010013966", product.EAN)
	assert.Equal(t, 21.90, product.Price)
	assert.Equal(t, "Meny", product.Store)
	assert.Equal(t, "pasteurisert melk, vitamin d", product.IngredientsText)
	// Only declared allergens are carried over
	assert.Equal(t, "Melk", product.AllergenText)
}

func TestSearchProducts_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := NewClient("test-token", server.URL)
	_, err := client.SearchProducts(context.Background(), "finnesikke")

	assert.True(t, errors.Is(err, domain.ErrProductNotFound))
}

func TestSearchProducts_EmptyData(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data": []}`))
	}))
	defer server.Close()

	client := NewClient("test-token", server.URL)
	_, err := client.SearchProducts(context.Background(), "finnesikke")

	assert.True(t, errors.Is(err, domain.ErrProductNotFound))
}

func TestSearchProducts_ServerErrorRetries(t *testing.T) {
	attempts := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient("test-token", server.URL)
	_, err := client.SearchProducts(context.Background(), "melk")

	assert.True(t, errors.Is(err, domain.ErrKassalAPIFailure))
	assert.Equal(t, 3, attempts)
}

func TestSearchProducts_InvalidJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{not json`))
	}))
	defer server.Close()

	client := NewClient("test-token", server.URL)
	_, err := client.SearchProducts(context.Background(), "melk")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to decode")
}

func TestMapProductBrandFallsBackToVendor(t *testing.T) {
	product := mapProduct(kassalProduct{
		Name:   "Eplejuice",
		Vendor: "Ringi",
	})

	assert.Equal(t, "Ringi", product.Brand)
}

func TestDeclaredAllergens(t *testing.T) {
	got := declaredAllergens([]kassalAllergen{
		{DisplayName: "Melk", Contains: "YES"},
		{DisplayName: "Nøtter", Contains: "CAN_CONTAIN_TRACES"},
		{DisplayName: "Gluten", Contains: "NO"},
	})

	assert.Equal(t, "Melk, Nøtter", got)
}
