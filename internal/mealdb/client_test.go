package mealdb_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/sony/gobreaker/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/terraincognita07/healthtracker/internal/mealdb"
)

func fastTransport(retries uint64) *mealdb.Transport {
	return mealdb.NewTransport(mealdb.TransportConfig{
		Timeout:         time.Second,
		MaxRetries:      retries,
		InitialInterval: time.Millisecond,
		MaxInterval:     2 * time.Millisecond,
		BreakerTimeout:  time.Minute,
		BreakerFailures: 3,
	})
}

func TestClient_MealsByCategory(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/filter.php", r.URL.Path)
		assert.Equal(t, "Seafood", r.URL.Query().Get("c"))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"meals": []map[string]string{
				{"idMeal": "52959", "strMeal": "Baked salmon with fennel", "strMealThumb": "https://example.test/salmon.jpg"},
				{"idMeal": "52819", "strMeal": "Cajun spiced fish tacos", "strMealThumb": "https://example.test/tacos.jpg"},
			},
		})
	}))
	defer server.Close()

	client := mealdb.NewClient(mealdb.ClientConfig{BaseURL: server.URL + "/", Transport: fastTransport(0)})

	recipes, err := client.MealsByCategory(context.Background(), "Seafood")
	require.NoError(t, err)
	require.Len(t, recipes, 2)

	assert.Equal(t, "52959", recipes[0].ID)
	assert.Equal(t, "Baked salmon with fennel", recipes[0].Name)
	assert.Equal(t, "https://example.test/salmon.jpg", recipes[0].Thumbnail)
	assert.Equal(t, "Seafood", recipes[1].Category)
}

func TestClient_NullMealsIsEmpty(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"meals":null}`))
	}))
	defer server.Close()

	client := mealdb.NewClient(mealdb.ClientConfig{BaseURL: server.URL, Transport: fastTransport(0)})

	recipes, err := client.MealsByCategory(context.Background(), "Unknown")
	require.NoError(t, err)
	assert.Empty(t, recipes)
}

func TestClient_ClientErrorIsNotRetried(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := mealdb.NewClient(mealdb.ClientConfig{BaseURL: server.URL, Transport: fastTransport(3)})

	_, err := client.MealsByCategory(context.Background(), "Beef")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected status code 404")
	assert.Equal(t, int32(1), calls.Load())
}

func TestClient_MalformedJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"meals":[`))
	}))
	defer server.Close()

	client := mealdb.NewClient(mealdb.ClientConfig{BaseURL: server.URL, Transport: fastTransport(0)})

	_, err := client.MealsByCategory(context.Background(), "Beef")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decoding Beef meals")
}

func TestTransport_RetriesServerErrors(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		_, _ = w.Write([]byte(`{"meals":[{"idMeal":"1","strMeal":"Pasta","strMealThumb":""}]}`))
	}))
	defer server.Close()

	client := mealdb.NewClient(mealdb.ClientConfig{BaseURL: server.URL, Transport: fastTransport(3)})

	recipes, err := client.MealsByCategory(context.Background(), "Pasta")
	require.NoError(t, err)
	assert.Len(t, recipes, 1)
	assert.Equal(t, int32(3), calls.Load())
}

func TestTransport_OpensCircuitAfterConsecutiveFailures(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	transport := fastTransport(0)
	client := mealdb.NewClient(mealdb.ClientConfig{BaseURL: server.URL, Transport: transport})

	for range 3 {
		_, err := client.MealsByCategory(context.Background(), "Vegan")
		require.Error(t, err)
	}
	assert.Equal(t, gobreaker.StateOpen, transport.State())

	_, err := client.MealsByCategory(context.Background(), "Vegan")
	require.ErrorIs(t, err, mealdb.ErrCircuitOpen)
	assert.Equal(t, int32(3), calls.Load())
}

func TestTransport_RespectsCancelledContext(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := mealdb.NewClient(mealdb.ClientConfig{BaseURL: server.URL, Transport: fastTransport(5)})
	_, err := client.MealsByCategory(ctx, "Beef")
	require.Error(t, err)
}
