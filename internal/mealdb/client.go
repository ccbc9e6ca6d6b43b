package mealdb

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/rs/zerolog"
	"github.com/terraincognita07/healthtracker/internal/models"
)

const DefaultBaseURL = "https://www.themealdb.com/api/json/v1/1"

type ClientConfig struct {
	BaseURL   string
	Transport *Transport
	Logger    zerolog.Logger
}

// Client reads TheMealDB's category listings.
type Client struct {
	baseURL   string
	transport *Transport
	logger    zerolog.Logger
}

func NewClient(cfg ClientConfig) *Client {
	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	transport := cfg.Transport
	if transport == nil {
		transport = NewTransport(DefaultTransportConfig())
	}
	return &Client{
		baseURL:   baseURL,
		transport: transport,
		logger:    cfg.Logger.With().Str("component", "mealdb").Logger(),
	}
}

type filterResponse struct {
	Meals []struct {
		ID        string `json:"idMeal"`
		Name      string `json:"strMeal"`
		Thumbnail string `json:"strMealThumb"`
	} `json:"meals"`
}

// MealsByCategory lists the recipes in category. An unknown category yields an empty list.
func (client *Client) MealsByCategory(ctx context.Context, category string) ([]models.Recipe, error) {
	endpoint := fmt.Sprintf("%s/filter.php?c=%s", client.baseURL, url.QueryEscape(category))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	resp, err := client.transport.Do(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("fetching %s meals: %w", category, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetching %s meals: unexpected status code %d", category, resp.StatusCode)
	}

	var payload filterResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decoding %s meals: %w", category, err)
	}

	recipes := make([]models.Recipe, 0, len(payload.Meals))
	for _, meal := range payload.Meals {
		recipes = append(recipes, models.Recipe{
			ID:        meal.ID,
			Name:      meal.Name,
			Thumbnail: meal.Thumbnail,
			Category:  category,
		})
	}
	client.logger.Debug().Str("category", category).Int("meals", len(recipes)).Msg("catalog fetched")
	return recipes, nil
}
