// Package places proxies the Google Places API for the Discover editor:
// autocomplete while the operator types, details once a card is pinned.
// Responses are cached in-process for a short TTL to stay inside quota.
package places

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"googlemaps.github.io/maps"
)

// ErrDisabled is returned when no maps API key is configured. The Discover
// editor degrades to manual place ids in that case.
var ErrDisabled = errors.New("places search is not configured")

// Prediction is one autocomplete suggestion.
type Prediction struct {
	PlaceID       string `json:"placeId"`
	Description   string `json:"description"`
	MainText      string `json:"mainText,omitempty"`
	SecondaryText string `json:"secondaryText,omitempty"`
}

// Summary is the subset of place details the console renders on a card.
type Summary struct {
	PlaceID string   `json:"placeId"`
	Name    string   `json:"name"`
	Address string   `json:"address,omitempty"`
	Rating  float32  `json:"rating,omitempty"`
	Lat     float64  `json:"lat"`
	Lng     float64  `json:"lng"`
	Types   []string `json:"types,omitempty"`
}

// mapsAPI is the slice of the Google client the service uses; tests fake it.
type mapsAPI interface {
	PlaceAutocomplete(ctx context.Context, r *maps.PlaceAutocompleteRequest) (maps.AutocompleteResponse, error)
	PlaceDetails(ctx context.Context, r *maps.PlaceDetailsRequest) (maps.PlaceDetailsResult, error)
}

type cacheEntry struct {
	predictions []Prediction
	summary     *Summary
	expires     time.Time
}

type Service struct {
	client mapsAPI
	ttl    time.Duration
	logger *slog.Logger

	mu    sync.Mutex
	cache map[string]cacheEntry
}

// NewService builds the proxy. An empty API key yields a disabled service
// whose methods return ErrDisabled.
func NewService(apiKey string, ttl time.Duration, logger *slog.Logger) (*Service, error) {
	s := &Service{
		ttl:    ttl,
		logger: logger,
		cache:  make(map[string]cacheEntry),
	}
	if apiKey == "" {
		return s, nil
	}
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("creating maps client: %w", err)
	}
	s.client = client
	return s, nil
}

// newServiceWithClient is the test seam.
func newServiceWithClient(client mapsAPI, ttl time.Duration, logger *slog.Logger) *Service {
	return &Service{
		client: client,
		ttl:    ttl,
		logger: logger,
		cache:  make(map[string]cacheEntry),
	}
}

// Enabled reports whether a maps client is configured.
func (s *Service) Enabled() bool {
	return s.client != nil
}

// Search returns autocomplete predictions for a free-text query.
func (s *Service) Search(ctx context.Context, query string) ([]Prediction, error) {
	if s.client == nil {
		return nil, ErrDisabled
	}

	key := "q:" + query
	if entry, ok := s.lookup(key); ok {
		return entry.predictions, nil
	}

	resp, err := s.client.PlaceAutocomplete(ctx, &maps.PlaceAutocompleteRequest{
		Input: query,
	})
	if err != nil {
		return nil, fmt.Errorf("place autocomplete: %w", err)
	}

	predictions := make([]Prediction, 0, len(resp.Predictions))
	for _, p := range resp.Predictions {
		predictions = append(predictions, Prediction{
			PlaceID:       p.PlaceID,
			Description:   p.Description,
			MainText:      p.StructuredFormatting.MainText,
			SecondaryText: p.StructuredFormatting.SecondaryText,
		})
	}
	s.store(key, cacheEntry{predictions: predictions})
	return predictions, nil
}

// Details returns the card summary for a place id.
func (s *Service) Details(ctx context.Context, placeID string) (*Summary, error) {
	if s.client == nil {
		return nil, ErrDisabled
	}

	key := "p:" + placeID
	if entry, ok := s.lookup(key); ok {
		return entry.summary, nil
	}

	result, err := s.client.PlaceDetails(ctx, &maps.PlaceDetailsRequest{
		PlaceID: placeID,
	})
	if err != nil {
		return nil, fmt.Errorf("place details: %w", err)
	}

	summary := &Summary{
		PlaceID: placeID,
		Name:    result.Name,
		Address: result.FormattedAddress,
		Rating:  result.Rating,
		Lat:     result.Geometry.Location.Lat,
		Lng:     result.Geometry.Location.Lng,
		Types:   result.Types,
	}
	s.store(key, cacheEntry{summary: summary})
	return summary, nil
}

func (s *Service) lookup(key string) (cacheEntry, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.cache[key]
	if !ok || time.Now().After(entry.expires) {
		return cacheEntry{}, false
	}
	return entry, true
}

func (s *Service) store(key string, entry cacheEntry) {
	if s.ttl <= 0 {
		return
	}
	entry.expires = time.Now().Add(s.ttl)
	s.mu.Lock()
	s.cache[key] = entry
	s.mu.Unlock()
}
