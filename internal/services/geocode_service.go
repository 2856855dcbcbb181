package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"wayfare/pkg/memcache"
)

const (
	defaultNominatimBaseURL = "https://nominatim.openstreetmap.org"
	geocodeCacheTTL         = 24 * time.Hour
	geocodeMissTTL          = 1 * time.Hour
)

type GeocodeServiceInterface interface {
	// GeocodePlace resolves a free-text place name to coordinates. It is
	// best-effort: a miss is (0, 0, false), never an error surfaced to the
	// itinerary pipeline.
	GeocodePlace(ctx context.Context, name, city, country string) (lat, lng float64, ok bool)
	GeocodeCity(ctx context.Context, city, country string) (lat, lng float64, ok bool)
}

type geocodeService struct {
	baseURL    string
	httpClient *http.Client
	cache      memcache.GeoCache
}

func NewGeocodeService(cache memcache.GeoCache) GeocodeServiceInterface {
	baseURL := os.Getenv("NOMINATIM_BASE_URL")
	if baseURL == "" {
		baseURL = defaultNominatimBaseURL
	}
	return &geocodeService{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
		cache: cache,
	}
}

type nominatimResult struct {
	Lat string `json:"lat"`
	Lon string `json:"lon"`
}

func (s *geocodeService) GeocodePlace(ctx context.Context, name, city, country string) (float64, float64, bool) {
	if strings.TrimSpace(name) == "" {
		return 0, 0, false
	}

	clean := cleanPlaceName(name)
	queries := []string{
		fmt.Sprintf("%s, %s", name, city),
	}
	if clean != name {
		queries = append(queries, fmt.Sprintf("%s, %s", clean, city))
	}
	if country != "" {
		queries = append(queries, fmt.Sprintf("%s, %s, %s", clean, city, country))
	}

	for _, q := range queries {
		if lat, lng, ok := s.lookup(ctx, q); ok {
			return lat, lng, true
		}
	}
	return 0, 0, false
}

func (s *geocodeService) GeocodeCity(ctx context.Context, city, country string) (float64, float64, bool) {
	if strings.TrimSpace(city) == "" {
		return 0, 0, false
	}
	q := city
	if country != "" {
		q = fmt.Sprintf("%s, %s", city, country)
	}
	return s.lookup(ctx, q)
}

func (s *geocodeService) lookup(ctx context.Context, query string) (float64, float64, bool) {
	key := strings.ToLower(strings.TrimSpace(query))
	if lat, lng, ok := s.cache.Get(key); ok {
		return lat, lng, true
	}
	if s.cache.IsMiss(key) {
		return 0, 0, false
	}

	lat, lng, err := s.fetch(ctx, query)
	if err != nil {
		log.Printf("geocode lookup failed for %q: %v", query, err)
		s.cache.SetMiss(key, geocodeMissTTL)
		return 0, 0, false
	}

	s.cache.Set(key, lat, lng, geocodeCacheTTL)
	return lat, lng, true
}

func (s *geocodeService) fetch(ctx context.Context, query string) (float64, float64, error) {
	u, err := url.Parse(s.baseURL)
	if err != nil {
		return 0, 0, err
	}
	u.Path = "/search"

	params := url.Values{}
	params.Set("q", query)
	params.Set("format", "json")
	params.Set("limit", "1")
	u.RawQuery = params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return 0, 0, err
	}
	req.Header.Set("User-Agent", "wayfare/1.0")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return 0, 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, 0, fmt.Errorf("geocoder returned status %d", resp.StatusCode)
	}

	var results []nominatimResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return 0, 0, err
	}
	if len(results) == 0 {
		return 0, 0, fmt.Errorf("no results")
	}

	lat, err := strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		return 0, 0, err
	}
	lng, err := strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		return 0, 0, err
	}
	return lat, lng, nil
}

// cleanPlaceName strips decorations that confuse the geocoder: a leading
// article and any trailing parenthetical.
func cleanPlaceName(name string) string {
	clean := strings.TrimSpace(name)
	for _, prefix := range []string{"The ", "the "} {
		clean = strings.TrimPrefix(clean, prefix)
	}
	if idx := strings.Index(clean, "("); idx > 0 {
		clean = strings.TrimSpace(clean[:idx])
	}
	return clean
}
