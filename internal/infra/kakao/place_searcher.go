// Package kakao implements place lookup against the Kakao Local keyword search API.
package kakao

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"league/config"
	"league/internal/domain/service"
	"league/internal/errors"
	"league/internal/infra/metrics"

	"go.uber.org/fx"
)

const (
	serviceName  = "kakao_local"
	maxErrorBody = 4096
)

type placeSearcher struct {
	endpoint   string
	restKey    string
	httpClient *http.Client
	metrics    *metrics.Metrics
}

type searchResponse struct {
	Documents []struct {
		ID              string `json:"id"`
		PlaceName       string `json:"place_name"`
		CategoryName    string `json:"category_name"`
		AddressName     string `json:"address_name"`
		RoadAddressName string `json:"road_address_name"`
		X               string `json:"x"`
		Y               string `json:"y"`
	} `json:"documents"`
}

// NewPlaceSearcher creates a Kakao keyword searcher
func NewPlaceSearcher(cfg *config.PlaceSearchConfig, m *metrics.Metrics) service.PlaceSearcher {
	return &placeSearcher{
		endpoint:   cfg.Endpoint,
		restKey:    cfg.RestKey,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		metrics:    m,
	}
}

// Search returns the places matching keyword in Kakao's relevance order.
func (s *placeSearcher) Search(ctx context.Context, keyword string) ([]*service.Place, error) {
	query := url.Values{}
	query.Set("query", keyword)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.endpoint+"?"+query.Encode(), http.NoBody)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	req.Header.Set("Authorization", "KakaoAK "+s.restKey)

	start := time.Now()
	resp, err := s.httpClient.Do(req)
	if err != nil {
		s.metrics.ObserveExternal(serviceName, "error", time.Since(start))

		return nil, errors.Wrap(err, "kakao keyword search")
	}
	defer resp.Body.Close()
	s.metrics.ObserveExternal(serviceName, strconv.Itoa(resp.StatusCode), time.Since(start))

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))

		return nil, errors.Errorf("kakao keyword search: status %d: %s", resp.StatusCode, strings.TrimSpace(string(msg)))
	}

	var decoded searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, errors.Wrap(err, "decode kakao response")
	}

	places := make([]*service.Place, 0, len(decoded.Documents))
	for _, doc := range decoded.Documents {
		// Kakao sends coordinates as strings: x is longitude, y is latitude.
		lng, errX := strconv.ParseFloat(doc.X, 64)
		lat, errY := strconv.ParseFloat(doc.Y, 64)
		if errX != nil || errY != nil {
			continue
		}

		places = append(places, &service.Place{
			ID:          doc.ID,
			Name:        doc.PlaceName,
			Address:     doc.AddressName,
			RoadAddress: doc.RoadAddressName,
			Category:    doc.CategoryName,
			Latitude:    lat,
			Longitude:   lng,
		})
	}

	return places, nil
}

// noopSearcher finds nothing; used when place search is disabled.
type noopSearcher struct{}

func (noopSearcher) Search(context.Context, string) ([]*service.Place, error) {
	return nil, nil
}

// SearcherParams holds dependencies for PlaceSearcher, injected by Fx
type SearcherParams struct {
	fx.In

	Config  *config.Config
	Metrics *metrics.Metrics
	Logger  *slog.Logger
}

// NewSearcher picks the Kakao searcher when enabled and a no-op otherwise.
func NewSearcher(params SearcherParams) service.PlaceSearcher {
	cfg := params.Config.PlaceSearch
	if cfg == nil || !cfg.Enabled || cfg.RestKey == "" || cfg.Endpoint == "" {
		params.Logger.Info("Place search disabled, new stores will not be enriched")

		return noopSearcher{}
	}

	params.Logger.Info("Using Kakao place search", slog.String("endpoint", cfg.Endpoint))

	return NewPlaceSearcher(cfg, params.Metrics)
}

// Module provides the place search FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewSearcher),
)
