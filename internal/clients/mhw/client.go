// Package mhw fetches the armor catalog from the mhw-db.com API
package mhw

//go:generate mockgen -destination=mock/mock_client.go -package=mhwmock github.com/KirkDiggler/armor-builder/internal/clients/mhw Client

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/KirkDiggler/armor-builder/internal/entities/armor"
	"github.com/KirkDiggler/armor-builder/internal/errors"
)

// DefaultSourceURL is the public armor listing
const DefaultSourceURL = "https://mhw-db.com/armor"

// Client defines the interface for the remote armor source
type Client interface {
	// FetchCatalog downloads every armor piece and indexes it by rank, armor set name and type.
	// Pieces that cannot be interpreted are skipped with a warning.
	FetchCatalog(ctx context.Context) (armor.Catalog, error)
}

// Config contains configuration options for the mhw client.
type Config struct {
	// SourceURL of the armor listing (optional, defaults to DefaultSourceURL)
	SourceURL string
	// HTTPTimeout for the request (optional, defaults to 60 seconds)
	HTTPTimeout time.Duration
	// UserAgent sent with the request (optional)
	UserAgent string
	// HTTPClient overrides the client built from HTTPTimeout (optional)
	HTTPClient *http.Client
}

// Validate validates the Config and sets defaults if not provided.
func (cfg *Config) Validate() error {
	if cfg.SourceURL == "" {
		cfg.SourceURL = DefaultSourceURL
	}
	if cfg.HTTPTimeout == 0 {
		cfg.HTTPTimeout = 60 * time.Second
	}
	if cfg.HTTPTimeout < 0 {
		return errors.InvalidArgument("http timeout cannot be negative")
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = "armor-builder"
	}
	return nil
}

type client struct {
	httpClient *http.Client
	sourceURL  string
	userAgent  string
}

// New creates a new mhw client with the given configuration.
func New(cfg *Config) (Client, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.HTTPTimeout}
	}

	return &client{
		httpClient: httpClient,
		sourceURL:  cfg.SourceURL,
		userAgent:  cfg.UserAgent,
	}, nil
}

func (c *client) FetchCatalog(ctx context.Context) (armor.Catalog, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.sourceURL, nil)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to build armor request")
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	slog.DebugContext(ctx, "Fetching armor catalog", "url", c.sourceURL)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.WrapWithCodef(err, errors.CodeUnavailable, "failed to fetch armor from %s", c.sourceURL)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		return nil, errors.Unavailablef("armor source returned status %d for %s: %s", resp.StatusCode, c.sourceURL, string(b)).
			WithMeta("status", resp.StatusCode).
			WithMeta("url", c.sourceURL)
	}

	catalog, stats, err := decodeCatalog(ctx, resp.Body)
	if err != nil {
		return nil, errors.WrapWithCodef(err, errors.CodeDataLoss, "failed to decode armor from %s", c.sourceURL)
	}

	slog.InfoContext(ctx, "Fetched armor catalog",
		"url", c.sourceURL,
		"pieces", stats.kept,
		"skipped", stats.skipped)

	return catalog, nil
}

type decodeStats struct {
	kept    int
	skipped int
}

// decodeCatalog streams the top-level array so one bad piece never spoils the rest
func decodeCatalog(ctx context.Context, r io.Reader) (armor.Catalog, decodeStats, error) {
	var stats decodeStats
	dec := json.NewDecoder(r)

	tok, err := dec.Token()
	if err != nil {
		return nil, stats, err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '[' {
		return nil, stats, errors.DataLossf("expected an array of armor pieces, got %v", tok)
	}

	catalog := armor.NewCatalog()
	for i := 0; dec.More(); i++ {
		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return nil, stats, err
		}

		piece, err := parsePiece(raw)
		if err != nil {
			stats.skipped++
			slog.WarnContext(ctx, "Skipping armor piece",
				"index", i,
				"error", err)
			continue
		}

		catalog.Add(piece.rank, piece.name, piece.pieceType, piece.entry)
		stats.kept++
	}

	if _, err := dec.Token(); err != nil {
		return nil, stats, err
	}

	return catalog, stats, nil
}
