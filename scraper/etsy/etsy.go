package etsy

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"

	"marketscout/config"
	"marketscout/fetch"
	"marketscout/models"
	"marketscout/utils"
)

// Scraper searches the Etsy listings API and extracts results.
type Scraper struct {
	cfg     *config.Config
	logger  *utils.Logger
	fetcher *fetch.Client
}

// New creates a ready-to-use Etsy Scraper.
func New(cfg *config.Config, logger *utils.Logger) *Scraper {
	return &Scraper{
		cfg:     cfg,
		logger:  logger,
		fetcher: fetch.NewClient(cfg, logger),
	}
}

// Search queries the Etsy API for active listings matching query and returns
// the normalized items that pass the optional price ceiling. A missing API
// key is a configuration fault: no request is attempted and the result is
// empty.
func (s *Scraper) Search(query string, maxPrice *float64) []*models.Item {
	if s.cfg.EtsyAPIKey == "" {
		s.logger.Error("[etsy] API key not found. Please set the ETSY_API_KEY environment variable.")
		return nil
	}

	params := url.Values{}
	params.Set("api_key", s.cfg.EtsyAPIKey)
	params.Set("keywords", query)
	params.Set("limit", strconv.Itoa(s.cfg.EtsyResultLimit))
	endpoint := s.cfg.EtsyAPIURL + "?" + params.Encode()

	body, _, err := s.fetcher.Get(endpoint)
	if err != nil {
		s.logger.Error("[etsy] Failed to retrieve items: %v", err)
		return nil
	}

	items, err := s.Extract(body, maxPrice)
	if err != nil {
		s.logger.Error("[etsy] Failed to decode API response: %v", err)
		return nil
	}

	s.logger.Info("[etsy] Found %d items", len(items))
	return items
}

type payload struct {
	Results []result `json:"results"`
}

type result struct {
	Title       string          `json:"title"`
	Price       json.RawMessage `json:"price"`
	URL         string          `json:"url"`
	Description string          `json:"description"`
}

// Extract decodes an Etsy API payload into normalized items. A payload
// without a "results" key yields an empty slice. A result whose price is
// neither numeric nor the "N/A" sentinel is skipped with a warning.
func (s *Scraper) Extract(data []byte, maxPrice *float64) ([]*models.Item, error) {
	var p payload
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("etsy: decode payload: %w", err)
	}

	var items []*models.Item
	for _, r := range p.Results {
		item, err := normalize(r)
		if err != nil {
			s.logger.Warn("[etsy] Skipping malformed result: %v", err)
			continue
		}
		if item.WithinCeiling(maxPrice) {
			items = append(items, item)
		}
	}

	return items, nil
}

// normalize maps one API result onto an Item, defaulting missing fields to
// "N/A". The display price keeps the raw value as sent by the API, prefixed
// with the currency symbol.
func normalize(r result) (*models.Item, error) {
	item := &models.Item{
		Title:        "N/A",
		PriceDisplay: "N/A",
		Link:         "N/A",
		Description:  "N/A",
	}

	if r.Title != "" {
		item.Title = r.Title
	}
	if r.URL != "" {
		item.Link = r.URL
	}
	if r.Description != "" {
		item.Description = r.Description
	}

	raw := priceText(r.Price)
	if raw != "" && raw != "N/A" {
		value, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("unparseable price %q for %q", raw, item.Title)
		}
		item.PriceDisplay = "$" + raw
		item.PriceNumeric = &value
	}

	return item, nil
}

// priceText renders the raw price field as text. The API sends prices as
// JSON strings, but numbers show up too; anything else is returned verbatim
// so the caller's parse rejects it.
func priceText(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}

	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return string(raw)
	}

	switch val := v.(type) {
	case string:
		return val
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	default:
		return string(raw)
	}
}
