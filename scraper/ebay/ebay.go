package ebay

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/url"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"marketscout/config"
	"marketscout/fetch"
	"marketscout/models"
	"marketscout/utils"
)

const (
	blockSelector    = "div.s-item__info"
	titleSelector    = "h3.s-item__title"
	priceSelector    = "span.s-item__price"
	linkSelector     = "a.s-item__link"
	subtitleSelector = "div.s-item__subtitle"
)

// Scraper searches the eBay HTML results page and extracts listings.
type Scraper struct {
	cfg     *config.Config
	logger  *utils.Logger
	fetcher *fetch.Client
}

// New creates a ready-to-use eBay Scraper.
func New(cfg *config.Config, logger *utils.Logger) *Scraper {
	return &Scraper{
		cfg:     cfg,
		logger:  logger,
		fetcher: fetch.NewClient(cfg, logger),
	}
}

// Search fetches the results page for query and returns the normalized items
// that pass the optional price ceiling. Fetch failures are downgraded to an
// empty result.
func (s *Scraper) Search(query string, maxPrice *float64) []*models.Item {
	searchURL := s.cfg.EbaySearchURL + "?_nkw=" + url.QueryEscape(query)

	body, _, err := s.fetcher.Get(searchURL)
	if err != nil {
		s.logger.Error("[ebay] Failed to retrieve items: %v", err)
		return nil
	}

	items, err := s.Extract(bytes.NewReader(body), maxPrice)
	if err != nil {
		s.logger.Error("[ebay] Failed to parse results page: %v", err)
		return nil
	}

	s.logger.Info("[ebay] Found %d items", len(items))
	return items
}

// Extract parses an eBay search-results document into normalized items.
// A malformed listing block is skipped with a warning; it never aborts
// extraction of its siblings.
func (s *Scraper) Extract(r io.Reader, maxPrice *float64) ([]*models.Item, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("ebay: parse html: %w", err)
	}

	var items []*models.Item
	doc.Find(blockSelector).Each(func(_ int, block *goquery.Selection) {
		item, err := parseBlock(block)
		if err != nil {
			s.logger.Warn("[ebay] Skipping malformed listing: %v", err)
			return
		}
		if item.WithinCeiling(maxPrice) {
			items = append(items, item)
		}
	})

	return items, nil
}

func parseBlock(block *goquery.Selection) (*models.Item, error) {
	title := strings.TrimSpace(block.Find(titleSelector).First().Text())
	if title == "" {
		return nil, errors.New("missing title")
	}

	link, ok := block.Find(linkSelector).First().Attr("href")
	if !ok || link == "" {
		return nil, errors.New("missing link")
	}

	item := &models.Item{
		Title:        title,
		PriceDisplay: "N/A",
		Link:         link,
		Description:  "N/A",
	}

	if priceNode := block.Find(priceSelector).First(); priceNode.Length() > 0 {
		display := strings.TrimSpace(priceNode.Text())
		value, err := parsePrice(display)
		if err != nil {
			return nil, fmt.Errorf("unparseable price %q: %w", display, err)
		}
		item.PriceDisplay = display
		item.PriceNumeric = &value
	}

	if subtitle := strings.TrimSpace(block.Find(subtitleSelector).First().Text()); subtitle != "" {
		item.Description = subtitle
	}

	return item, nil
}

// parsePrice strips the currency symbol and thousands separators from a
// display price like "$1,200.50" and parses the remainder as a decimal.
func parsePrice(display string) (float64, error) {
	cleaned := strings.NewReplacer("$", "", ",", "").Replace(display)
	return strconv.ParseFloat(strings.TrimSpace(cleaned), 64)
}
