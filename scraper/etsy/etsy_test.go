package etsy

import (
	"testing"

	"marketscout/config"
	"marketscout/utils"
)

func newTestScraper() *Scraper {
	return New(&config.Config{}, utils.NewLogger())
}

func ceiling(v float64) *float64 { return &v }

func TestExtractStringPrice(t *testing.T) {
	payload := []byte(`{"results":[{"title":"Mug","price":"12","url":"http://y/2"}]}`)

	items, err := newTestScraper().Extract(payload, nil)
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}

	item := items[0]
	if item.Title != "Mug" {
		t.Errorf("title = %q; want %q", item.Title, "Mug")
	}
	if item.PriceDisplay != "$12" {
		t.Errorf("price display = %q; want %q", item.PriceDisplay, "$12")
	}
	if item.PriceNumeric == nil || *item.PriceNumeric != 12 {
		t.Errorf("price numeric = %v; want 12", item.PriceNumeric)
	}
	if item.Link != "http://y/2" {
		t.Errorf("link = %q; want %q", item.Link, "http://y/2")
	}
	if item.Description != "N/A" {
		t.Errorf("description = %q; want %q", item.Description, "N/A")
	}
}

func TestExtractNumericPrice(t *testing.T) {
	payload := []byte(`{"results":[{"title":"Bowl","price":12.5,"url":"http://y/3"}]}`)

	items, err := newTestScraper().Extract(payload, nil)
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}
	if items[0].PriceDisplay != "$12.5" {
		t.Errorf("price display = %q; want %q", items[0].PriceDisplay, "$12.5")
	}
	if items[0].PriceNumeric == nil || *items[0].PriceNumeric != 12.5 {
		t.Errorf("price numeric = %v; want 12.5", items[0].PriceNumeric)
	}
}

func TestExtractCeilingFilter(t *testing.T) {
	payload := []byte(`{"results":[
		{"title":"Cheap","price":"5","url":"http://y/1"},
		{"title":"Mid","price":"20","url":"http://y/2"},
		{"title":"Dear","price":"100","url":"http://y/3"}
	]}`)

	items, err := newTestScraper().Extract(payload, ceiling(20))
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 items at or below the ceiling, got %d", len(items))
	}
	if items[0].Title != "Cheap" || items[1].Title != "Mid" {
		t.Errorf("unexpected items survived: %q, %q", items[0].Title, items[1].Title)
	}
}

func TestExtractSentinelPricePassesCeiling(t *testing.T) {
	payload := []byte(`{"results":[{"title":"Unpriced","price":"N/A","url":"http://y/4"}]}`)

	items, err := newTestScraper().Extract(payload, ceiling(1))
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected sentinel-priced item to pass any ceiling, got %d items", len(items))
	}
	if items[0].PriceDisplay != "N/A" {
		t.Errorf("price display = %q; want %q", items[0].PriceDisplay, "N/A")
	}
	if items[0].PriceNumeric != nil {
		t.Errorf("price numeric = %v; want nil", *items[0].PriceNumeric)
	}
}

func TestExtractSkipsNonNumericPrice(t *testing.T) {
	payload := []byte(`{"results":[
		{"title":"Freebie","price":"free","url":"http://y/5"},
		{"title":"Normal","price":"9","url":"http://y/6"}
	]}`)

	items, err := newTestScraper().Extract(payload, nil)
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected the non-numeric price to be skipped, got %d items", len(items))
	}
	if items[0].Title != "Normal" {
		t.Errorf("surviving item = %q; want %q", items[0].Title, "Normal")
	}
}

func TestExtractMissingResultsKey(t *testing.T) {
	items, err := newTestScraper().Extract([]byte(`{"count":0}`), nil)
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}
	if len(items) != 0 {
		t.Errorf("expected empty sequence for a payload without results, got %d items", len(items))
	}
}

func TestExtractFieldDefaults(t *testing.T) {
	items, err := newTestScraper().Extract([]byte(`{"results":[{}]}`), nil)
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}

	item := items[0]
	if item.Title != "N/A" || item.Link != "N/A" || item.Description != "N/A" || item.PriceDisplay != "N/A" {
		t.Errorf("missing fields should default to N/A, got %+v", item)
	}
}

func TestExtractMalformedPayload(t *testing.T) {
	if _, err := newTestScraper().Extract([]byte(`{not json`), nil); err == nil {
		t.Error("expected error for a malformed payload")
	}
}

func TestSearchWithoutAPIKey(t *testing.T) {
	items := newTestScraper().Search("mug", nil)
	if len(items) != 0 {
		t.Errorf("expected empty result without an API key, got %d items", len(items))
	}
}
