package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"marketscout/cli"
	"marketscout/config"
	"marketscout/models"
	"marketscout/scraper/ebay"
	"marketscout/scraper/etsy"
	"marketscout/storage"
	"marketscout/utils"
)

func main() {
	logger := utils.NewLogger()
	cfg := config.Load()

	store, err := storage.NewSQLiteStore(cfg.DBPath)
	if err != nil {
		logger.Error("Failed to open listing store: %v", err)
		os.Exit(1)
	}
	defer store.Close()

	prompter := cli.NewPrompter(os.Stdin, os.Stdout)

	platform := prompter.Ask("Enter the platform to search (eBay or Etsy): ", cli.IsPlatform)
	query := prompter.Ask("Enter the item you want to search for: ", cli.NonEmpty)
	ceilingInput := prompter.Ask("Enter the maximum price (or leave blank for no limit): ", cli.IsOptionalPrice)

	var maxPrice *float64
	if ceilingInput != "" {
		v, _ := strconv.ParseFloat(ceilingInput, 64)
		maxPrice = &v
	}

	var items []*models.Item
	switch strings.ToLower(platform) {
	case "ebay":
		items = ebay.New(cfg, logger).Search(query, maxPrice)
	case "etsy":
		items = etsy.New(cfg, logger).Search(query, maxPrice)
	}

	if len(items) == 0 {
		fmt.Println(cli.Yellow("No items found."))
		return
	}

	session, err := store.BeginSession()
	if err != nil {
		logger.Error("Failed to begin store session: %v", err)
		os.Exit(1)
	}
	defer func() {
		if err := session.Close(); err != nil {
			logger.Error("Failed to close store session: %v", err)
		}
	}()

	annotateAndSave(prompter, session, logger, capitalize(platform), items)
}

// annotateAndSave walks the matched items one at a time, prompting for notes
// and appending each annotated record to the session. A failed save is
// logged and the loop continues; the session rolls itself back on close.
func annotateAndSave(prompter *cli.Prompter, saver storage.ListingSaver, logger *utils.Logger, platform string, items []*models.Item) {
	for _, item := range items {
		fmt.Println(cli.Green(fmt.Sprintf("Title: %s, Price: %s, Link: %s",
			item.Title, item.PriceDisplay, item.Link)))

		notes := prompter.Ask(fmt.Sprintf("Enter notes for '%s': ", item.Title), nil)

		listing := &models.SavedListing{
			Platform:    platform,
			Title:       item.Title,
			Price:       item.PriceDisplay,
			Link:        item.Link,
			Description: item.Description,
			Notes:       notes,
		}
		if err := saver.Save(listing); err != nil {
			logger.Error("Failed to save %q: %v", item.Title, err)
		}
	}
}

// capitalize upper-cases the first letter and lower-cases the rest, so the
// stored platform name is "Ebay" or "Etsy" whatever casing the user typed.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}
