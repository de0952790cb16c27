package storage

import "marketscout/models"

// ListingSaver is the interface the interaction loop writes annotated
// records through.
type ListingSaver interface {
	Save(listing *models.SavedListing) error
}

// ListingReader reads back previously saved listings.
type ListingReader interface {
	FetchAll() ([]*models.SavedListing, error)
}
