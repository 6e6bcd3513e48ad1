package model

import "time"

// MenuItem is a sellable catalog entry. Price is an integer in the smallest
// currency unit (whole rupiah). Position encodes the display order; it is
// redundant with list position and kept contiguous by the reorder write path,
// not by a schema constraint.
type MenuItem struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Price       int64     `json:"price"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	ImageURL    string    `json:"image_url"`
	Position    int       `json:"position"`
	CreatedAt   time.Time `json:"created_at"`
}
