package apiv1

import "time"

type Beer struct {
	Id          string    `json:"id,omitempty"`
	Name        string    `json:"name"`
	Brewery     string    `json:"brewery"`
	Style       string    `json:"style"`
	Abv         float64   `json:"abv"`
	Ibu         *int64    `json:"ibu,omitempty"`
	Color       string    `json:"color"`
	Flavor      []string  `json:"flavor"`
	Description string    `json:"description"`
	ImageUrl    *string   `json:"imageUrl,omitempty"`
	Origin      *string   `json:"origin,omitempty"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt,omitzero"`
	Rating      *Rating   `json:"rating,omitempty"`
}

// Filters maps a category name (style, color, flavor, strength, bitterness, origin) to selected option ids.
type Filters map[string][]string

type ListBeersRequest struct {
	Status *string `json:"status,omitempty"`
}

type ListBeersResponse struct {
	Beers []*Beer `json:"beers"`
}

type GetBeerRequest struct {
	Id string `json:"id"`
}

type GetBeerResponse struct {
	Beer *Beer `json:"beer"`
}

type SearchBeersRequest struct {
	Filters Filters `json:"filters,omitempty"`
	Status  *string `json:"status,omitempty"`
}

type SearchBeersResponse struct {
	Beers []*Beer `json:"beers"`
}
