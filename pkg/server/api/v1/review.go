package apiv1

import "time"

type Review struct {
	Id        string    `json:"id,omitempty"`
	BeerId    string    `json:"beerId"`
	UserName  string    `json:"userName"`
	Rating    int32     `json:"rating"`
	Comment   string    `json:"comment"`
	Approved  bool      `json:"approved"`
	CreatedAt time.Time `json:"createdAt,omitzero"`
}

type PendingReview struct {
	Review       *Review `json:"review"`
	BeerName     string  `json:"beerName"`
	BeerImageUrl *string `json:"beerImageUrl,omitempty"`
}

// Rating is the mean of the approved ratings of a beer. Average is absent when HasRating is false.
type Rating struct {
	BeerId    string   `json:"beerId,omitempty"`
	HasRating bool     `json:"hasRating"`
	Average   *float64 `json:"average,omitempty"`
	Count     int32    `json:"count"`
}

type CreateReviewRequest struct {
	BeerId   string `json:"beerId"`
	UserName string `json:"userName"`
	Rating   int32  `json:"rating"`
	Comment  string `json:"comment"`
}

type CreateReviewResponse struct {
	Review *Review `json:"review"`
}

type ListReviewsRequest struct {
	BeerId string `json:"beerId"`
}

type ListReviewsResponse struct {
	Reviews []*Review `json:"reviews"`
	Rating  *Rating   `json:"rating"`
}

type GetRatingRequest struct {
	BeerId string `json:"beerId"`
}

type GetRatingResponse struct {
	Rating *Rating `json:"rating"`
}

type GetRatingsRequest struct {
	BeerIds []string `json:"beerIds"`
}

type GetRatingsResponse struct {
	Ratings []*Rating `json:"ratings"`
}
