package model

import (
	"time"

	"github.com/google/uuid"
)

type Review struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	BeerID    uuid.UUID `gorm:"type:uuid;index"`
	UserName  string
	Rating    int
	Comment   string
	Approved  bool `gorm:"index"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// PendingReview is a review awaiting moderation, with enough of its beer to show in the queue.
type PendingReview struct {
	Review
	BeerName  string
	BeerImage *string
}

// BeerRating is one approved rating, used to aggregate averages per beer.
type BeerRating struct {
	BeerID uuid.UUID
	Rating int
}
