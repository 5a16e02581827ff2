package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type BeerStatus string

const (
	StatusAvailable BeerStatus = "disponible"
	StatusSoldOut   BeerStatus = "agotado"
)

func (s BeerStatus) Valid() bool {
	return s == StatusAvailable || s == StatusSoldOut
}

type Beer struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string    `gorm:"not null"`
	Brewery     string    `gorm:"not null"`
	Style       string    `gorm:"index"`
	ABV         float64
	IBU         *int64
	Color       string
	Flavor      datatypes.JSONSlice[string] `gorm:"type:jsonb"`
	Description string
	Image       *string
	Origin      *string
	Status      BeerStatus `gorm:"type:varchar(16);not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
