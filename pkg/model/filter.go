package model

import "time"

type FilterOption struct {
	Category  string `gorm:"primaryKey;type:varchar(32)"`
	ID        string `gorm:"primaryKey"`
	Label     string
	Icon      string
	IsDefault bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

type FilterStat struct {
	FilterValue string `gorm:"primaryKey"`
	UsageCount  int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
