package model

import "time"

// Setting is a named value the service keeps about its own data, such as the version of the last
// defaults migration.
type Setting struct {
	Key       string `gorm:"primaryKey;type:varchar(64)"`
	Value     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
