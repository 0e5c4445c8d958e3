package entities

import (
	"time"
)

// Rating bounds enforced on create and update.
const (
	MinRating = 1.0
	MaxRating = 5.0

	DefaultRating = 3.0
)

// Book is a single entry in the reading log. Optional text fields are
// pointers so that "not set" survives the round trip to the database as
// NULL instead of an empty string.
type Book struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	Title        string     `gorm:"size:512;not null" json:"title"`
	Author       *string    `gorm:"size:256" json:"author"`
	Category     *string    `gorm:"index;size:100" json:"category"`
	Level        *string    `gorm:"index;size:100" json:"level"`
	Pages        int        `gorm:"default:0" json:"pages"`
	FinishedDate *time.Time `gorm:"index" json:"finished_date"`
	Rating       float64    `gorm:"index;default:3.0" json:"rating"`
	Mood         *string    `gorm:"size:100" json:"mood"`
	Notes        *string    `gorm:"type:text" json:"notes"`
	CoverURL     *string    `gorm:"size:2048" json:"cover_url"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

func (Book) TableName() string {
	return "books"
}
