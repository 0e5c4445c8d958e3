package books

import (
	"errors"
	"time"

	"github.com/akupelikilinc/TalhaBookLib/internal/entities"
)

var (
	ErrTitleRequired    = errors.New("title is required")
	ErrNegativePages    = errors.New("pages must not be negative")
	ErrRatingOutOfRange = errors.New("rating must be between 1 and 5")
)

// Input is a candidate book record for create and update. Optional fields
// are pointers so that "absent" can be told apart from a zero value; absent
// fields fall back to the documented defaults.
type Input struct {
	Title        string
	Author       *string
	Category     *string
	Level        *string
	Pages        *int
	FinishedDate *time.Time
	Rating       *float64
	Mood         *string
	Notes        *string
	CoverURL     *string
}

// toBook validates the input and materializes an entity with defaults
// substituted: optional text nil, pages 0, rating 3.0, no finished date.
func (in Input) toBook() (entities.Book, error) {
	if in.Title == "" {
		return entities.Book{}, ErrTitleRequired
	}

	pages := 0
	if in.Pages != nil {
		pages = *in.Pages
	}
	if pages < 0 {
		return entities.Book{}, ErrNegativePages
	}

	// A zero rating counts as absent, matching the truthiness rules of the
	// original API.
	rating := entities.DefaultRating
	if in.Rating != nil && *in.Rating != 0 {
		rating = *in.Rating
	}
	if rating < entities.MinRating || rating > entities.MaxRating {
		return entities.Book{}, ErrRatingOutOfRange
	}

	return entities.Book{
		Title:        in.Title,
		Author:       normalize(in.Author),
		Category:     normalize(in.Category),
		Level:        normalize(in.Level),
		Pages:        pages,
		FinishedDate: in.FinishedDate,
		Rating:       rating,
		Mood:         normalize(in.Mood),
		Notes:        normalize(in.Notes),
		CoverURL:     normalize(in.CoverURL),
	}, nil
}

// normalize maps empty strings to nil so they are stored as NULL.
func normalize(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}
