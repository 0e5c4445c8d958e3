// Package books provides database operations for reading-log entries.
//
// # Usage
//
//	repo := books.NewRepository(db)
//	list, err := repo.List(books.Filter{Category: "Macera"})
//	summary, err := repo.Summary(time.Now())
package books

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/akupelikilinc/TalhaBookLib/internal/entities"
	"github.com/akupelikilinc/TalhaBookLib/internal/stats"
)

// ErrNotFound is returned when no book matches the requested identifier.
var ErrNotFound = errors.New("book not found")

// listOrder sorts finished books newest first, undated books last, with
// creation order (and finally id) breaking ties.
const listOrder = "finished_date IS NULL, finished_date DESC, created_at DESC, id DESC"

// Repository handles all book database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new books repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// List returns the books matching the filter in display order.
func (r *Repository) List(filter Filter) ([]entities.Book, error) {
	var books []entities.Book
	err := filter.apply(r.db.Model(&entities.Book{})).Order(listOrder).Find(&books).Error
	return books, err
}

// All returns every book in display order.
func (r *Repository) All() ([]entities.Book, error) {
	return r.List(Filter{})
}

// GetByID retrieves a single book.
func (r *Repository) GetByID(id uint) (*entities.Book, error) {
	var book entities.Book
	err := r.db.First(&book, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &book, nil
}

// Create validates the input, substitutes defaults and persists a new book.
// The returned record carries the server-assigned id and timestamps.
func (r *Repository) Create(input Input) (*entities.Book, error) {
	book, err := input.toBook()
	if err != nil {
		return nil, err
	}
	if err := r.db.Create(&book).Error; err != nil {
		return nil, fmt.Errorf("failed to create book: %w", err)
	}
	return &book, nil
}

// Update replaces the whole record, applying the same validation and
// default substitution as Create. The identifier and creation timestamp
// are preserved; the modification timestamp is bumped.
func (r *Repository) Update(id uint, input Input) (*entities.Book, error) {
	existing, err := r.GetByID(id)
	if err != nil {
		return nil, err
	}

	book, err := input.toBook()
	if err != nil {
		return nil, err
	}
	book.ID = existing.ID
	book.CreatedAt = existing.CreatedAt

	if err := r.db.Save(&book).Error; err != nil {
		return nil, fmt.Errorf("failed to update book: %w", err)
	}
	return &book, nil
}

// Delete removes a book by id. Returns ErrNotFound when nothing was
// removed, so a second delete of the same id fails the same way.
func (r *Repository) Delete(id uint) error {
	result := r.db.Delete(&entities.Book{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Summary computes the headline metrics with SQL aggregates. It is
// evaluated against now on every call; nothing is cached.
func (r *Repository) Summary(now time.Time) (stats.Summary, error) {
	summary := stats.Summary{
		TopCategory:  stats.None,
		FavoriteBook: stats.None,
	}

	cutoff := now.AddDate(0, 0, -stats.MonthlyWindowDays)
	var totals struct {
		TotalBooks   int
		TotalPages   int
		AvgRating    float64
		MonthlyBooks int
	}
	err := r.db.Model(&entities.Book{}).
		Select(
			"COUNT(*) AS total_books, "+
				"COALESCE(SUM(pages), 0) AS total_pages, "+
				"COALESCE(AVG(rating), 0) AS avg_rating, "+
				"COUNT(CASE WHEN finished_date >= ? THEN 1 END) AS monthly_books",
			cutoff,
		).
		Scan(&totals).Error
	if err != nil {
		return summary, fmt.Errorf("failed to aggregate books: %w", err)
	}
	summary.TotalBooks = totals.TotalBooks
	summary.TotalPages = totals.TotalPages
	summary.AvgRating = totals.AvgRating
	summary.MonthlyBooks = totals.MonthlyBooks

	// Ties resolve to the category inserted first.
	var top struct{ Category string }
	err = r.db.Model(&entities.Book{}).
		Select("category").
		Where("category IS NOT NULL").
		Group("category").
		Order("COUNT(*) DESC, MIN(id) ASC").
		Limit(1).
		Scan(&top).Error
	if err != nil {
		return summary, fmt.Errorf("failed to find top category: %w", err)
	}
	if top.Category != "" {
		summary.TopCategory = top.Category
	}

	// Ties resolve to the most recently finished book.
	var favorite struct{ Title string }
	err = r.db.Model(&entities.Book{}).
		Select("title").
		Where("rating IS NOT NULL").
		Order("rating DESC, finished_date DESC").
		Limit(1).
		Scan(&favorite).Error
	if err != nil {
		return summary, fmt.Errorf("failed to find favorite book: %w", err)
	}
	if favorite.Title != "" {
		summary.FavoriteBook = favorite.Title
	}

	return summary, nil
}
