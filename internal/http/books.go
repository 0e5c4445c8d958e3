package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/akupelikilinc/TalhaBookLib/internal/database/books"
	"github.com/akupelikilinc/TalhaBookLib/internal/entities"
	"github.com/akupelikilinc/TalhaBookLib/internal/stats"
)

// BookStore defines the database operations for the book endpoints.
type BookStore interface {
	List(filter books.Filter) ([]entities.Book, error)
	All() ([]entities.Book, error)
	GetByID(id uint) (*entities.Book, error)
	Create(input books.Input) (*entities.Book, error)
	Update(id uint, input books.Input) (*entities.Book, error)
	Delete(id uint) error
	Summary(now time.Time) (stats.Summary, error)
}

type BooksController struct {
	store BookStore
}

func NewBooksController(store BookStore) *BooksController {
	return &BooksController{store: store}
}

// bookRequest is the wire shape of a candidate book. finished_date comes
// in as a string because both front ends send bare dates.
type bookRequest struct {
	Title        string   `json:"title"`
	Author       *string  `json:"author"`
	Category     *string  `json:"category"`
	Level        *string  `json:"level"`
	Pages        *int     `json:"pages"`
	FinishedDate *string  `json:"finished_date"`
	Rating       *float64 `json:"rating"`
	Mood         *string  `json:"mood"`
	Notes        *string  `json:"notes"`
	CoverURL     *string  `json:"cover_url"`
}

func (req bookRequest) toInput() (books.Input, error) {
	input := books.Input{
		Title:    req.Title,
		Author:   req.Author,
		Category: req.Category,
		Level:    req.Level,
		Pages:    req.Pages,
		Rating:   req.Rating,
		Mood:     req.Mood,
		Notes:    req.Notes,
		CoverURL: req.CoverURL,
	}
	if req.FinishedDate != nil {
		date, err := parseDate(*req.FinishedDate)
		if err != nil {
			return books.Input{}, err
		}
		input.FinishedDate = date
	}
	return input, nil
}

// isInputError reports whether the error is a validation problem the
// client caused, as opposed to a storage failure.
func isInputError(err error) bool {
	return errors.Is(err, books.ErrTitleRequired) ||
		errors.Is(err, books.ErrNegativePages) ||
		errors.Is(err, books.ErrRatingOutOfRange)
}

// List returns books matching the optional category/level/search filters.
// GET /api/books
func (controller *BooksController) List(c *gin.Context) {
	filter := books.Filter{
		Category: c.Query("category"),
		Level:    c.Query("level"),
		Search:   c.Query("search"),
	}

	result, err := controller.store.List(filter)
	if err != nil {
		respondInternalError(c, err, "list books")
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetByID returns a single book.
// GET /api/books/:id
func (controller *BooksController) GetByID(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	book, err := controller.store.GetByID(id)
	if err != nil {
		if errors.Is(err, books.ErrNotFound) {
			respondNotFound(c, "book")
			return
		}
		respondInternalError(c, err, "get book")
		return
	}

	c.JSON(http.StatusOK, book)
}

// Create stores a new book, substituting defaults for omitted fields.
// POST /api/books
func (controller *BooksController) Create(c *gin.Context) {
	var req bookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	input, err := req.toInput()
	if err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	book, err := controller.store.Create(input)
	if err != nil {
		if isInputError(err) {
			respondBadRequest(c, err.Error())
			return
		}
		respondInternalError(c, err, "create book")
		return
	}

	respondCreated(c, book)
}

// Update replaces a book record in full.
// PUT /api/books/:id
func (controller *BooksController) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req bookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	input, err := req.toInput()
	if err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	book, err := controller.store.Update(id, input)
	if err != nil {
		switch {
		case errors.Is(err, books.ErrNotFound):
			respondNotFound(c, "book")
		case isInputError(err):
			respondBadRequest(c, err.Error())
		default:
			respondInternalError(c, err, "update book")
		}
		return
	}

	c.JSON(http.StatusOK, book)
}

// Delete removes a book.
// DELETE /api/books/:id
func (controller *BooksController) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := controller.store.Delete(id); err != nil {
		if errors.Is(err, books.ErrNotFound) {
			respondNotFound(c, "book")
			return
		}
		respondInternalError(c, err, "delete book")
		return
	}

	respondSuccess(c, "book deleted successfully")
}

// Summary returns the headline collection statistics, recomputed against
// the current wall clock on every call.
// GET /api/stats/summary
func (controller *BooksController) Summary(c *gin.Context) {
	summary, err := controller.store.Summary(time.Now())
	if err != nil {
		respondInternalError(c, err, "summarize books")
		return
	}

	c.JSON(http.StatusOK, summary)
}

// Extras returns the secondary statistics the legacy static page derived
// client-side.
// GET /api/stats/extras
func (controller *BooksController) Extras(c *gin.Context) {
	all, err := controller.store.All()
	if err != nil {
		respondInternalError(c, err, "load books for extras")
		return
	}

	c.JSON(http.StatusOK, stats.ComputeExtras(all, time.Now()))
}
