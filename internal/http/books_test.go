package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/akupelikilinc/TalhaBookLib/internal/database/books"
	"github.com/akupelikilinc/TalhaBookLib/internal/entities"
)

// setupBooksRouter wires a books controller against a real repository on a
// throwaway database file.
func setupBooksRouter(t *testing.T) (*gin.Engine, *books.Repository, func()) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dbPath := "./test_http_" + t.Name() + ".db"
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&entities.Book{}))

	repo := books.NewRepository(db)
	controller := NewBooksController(repo)

	router := gin.New()
	router.GET("/api/books", controller.List)
	router.GET("/api/books/:id", controller.GetByID)
	router.POST("/api/books", controller.Create)
	router.PUT("/api/books/:id", controller.Update)
	router.DELETE("/api/books/:id", controller.Delete)
	router.GET("/api/stats/summary", controller.Summary)
	router.GET("/api/stats/extras", controller.Extras)

	cleanup := func() {
		sqlDB, _ := db.DB()
		sqlDB.Close()
		os.Remove(dbPath)
	}
	return router, repo, cleanup
}

func postJSON(t *testing.T, router *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req, _ := http.NewRequest("POST", path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func putJSON(t *testing.T, router *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req, _ := http.NewRequest("PUT", path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func get(router *gin.Engine, path string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest("GET", path, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestBooksController_Create(t *testing.T) {
	router, _, cleanup := setupBooksRouter(t)
	defer cleanup()

	w := postJSON(t, router, "/api/books", gin.H{
		"title":         "Küçük Prens",
		"author":        "Antoine de Saint-Exupéry",
		"category":      "Klasik",
		"pages":         112,
		"rating":        4.5,
		"finished_date": "2025-02-12",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var book entities.Book
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &book))
	assert.NotZero(t, book.ID)
	assert.Equal(t, "Küçük Prens", book.Title)
	assert.Equal(t, 112, book.Pages)
	assert.Equal(t, 4.5, book.Rating)
	require.NotNil(t, book.FinishedDate)
}

func TestBooksController_Create_Defaults(t *testing.T) {
	router, _, cleanup := setupBooksRouter(t)
	defer cleanup()

	w := postJSON(t, router, "/api/books", gin.H{"title": "Momo"})
	require.Equal(t, http.StatusCreated, w.Code)

	var book entities.Book
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &book))
	assert.Equal(t, 0, book.Pages)
	assert.Equal(t, entities.DefaultRating, book.Rating)
	assert.Nil(t, book.FinishedDate)
}

func TestBooksController_Create_Invalid(t *testing.T) {
	router, _, cleanup := setupBooksRouter(t)
	defer cleanup()

	t.Run("missing title", func(t *testing.T) {
		w := postJSON(t, router, "/api/books", gin.H{"author": "Nobody"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("bad date", func(t *testing.T) {
		w := postJSON(t, router, "/api/books", gin.H{"title": "Momo", "finished_date": "12/02/2025"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("rating out of range", func(t *testing.T) {
		w := postJSON(t, router, "/api/books", gin.H{"title": "Momo", "rating": 9})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("malformed body", func(t *testing.T) {
		req, _ := http.NewRequest("POST", "/api/books", bytes.NewReader([]byte("{not json")))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestBooksController_List_Filters(t *testing.T) {
	router, _, cleanup := setupBooksRouter(t)
	defer cleanup()

	for _, body := range []gin.H{
		{"title": "Küçük Prens", "author": "Saint-Exupéry", "category": "Klasik", "level": "4. sınıf"},
		{"title": "Momo", "author": "Michael Ende", "category": "Fantastik", "level": "5. sınıf"},
	} {
		require.Equal(t, http.StatusCreated, postJSON(t, router, "/api/books", body).Code)
	}

	var list []entities.Book

	w := get(router, "/api/books")
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	assert.Len(t, list, 2)

	w = get(router, "/api/books?category=Klasik")
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list, 1)
	assert.Equal(t, "Küçük Prens", list[0].Title)

	w = get(router, "/api/books?search=ende")
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list, 1)
	assert.Equal(t, "Momo", list[0].Title)

	w = get(router, "/api/books?category=Hepsi&level=Hepsi")
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	assert.Len(t, list, 2)
}

func TestBooksController_GetByID(t *testing.T) {
	router, repo, cleanup := setupBooksRouter(t)
	defer cleanup()

	created, err := repo.Create(books.Input{Title: "Momo"})
	require.NoError(t, err)

	w := get(router, "/api/books/1")
	require.Equal(t, http.StatusOK, w.Code)

	var book entities.Book
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &book))
	assert.Equal(t, created.ID, book.ID)

	assert.Equal(t, http.StatusNotFound, get(router, "/api/books/999").Code)
	assert.Equal(t, http.StatusBadRequest, get(router, "/api/books/abc").Code)
}

func TestBooksController_Update(t *testing.T) {
	router, repo, cleanup := setupBooksRouter(t)
	defer cleanup()

	created, err := repo.Create(books.Input{Title: "Momo"})
	require.NoError(t, err)

	w := putJSON(t, router, "/api/books/1", gin.H{"title": "Momo", "rating": 4})
	require.Equal(t, http.StatusOK, w.Code)

	var book entities.Book
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &book))
	assert.Equal(t, created.ID, book.ID)
	assert.Equal(t, 4.0, book.Rating)

	assert.Equal(t, http.StatusNotFound, putJSON(t, router, "/api/books/999", gin.H{"title": "X"}).Code)
	assert.Equal(t, http.StatusBadRequest, putJSON(t, router, "/api/books/1", gin.H{"title": ""}).Code)
}

func TestBooksController_Delete(t *testing.T) {
	router, repo, cleanup := setupBooksRouter(t)
	defer cleanup()

	_, err := repo.Create(books.Input{Title: "Momo"})
	require.NoError(t, err)

	req, _ := http.NewRequest("DELETE", "/api/books/1", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var resp SuccessResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "book deleted successfully", resp.Message)

	req, _ = http.NewRequest("DELETE", "/api/books/1", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestBooksController_Summary(t *testing.T) {
	router, repo, cleanup := setupBooksRouter(t)
	defer cleanup()

	category := "Klasik"
	pages := 112
	rating := 4.5
	_, err := repo.Create(books.Input{Title: "Küçük Prens", Category: &category, Pages: &pages, Rating: &rating})
	require.NoError(t, err)

	w := get(router, "/api/stats/summary")
	require.Equal(t, http.StatusOK, w.Code)

	var summary map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &summary))
	assert.Equal(t, float64(1), summary["totalBooks"])
	assert.Equal(t, float64(112), summary["totalPages"])
	assert.Equal(t, "Klasik", summary["topCategory"])
	assert.Equal(t, "Küçük Prens", summary["favoriteBook"])
}

func TestBooksController_Summary_Empty(t *testing.T) {
	router, _, cleanup := setupBooksRouter(t)
	defer cleanup()

	w := get(router, "/api/stats/summary")
	require.Equal(t, http.StatusOK, w.Code)

	var summary map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &summary))
	assert.Equal(t, float64(0), summary["totalBooks"])
	assert.Equal(t, "-", summary["topCategory"])
	assert.Equal(t, "-", summary["favoriteBook"])
}

func TestBooksController_Extras(t *testing.T) {
	router, repo, cleanup := setupBooksRouter(t)
	defer cleanup()

	level := "4. sınıf"
	_, err := repo.Create(books.Input{Title: "Küçük Prens", Level: &level})
	require.NoError(t, err)

	w := get(router, "/api/stats/extras")
	require.Equal(t, http.StatusOK, w.Code)

	var extras map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &extras))
	assert.Equal(t, "4.0. sınıf", extras["levelAverage"])
	assert.Len(t, extras["timeline"], 6)
	assert.NotEmpty(t, extras["achievements"])
}
