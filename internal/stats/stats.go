// Package stats computes reading-log summary metrics from an in-memory
// book collection. The books repository produces the same Summary with SQL
// aggregates; this package covers callers that already hold the full
// collection (summary snapshots, the extras endpoint, tests).
package stats

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"time"

	"github.com/akupelikilinc/TalhaBookLib/internal/entities"
)

// MonthlyWindowDays is the trailing window used for the monthly counters.
const MonthlyWindowDays = 30

// None is returned for string metrics when no qualifying record exists.
const None = "-"

// MinutesPerPage is the reading-time estimate applied to page counts.
const MinutesPerPage = 1.2

// TimelineMonths is the number of trailing months shown in the timeline.
const TimelineMonths = 6

var levelDigits = regexp.MustCompile(`\d+`)

// Summary holds the headline metrics for the whole collection.
// Field names follow the JSON contract of the stats endpoint.
type Summary struct {
	TotalBooks   int     `json:"totalBooks"`
	TotalPages   int     `json:"totalPages"`
	AvgRating    float64 `json:"avgRating"`
	MonthlyBooks int     `json:"monthlyBooks"`
	TopCategory  string  `json:"topCategory"`
	FavoriteBook string  `json:"favoriteBook"`
}

// MonthCount is one bar of the reading timeline.
type MonthCount struct {
	Label   string  `json:"label"`
	Count   int     `json:"count"`
	Percent float64 `json:"percent"`
}

// Achievement is a badge earned by the collection.
type Achievement struct {
	Icon string `json:"icon"`
	Text string `json:"text"`
}

// Extras holds the secondary metrics the legacy static page derived
// client-side: estimated reading time, grade-level average, a six-month
// timeline and achievement badges.
type Extras struct {
	MonthlyMinutes int           `json:"monthlyMinutes"`
	LevelAverage   string        `json:"levelAverage"`
	Timeline       []MonthCount  `json:"timeline"`
	Achievements   []Achievement `json:"achievements"`
}

// Compute derives the summary from the full collection. It is evaluated
// against now on every call; nothing is cached because the collection can
// change between calls.
func Compute(books []entities.Book, now time.Time) Summary {
	s := Summary{
		TotalBooks:   len(books),
		TopCategory:  None,
		FavoriteBook: None,
	}

	cutoff := now.AddDate(0, 0, -MonthlyWindowDays)
	var ratingSum float64
	for _, b := range books {
		s.TotalPages += b.Pages
		ratingSum += b.Rating
		if b.FinishedDate != nil && !b.FinishedDate.Before(cutoff) {
			s.MonthlyBooks++
		}
	}
	if len(books) > 0 {
		s.AvgRating = ratingSum / float64(len(books))
	}

	if top := topCategory(books); top != "" {
		s.TopCategory = top
	}
	if fav := favoriteBook(books); fav != nil {
		s.FavoriteBook = fav.Title
	}

	return s
}

// ComputeExtras derives the secondary metrics. Like Compute, it is
// recomputed on every call against the current wall clock.
func ComputeExtras(books []entities.Book, now time.Time) Extras {
	e := Extras{
		LevelAverage: None,
		Timeline:     timeline(books, now),
		Achievements: achievements(books),
	}

	cutoff := now.AddDate(0, 0, -MonthlyWindowDays)
	for _, b := range books {
		if b.FinishedDate != nil && !b.FinishedDate.Before(cutoff) {
			e.MonthlyMinutes += EstimateMinutes(b)
		}
	}

	if avg, ok := levelAverage(books); ok {
		e.LevelAverage = avg
	}

	return e
}

// EstimateMinutes approximates reading time for a single book.
func EstimateMinutes(b entities.Book) int {
	return int(math.Round(float64(b.Pages) * MinutesPerPage))
}

// topCategory returns the most frequent non-empty category. Ties resolve
// to the category encountered first in collection order.
func topCategory(books []entities.Book) string {
	counts := make(map[string]int)
	var order []string
	for _, b := range books {
		if b.Category == nil || *b.Category == "" {
			continue
		}
		if _, seen := counts[*b.Category]; !seen {
			order = append(order, *b.Category)
		}
		counts[*b.Category]++
	}

	var best string
	for _, category := range order {
		if best == "" || counts[category] > counts[best] {
			best = category
		}
	}
	return best
}

// favoriteBook returns the highest-rated book. Ties resolve to the most
// recent finished date, with undated books losing to dated ones.
func favoriteBook(books []entities.Book) *entities.Book {
	var fav *entities.Book
	for i := range books {
		b := &books[i]
		if fav == nil || b.Rating > fav.Rating {
			fav = b
			continue
		}
		if b.Rating == fav.Rating && finishedAfter(b, fav) {
			fav = b
		}
	}
	return fav
}

func finishedAfter(a, b *entities.Book) bool {
	if a.FinishedDate == nil {
		return false
	}
	if b.FinishedDate == nil {
		return true
	}
	return a.FinishedDate.After(*b.FinishedDate)
}

// levelAverage computes the mean of leading grade numbers found in level
// labels such as "3. sınıf". Books without a parseable number are skipped.
func levelAverage(books []entities.Book) (string, bool) {
	var sum, count int
	for _, b := range books {
		if b.Level == nil {
			continue
		}
		digits := levelDigits.FindString(*b.Level)
		if digits == "" {
			continue
		}
		n, err := strconv.Atoi(digits)
		if err != nil || n == 0 {
			continue
		}
		sum += n
		count++
	}
	if count == 0 {
		return "", false
	}
	avg := float64(sum) / float64(count)
	return fmt.Sprintf("%.1f. sınıf", avg), true
}

// timeline buckets finished books into the trailing months, newest month
// last, with bar lengths scaled to the busiest month.
func timeline(books []entities.Book, now time.Time) []MonthCount {
	months := make([]MonthCount, 0, TimelineMonths)
	maxCount := 1
	for i := TimelineMonths - 1; i >= 0; i-- {
		month := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).AddDate(0, -i, 0)
		count := 0
		for _, b := range books {
			if b.FinishedDate == nil {
				continue
			}
			if b.FinishedDate.Year() == month.Year() && b.FinishedDate.Month() == month.Month() {
				count++
			}
		}
		if count > maxCount {
			maxCount = count
		}
		months = append(months, MonthCount{Label: month.Format("Jan"), Count: count})
	}
	for i := range months {
		months[i].Percent = float64(months[i].Count) / float64(maxCount) * 100
	}
	return months
}

func achievements(books []entities.Book) []Achievement {
	var earned []Achievement

	if len(books) >= 5 {
		earned = append(earned, Achievement{Icon: "fa-star", Text: "5+ kitap"})
	}
	for _, b := range books {
		if b.Pages > 200 {
			earned = append(earned, Achievement{Icon: "fa-mountain", Text: "Uzun soluklu kitap"})
			break
		}
	}
	if top := topCategory(books); top != "" {
		count := 0
		for _, b := range books {
			if b.Category != nil && *b.Category == top {
				count++
			}
		}
		if count >= 3 {
			earned = append(earned, Achievement{Icon: "fa-fire", Text: "Tür ustası"})
		}
	}
	if len(earned) == 0 {
		earned = append(earned, Achievement{Icon: "fa-seedling", Text: "Yolculuk yeni başlıyor"})
	}

	return earned
}
