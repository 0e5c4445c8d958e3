// Package database provides the data access layer for the application.
//
// # Architecture
//
// The database layer is organized into domain-specific sub-packages:
//
//	database/
//	├── database.go      # Connection setup, migrations, default-setting seeding
//	├── books/           # Book CRUD, filtered listing and summary aggregation
//	├── settings/        # Key/value application settings
//	└── users/           # Admin user lookup for login
//
// # Using Sub-packages
//
// Each sub-package provides a Repository type with domain-specific operations:
//
//	// Initialize database connection
//	db, err := database.NewDatabase("./booklog.db")
//
//	// Create domain-specific repositories
//	booksRepo := books.NewRepository(db.DB)
//	settingsRepo := settings.NewRepository(db.DB)
//
//	// Use repositories
//	book, err := booksRepo.GetByID(123)
//	all, err := booksRepo.List(books.Filter{Category: "Macera"})
//
// # Interface Implementations
//
//   - books.Repository: implements http.BookStore
//   - settings.Repository: implements http.SettingStore
//   - users.Repository: implements auth.UserStore
package database
