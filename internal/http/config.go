package http

import (
	"github.com/akupelikilinc/TalhaBookLib/internal/auth"
	"github.com/akupelikilinc/TalhaBookLib/internal/database"
	"github.com/akupelikilinc/TalhaBookLib/internal/readonly"
)

// RouterConfig holds all dependencies needed to construct the router.
// Using a config struct instead of positional parameters keeps the
// constructor readable as the dependency list grows.
type RouterConfig struct {
	Database *database.Database

	BookStore    BookStore
	SettingStore SettingStore
	AuthService  *auth.Service

	ReadOnlyMiddleware *readonly.Middleware

	Version     string
	Diagnostics bool
}
