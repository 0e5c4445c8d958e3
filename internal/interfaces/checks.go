// Package interfaces holds compile-time interface implementation checks.
// These ensure that concrete types satisfy their interfaces at compile time,
// catching missing methods before runtime.
//
// To verify all checks pass: go build ./internal/interfaces/...
package interfaces

import (
	"github.com/akupelikilinc/TalhaBookLib/internal/auth"
	"github.com/akupelikilinc/TalhaBookLib/internal/database/books"
	"github.com/akupelikilinc/TalhaBookLib/internal/database/settings"
	"github.com/akupelikilinc/TalhaBookLib/internal/database/users"
	"github.com/akupelikilinc/TalhaBookLib/internal/http"
	"github.com/akupelikilinc/TalhaBookLib/internal/scheduler"
)

// Data access layer

var _ http.BookStore = (*books.Repository)(nil)
var _ http.SettingStore = (*settings.Repository)(nil)
var _ auth.UserStore = (*users.Repository)(nil)

// Scheduler

var _ scheduler.SummarySource = (*books.Repository)(nil)
