// Package auth provides the admin login for the reading log.
//
// Credentials are checked against bcrypt hashes in the users table. On
// success the service issues a signed, expiring JWT (HS256); verification
// returns the user summary or an error. There are no sessions — the React
// front end holds the bearer token and sends it on /api/auth/verify.
//
// # Configuration
//
//	AUTH_TOKEN_SECRET=<hex-32-bytes>  # Auto-generated if empty
//	AUTH_TOKEN_TTL=24h                # Token lifetime
//	AUTH_BCRYPT_COST=10               # bcrypt cost factor
//
// # Usage
//
//	tokens := auth.NewTokenManager(secret, cfg.Auth.TokenTTL)
//	service := auth.NewService(usersRepo, tokens)
//	token, user, err := service.Login("admin", "secret")
//	user, err = service.Verify(token)
package auth
