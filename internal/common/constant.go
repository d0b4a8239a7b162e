// Package common contains shared constants and sentinel errors used across
// RecipeKeeper components.
package common

const (
	// AuthorizationHeaderName is the HTTP header carrying the access token.
	AuthorizationHeaderName = "Authorization"

	// BearerScheme prefixes the token inside the Authorization header.
	BearerScheme = "Bearer"

	// RoleUser is the only role issued to authenticated users.
	RoleUser = "User"
)
