// Package models defines server-side data models persisted in the database.
package models

// User is a registered account. PasswordHash holds the bcrypt hash; the
// plaintext password is never stored.
type User struct {
	ID           string
	UserName     string
	PasswordHash string
}
