package models

import (
	"time"
)

type User struct {
	UserID       string  `json:"id" db:"user_id"`
	Username     string  `json:"username" db:"username"`
	PasswordHash string  `json:"-" db:"password_hash"`
	Name         *string `json:"name,omitempty" db:"name"`
}

// SessionClaims is what a verified session token asserts about the caller.
type SessionClaims struct {
	UserID   string `json:"id"`
	Username string `json:"username"`
}

// Author is the projection of a user attached to listed content.
type Author struct {
	UserID   string `json:"id"`
	Username string `json:"username"`
}

// ContentItem is the shared shape of posts and projects. AuthorID is set once
// at creation and never reassigned; Cover is nil or a public object-store URL.
type ContentItem struct {
	ItemID         string    `json:"id" db:"item_id"`
	AuthorID       string    `json:"authorId" db:"author_id"`
	Title          string    `json:"title" db:"title"`
	Summary        string    `json:"summary" db:"summary"`
	Content        string    `json:"content" db:"content"`
	Cover          *string   `json:"cover" db:"cover"`
	CreatedAt      time.Time `json:"createdAt" db:"created_at"`
	AuthorUsername string    `json:"-" db:"author_username"`
	Author         *Author   `json:"author,omitempty" db:"-"`
}
