// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"time"
)

// DefaultCookingTimeMinutes is used when no cooking time is given on creation
// and for every recipe restored from persisted storage.
const DefaultCookingTimeMinutes = 30

// Recipe is a single cooking recipe owned by the user who created it.
type Recipe struct {
	// ID is assigned at creation time and is time-ordered.
	// Uniqueness is not strictly enforced.
	ID string `json:"id"`

	// Title is the required display name of the recipe.
	Title string `json:"title"`

	// Ingredients is free text. By convention items are comma-separated,
	// but the value is never parsed.
	Ingredients string `json:"ingredients"`

	// Instructions is free, possibly multi-line, text.
	Instructions string `json:"instructions"`

	// Category is one of [AssignableCategories].
	Category Category `json:"category"`

	// CookingTimeMinutes is a non-negative duration in minutes.
	CookingTimeMinutes int `json:"cooking_time_minutes"`

	// Author is the username of the creator. Only the author may delete
	// the recipe.
	Author string `json:"author"`

	// CreatedAt is captured at creation and used for display only.
	CreatedAt time.Time `json:"created_at"`

	// IsFavorite can be toggled by any viewer.
	IsFavorite bool `json:"is_favorite"`
}

// FormattedDate renders CreatedAt as dd.MM.yyyy.
func (r Recipe) FormattedDate() string {
	return r.CreatedAt.Format("02.01.2006")
}

// FormattedTime renders the cooking time, switching to hours from 60 minutes on.
func (r Recipe) FormattedTime() string {
	if r.CookingTimeMinutes < 60 {
		return fmt.Sprintf("%d min", r.CookingTimeMinutes)
	}
	return fmt.Sprintf("%d h %d min", r.CookingTimeMinutes/60, r.CookingTimeMinutes%60)
}

// ListLabel is the one-line representation used in recipe lists.
func (r Recipe) ListLabel() string {
	favorite := ""
	if r.IsFavorite {
		favorite = "❤️ "
	}
	return fmt.Sprintf("🍽 %s%s (%s)", favorite, r.Title, r.Category)
}

// IsAuthoredBy reports whether username created the recipe.
func (r Recipe) IsAuthoredBy(username string) bool {
	return r.Author == username
}
