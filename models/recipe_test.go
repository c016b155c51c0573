// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRecipe_FormattedTime(t *testing.T) {
	tests := []struct {
		name    string
		minutes int
		want    string
	}{
		{name: "zero", minutes: 0, want: "0 min"},
		{name: "under an hour", minutes: 45, want: "45 min"},
		{name: "exactly an hour", minutes: 60, want: "1 h 0 min"},
		{name: "hours and minutes", minutes: 135, want: "2 h 15 min"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Recipe{CookingTimeMinutes: tt.minutes}
			assert.Equal(t, tt.want, r.FormattedTime())
		})
	}
}

func TestRecipe_FormattedDate(t *testing.T) {
	r := Recipe{CreatedAt: time.Date(2026, time.March, 7, 18, 30, 0, 0, time.UTC)}
	assert.Equal(t, "07.03.2026", r.FormattedDate())
}

func TestRecipe_ListLabel(t *testing.T) {
	r := Recipe{Title: "Borscht", Category: CategoryMainDishes}
	assert.Equal(t, "🍽 Borscht (Main dishes)", r.ListLabel())

	r.IsFavorite = true
	assert.Equal(t, "🍽 ❤️ Borscht (Main dishes)", r.ListLabel())
}

func TestCategory_Assignable(t *testing.T) {
	assignable := AssignableCategories()

	assert.Len(t, assignable, 5)
	assert.NotContains(t, assignable, CategoryAll)
	assert.NotContains(t, assignable, CategoryFavorites)

	assert.True(t, CategoryDrinks.IsAssignable())
	assert.False(t, CategoryFavorites.IsAssignable())
	assert.False(t, Category("Soups").IsAssignable())
	assert.False(t, Category("main dishes").IsAssignable())
}

func TestNewAppBuildInfo(t *testing.T) {
	info := NewAppBuildInfo("1.0.0", "", "abc")
	assert.Equal(t, "1.0.0", info.Version)
	assert.Equal(t, "N/A", info.Date)
	assert.Equal(t, "version 1.0.0, built N/A, commit abc", info.String())
}
