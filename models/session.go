// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// GuestUsername is reported for a logged-in session whose username was never
// persisted.
const GuestUsername = "Guest"

// Session is the current authenticated user and whether the user is logged in.
// It survives restarts until an explicit logout.
type Session struct {
	// Username identifies the owner of the visible recipe set.
	Username string

	// LoggedIn is cleared by logout; Username is kept.
	LoggedIn bool
}

// Credentials is a login or registration attempt.
type Credentials struct {
	Username string
	Password string
}
