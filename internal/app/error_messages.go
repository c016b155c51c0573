// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// cookbook user interface.
//
// All Msg* constants are human-readable message strings shown to the user
// to describe the outcome of an operation. Keeping them in one place ensures
// consistent wording throughout the application.
package app

const (
	// MsgFillAllFields is shown when a login or registration form is
	// submitted with an empty username or password.
	MsgFillAllFields = "Fill in all fields"

	// MsgInvalidCredentials is shown when the username/password pair is not
	// in the credential table.
	MsgInvalidCredentials = "Invalid username or password"

	// MsgPasswordTooShort is shown when a registration password is shorter
	// than four characters.
	MsgPasswordTooShort = "Password must be at least 4 characters"

	// MsgWelcome greets the user after a successful login. It takes the
	// username as its only argument.
	MsgWelcome = "Welcome, %s!"

	// MsgRegistered is shown after a successful registration.
	MsgRegistered = "Registration successful"

	// MsgLoggedOut is shown on the login screen after a logout.
	MsgLoggedOut = "You have been logged out"

	// MsgRequiredRecipeFields is shown when a recipe is submitted without a
	// title, ingredients or instructions.
	MsgRequiredRecipeFields = "Fill in the title, ingredients and instructions"

	// MsgInvalidCategory is shown when a recipe is submitted with a
	// filter-only or unknown category.
	MsgInvalidCategory = "Choose a recipe category"

	// MsgInvalidCookingTime is shown when the cooking time is not a
	// non-negative whole number of minutes.
	MsgInvalidCookingTime = "Cooking time must be a whole number of minutes"

	// MsgNotRecipeAuthor is shown when a user tries to delete a recipe
	// created by someone else.
	MsgNotRecipeAuthor = "You can only delete your own recipes"

	// MsgRecipeAdded is shown after a recipe was added and saved.
	MsgRecipeAdded = "Recipe added"

	// MsgRecipeDeleted is shown after a recipe was deleted.
	MsgRecipeDeleted = "Recipe deleted"

	// MsgAddedToFavorites and MsgRemovedFromFavorites report a favorite toggle.
	MsgAddedToFavorites     = "Added to favorites"
	MsgRemovedFromFavorites = "Removed from favorites"

	// MsgDemoRecipesAdded is shown after the demo recipes were appended.
	MsgDemoRecipesAdded = "Demo recipes added"

	// MsgNoRecipesForStats is shown instead of the statistics of an empty
	// collection.
	MsgNoRecipesForStats = "No recipes for statistics"

	// MsgIngredientsCopied is shown after the ingredients were copied to
	// the system clipboard.
	MsgIngredientsCopied = "Ingredients copied to clipboard"

	// MsgClipboardUnavailable is shown when no system clipboard is available.
	MsgClipboardUnavailable = "Clipboard is not available"

	// MsgStorageUnavailable is shown when the database reported a transient
	// failure. Retrying the action may succeed.
	MsgStorageUnavailable = "Storage is busy, please try again"

	// MsgUnexpectedError is shown for any failure without a dedicated message.
	MsgUnexpectedError = "Something went wrong, see the log file for details"
)
