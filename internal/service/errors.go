package service

import "errors"

var (
	// ErrValidation wraps the validators.Err* cause of rejected input.
	// Nothing is changed when it is returned.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidCredentials is returned by a login that matches no entry of
	// the credential table.
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrNotRecipeAuthor is returned when someone other than the author
	// tries to delete a recipe.
	ErrNotRecipeAuthor = errors.New("only the author can delete this recipe")

	// ErrIndexOutOfRange is returned for a position outside the collection.
	// Callers map displayed rows through IndexByID, so this indicates a bug.
	ErrIndexOutOfRange = errors.New("recipe index out of range")

	// ErrNotLoaded is returned when the collection is saved before any user
	// was loaded.
	ErrNotLoaded = errors.New("no recipe collection is loaded")
)
