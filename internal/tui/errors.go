// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"

	"github.com/MKhiriev/go-cookbook/internal/app"
	"github.com/MKhiriev/go-cookbook/internal/service"
	"github.com/MKhiriev/go-cookbook/internal/store"
	"github.com/MKhiriev/go-cookbook/internal/validators"
)

var errInvalidCookingTime = errors.New("cooking time is not a number")

// humanizeError returns the message shown to the user for err.
func humanizeError(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, validators.ErrEmptyUsername),
		errors.Is(err, validators.ErrEmptyPassword):
		return app.MsgFillAllFields
	case errors.Is(err, validators.ErrPasswordTooShort):
		return app.MsgPasswordTooShort
	case errors.Is(err, service.ErrInvalidCredentials):
		return app.MsgInvalidCredentials
	case errors.Is(err, validators.ErrEmptyTitle),
		errors.Is(err, validators.ErrEmptyIngredients),
		errors.Is(err, validators.ErrEmptyInstructions):
		return app.MsgRequiredRecipeFields
	case errors.Is(err, validators.ErrInvalidCategory):
		return app.MsgInvalidCategory
	case errors.Is(err, validators.ErrNegativeCookingTime),
		errors.Is(err, errInvalidCookingTime):
		return app.MsgInvalidCookingTime
	case errors.Is(err, service.ErrNotRecipeAuthor):
		return app.MsgNotRecipeAuthor
	case errors.Is(err, store.ErrStorageUnavailable):
		return app.MsgStorageUnavailable
	default:
		return app.MsgUnexpectedError
	}
}
