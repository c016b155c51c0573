package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyTitle          = errors.New("title is required")
	ErrEmptyIngredients    = errors.New("ingredients are required")
	ErrEmptyInstructions   = errors.New("instructions are required")
	ErrInvalidCategory     = errors.New("invalid category")
	ErrNegativeCookingTime = errors.New("cooking time cannot be negative")
	ErrEmptyAuthor         = errors.New("author is required")

	ErrEmptyUsername    = errors.New("username is required")
	ErrEmptyPassword    = errors.New("password is required")
	ErrPasswordTooShort = errors.New("password is too short")
)
