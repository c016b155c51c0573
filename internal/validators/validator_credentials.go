package validators

import (
	"context"
	"unicode/utf8"

	"github.com/MKhiriev/go-cookbook/models"
)

const (
	FieldUsername       = "username"
	FieldPassword       = "password"
	FieldPasswordLength = "password_length"
)

// MinPasswordLength is the shortest password accepted at registration,
// counted in characters.
const MinPasswordLength = 4

type CredentialsValidator struct {
}

func NewCredentialsValidator() Validator {
	return &CredentialsValidator{}
}

func (v *CredentialsValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Credentials:
		return v.validateCredentials(ctx, value, fields...)
	case *models.Credentials:
		return v.validateCredentials(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

// validateCredentials expects already trimmed input.
func (v *CredentialsValidator) validateCredentials(_ context.Context, creds models.Credentials, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldUsername:
			if creds.Username == "" {
				return ErrEmptyUsername
			}
		case FieldPassword:
			if creds.Password == "" {
				return ErrEmptyPassword
			}
		case FieldPasswordLength:
			if utf8.RuneCountInString(creds.Password) < MinPasswordLength {
				return ErrPasswordTooShort
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
