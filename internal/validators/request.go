package validators

import (
	"context"

	"github.com/MKhiriev/go-firebase-client/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	FieldEmail       = "email"
	FieldPassword    = "password"
	FieldRequestType = "request_type"
	FieldIDToken     = "id_token"
	FieldPath        = "path"
	FieldKey         = "key"
)

// RequestValidator implements [Validator] for the identity request models and
// for database locations.
type RequestValidator struct{}

// NewRequestValidator constructs a new RequestValidator and returns it as
// the Validator interface.
func NewRequestValidator() Validator {
	return &RequestValidator{}
}

// Validate dispatches on the dynamic type of obj. Both value and pointer forms
// are accepted:
//   - models.PasswordRequest: email and password;
//   - models.OobCodeRequest: request type plus email or identity token;
//   - models.IDTokenRequest: identity token;
//   - models.DataLocation: path, and key when fields names it or Key is set.
//
// Returns ErrUnsupportedType for anything else.
func (v *RequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.PasswordRequest:
		return v.validatePasswordRequest(value, fields...)
	case *models.PasswordRequest:
		return v.validatePasswordRequest(*value, fields...)

	case models.OobCodeRequest:
		return v.validateOobCodeRequest(value)
	case *models.OobCodeRequest:
		return v.validateOobCodeRequest(*value)

	case models.IDTokenRequest:
		return v.validateIDToken(value.IDToken)
	case *models.IDTokenRequest:
		return v.validateIDToken(value.IDToken)

	case models.DataLocation:
		return v.validateDataLocation(value, fields...)
	case *models.DataLocation:
		return v.validateDataLocation(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *RequestValidator) validatePasswordRequest(req models.PasswordRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldEmail:
			if err := ValidateEmail(req.Email); err != nil {
				return err
			}
		case FieldPassword:
			if err := ValidatePassword(req.Password); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RequestValidator) validateOobCodeRequest(req models.OobCodeRequest) error {
	switch req.RequestType {
	case models.RequestTypePasswordReset:
		return ValidateEmail(req.Email)
	case models.RequestTypeVerifyEmail:
		return v.validateIDToken(req.IDToken)
	default:
		return ErrInvalidRequestType
	}
}

func (v *RequestValidator) validateIDToken(token string) error {
	if token == "" {
		return ErrEmptyIDToken
	}
	return nil
}

func (v *RequestValidator) validateDataLocation(loc models.DataLocation, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldPath}
		if loc.Key != "" {
			fields = append(fields, FieldKey)
		}
	}

	for _, f := range fields {
		switch f {
		case FieldPath:
			if err := ValidatePath(loc.Path); err != nil {
				return err
			}
		case FieldKey:
			if err := ValidateKey(loc.Key); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
