// Package validators checks user input before it reaches the network.
//
// Core concepts:
//   - Validator: generic interface to validate request models, with optional
//     field-level scoping for targeted validation.
//   - Rule functions (ValidateEmail, ValidatePassword, ValidateKey,
//     ValidatePath) that encode the identity toolkit and realtime database
//     constraints and can be used on their own.
//
// The client façade runs validators before any I/O; the local emulator
// applies the same rules to incoming requests.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
