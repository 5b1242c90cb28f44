// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks request payloads before they reach the store.
//
// A Validator collects every problem it finds into a *ValidationError that
// maps the JSON field name to a reason, so transport layers can report all
// of them at once. Callers match the failure with
// errors.Is(err, ErrValidation) and extract the details with FieldsOf.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
