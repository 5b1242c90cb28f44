// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-fit-tracker/internal/service"
	"github.com/MKhiriev/go-fit-tracker/internal/validators"
)

// decodeJSON decodes the request body into dst. A value of the wrong JSON
// type is reported as a validation failure on that field.
func decodeJSON(r *http.Request, dst any) error {
	err := json.NewDecoder(r.Body).Decode(dst)
	if err == nil {
		return nil
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, &validators.ValidationError{
			Fields: map[string]string{typeErr.Field: "value must be of type " + typeErr.Type.String()},
		})
	}

	return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
}

func limitFromRequest(r *http.Request) (uint64, error) {
	limit, err := validators.ParseLimit(r.URL.Query().Get("limit"))
	if err != nil {
		return 0, fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, err)
	}
	return limit, nil
}
