// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-fit-tracker/models"
)

const contentTypeJSON = "application/json"

// marshalFailureBody is sent when a response cannot be encoded.
var marshalFailureBody = []byte(`{"detail":"Internal Server Error"}`)

// WriteJSON encodes data as the body of a statusCode response. An
// encoding failure turns the response into a JSON 500 and is returned.
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	body, err := json.Marshal(data)
	w.Header().Set("Content-Type", contentTypeJSON)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write(marshalFailureBody)
		return 0, fmt.Errorf("error encoding %T response: %w", data, err)
	}

	w.WriteHeader(statusCode)
	return w.Write(body)
}

// WriteError writes {"detail": detail} with statusCode. Non-empty fields
// are included as the "fields" object.
func WriteError(w http.ResponseWriter, statusCode int, detail string, fields map[string]string) {
	if len(fields) == 0 {
		fields = nil
	}

	_, _ = WriteJSON(w, models.ErrorResponse{Detail: detail, Fields: fields}, statusCode)
}
