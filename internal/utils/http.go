// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// MaxJSONBody caps request bodies decoded by ReadJSON.
const MaxJSONBody = 64 << 10

// WriteJSON writes data as a JSON response with statusCode. When data cannot
// be marshaled the client gets a 500 and the error is returned.
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}

// ReadJSON decodes at most MaxJSONBody bytes of body into v. Unknown fields
// are rejected. An empty body yields io.EOF unwrapped, so callers with an
// optional body can accept it.
func ReadJSON(body io.Reader, v any) error {
	dec := json.NewDecoder(io.LimitReader(body, MaxJSONBody))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		if err == io.EOF {
			return err
		}
		return fmt.Errorf("error reading JSON body: %w", err)
	}
	return nil
}
