// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── WriteJSON ──

func TestWriteJSON(t *testing.T) {
	w := httptest.NewRecorder()

	n, err := WriteJSON(w, map[string]string{"session_id": "s-1"}, http.StatusAccepted)

	require.NoError(t, err)
	assert.Positive(t, n)
	assert.Equal(t, http.StatusAccepted, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"session_id":"s-1"}`, w.Body.String())
}

func TestWriteJSON_Nil(t *testing.T) {
	w := httptest.NewRecorder()

	_, err := WriteJSON(w, nil, http.StatusOK)

	require.NoError(t, err)
	assert.Equal(t, "null", w.Body.String())
}

func TestWriteJSON_Unmarshalable(t *testing.T) {
	w := httptest.NewRecorder()

	n, err := WriteJSON(w, make(chan int), http.StatusOK)

	require.Error(t, err)
	assert.Zero(t, n)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

// ── ReadJSON ──

type modeBody struct {
	Mode string `json:"mode"`
}

func TestReadJSON(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		want    string
		wantEOF bool
		wantErr bool
	}{
		{name: "valid", body: `{"mode":"full"}`, want: "full"},
		{name: "empty", body: "", wantEOF: true},
		{name: "malformed", body: `{"mode":`, wantErr: true},
		{name: "unknown field", body: `{"mode":"full","extra":1}`, wantErr: true},
		{name: "oversized", body: `{"mode":"` + strings.Repeat("x", MaxJSONBody) + `"}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got modeBody
			err := ReadJSON(strings.NewReader(tt.body), &got)

			switch {
			case tt.wantEOF:
				assert.Equal(t, io.EOF, err)
			case tt.wantErr:
				require.Error(t, err)
				assert.NotEqual(t, io.EOF, err)
			default:
				require.NoError(t, err)
				assert.Equal(t, tt.want, got.Mode)
			}
		})
	}
}
