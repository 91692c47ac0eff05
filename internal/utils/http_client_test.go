// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestNewHTTPClient_NotNil(t *testing.T) {
	client := NewHTTPClient(0)

	if client == nil {
		t.Fatal("expected non-nil *HTTPClient, got nil")
	}

	if client.Client == nil {
		t.Fatal("expected embedded *resty.Client to be non-nil, got nil")
	}
}

func TestNewHTTPClient_Timeout(t *testing.T) {
	client := NewHTTPClient(3 * time.Second)

	if got := client.GetClient().Timeout; got != 3*time.Second {
		t.Errorf("expected timeout 3s, got %s", got)
	}
}

func TestNewHTTPClient_Independence(t *testing.T) {
	client1 := NewHTTPClient(0)
	client2 := NewHTTPClient(0)

	if client1.Client == client2.Client {
		t.Fatal("expected NewHTTPClient to return HTTPClients with different *resty.Client instances")
	}
}

func TestNewHTTPClient_SendsUserAgent(t *testing.T) {
	var ua string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ua = r.Header.Get("User-Agent")
	}))
	defer srv.Close()

	_, err := NewHTTPClient(time.Second).R().Get(srv.URL)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ua != "go-device-sync" {
		t.Errorf("expected user agent go-device-sync, got %q", ua)
	}
}

func TestUUIDGenerator_Unique(t *testing.T) {
	g := NewUUIDGenerator()
	a, b := g.Generate(), g.Generate()

	if a == "" || a == b {
		t.Errorf("expected two distinct non-empty ids, got %q and %q", a, b)
	}
}
