// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"

	"github.com/MKhiriev/go-device-sync/internal/server"
)

type serverWorker struct {
	server server.Server
	done   chan struct{}
}

// NewServerWorker serves srv in a goroutine. Stop shuts it down and waits
// for RunServer to return.
func NewServerWorker(srv server.Server) Worker {
	return &serverWorker{server: srv}
}

func (s *serverWorker) Start(context.Context) error {
	s.done = make(chan struct{})
	go func() {
		defer close(s.done)
		s.server.RunServer()
	}()
	return nil
}

func (s *serverWorker) Stop() {
	if s.done == nil {
		return
	}
	s.server.Shutdown()
	<-s.done
	s.done = nil
}
