// Copyright (c) DevOps Wiz
// SPDX-License-Identifier: MPL-2.0

package mythictest

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"
)

// MeReply is a scripted response of the fake identity endpoint. Delay holds
// the response back before the headers are written.
type MeReply struct {
	Status int
	Body   string
	Delay  time.Duration
}

// MeServer is a fake identity endpoint. It answers GET /me with scripted
// replies, one per call, repeating the last reply once the script runs out.
// Every request's headers are recorded.
type MeServer struct {
	*httptest.Server

	mu       sync.Mutex
	replies  []MeReply
	requests []http.Header
}

// NewMeServer starts a MeServer and registers its shutdown with t.Cleanup.
func NewMeServer(t *testing.T, replies ...MeReply) *MeServer {
	t.Helper()
	s := &MeServer{replies: replies}
	s.Server = httptest.NewServer(http.HandlerFunc(s.serve))
	t.Cleanup(s.Close)
	return s
}

func (s *MeServer) serve(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet || r.URL.Path != "/me" {
		http.NotFound(w, r)
		return
	}
	s.mu.Lock()
	s.requests = append(s.requests, r.Header.Clone())
	reply := MeReply{Status: http.StatusUnauthorized, Body: `{"error":"no reply scripted"}`}
	if n := len(s.requests); len(s.replies) > 0 {
		idx := n - 1
		if idx >= len(s.replies) {
			idx = len(s.replies) - 1
		}
		reply = s.replies[idx]
	}
	s.mu.Unlock()

	if reply.Delay > 0 {
		select {
		case <-time.After(reply.Delay):
		case <-r.Context().Done():
			return
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(reply.Status)
	_, _ = io.WriteString(w, reply.Body)
}

// Host returns the server address without scheme, as a ServerURL value.
func (s *MeServer) Host() string {
	return strings.TrimPrefix(s.URL, "http://")
}

// Requests returns copies of the recorded request headers in call order.
func (s *MeServer) Requests() []http.Header {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]http.Header, len(s.requests))
	copy(out, s.requests)
	return out
}

// Calls returns the number of /me requests served.
func (s *MeServer) Calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.requests)
}
