// Copyright 2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package geoservertest

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// A handler that panics must not leave the server locked.
func TestHandlePanicUnlocks(t *testing.T) {
	s := NewServer()
	h := s.handle(func(req *http.Request, vars map[string]string) (*response, error) {
		panic("handler failed")
	})
	func() {
		defer func() {
			assert.NotNil(t, recover())
		}()
		h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", Root+"/rest/reset", nil))
	}()

	unlocked := make(chan struct{})
	go func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		close(unlocked)
	}()
	select {
	case <-unlocked:
	case <-time.After(time.Second):
		t.Fatal("server lock still held after panic")
	}

	w := httptest.NewRecorder()
	s.ServeHTTP(w, httptest.NewRequest("POST", Root+"/rest/reset", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}
