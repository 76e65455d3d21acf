// Copyright 2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package geoservertest

import "net/http"

// errBadRequest is returned for request bodies the server cannot
// use.
type errBadRequest struct {
	Text string
}

func (e errBadRequest) Error() string {
	return e.Text
}

func (e errBadRequest) HTTPStatus() int {
	return http.StatusBadRequest
}

// errForbidden is returned when deleting an object that other
// objects still depend on.
type errForbidden struct {
	Text string
}

func (e errForbidden) Error() string {
	return e.Text
}

func (e errForbidden) HTTPStatus() int {
	return http.StatusForbidden
}
