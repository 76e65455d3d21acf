// Copyright 2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package geoserver

import (
	"fmt"
	"net/http"
)

// ErrorStatus describes errors that correspond to specific HTTP status
// codes.
type ErrorStatus interface {
	// HTTPStatus returns the HTTP status code for this error.
	HTTPStatus() int
}

// ErrNoSuchResource is returned when GeoServer does not have a
// requested catalog object.
type ErrNoSuchResource struct {
	// Kind is the kind of resource, e.g. "workspace".
	Kind string

	// Name is the name that was requested.
	Name string
}

func (err ErrNoSuchResource) Error() string {
	return fmt.Sprintf("No such %v %v", err.Kind, err.Name)
}

// HTTPStatus returns a fixed 404 Not Found error code.
func (err ErrNoSuchResource) HTTPStatus() int {
	return http.StatusNotFound
}

// ErrAlreadyExists is returned when creating a catalog object whose
// name is taken.
type ErrAlreadyExists struct {
	Kind string
	Name string
}

func (err ErrAlreadyExists) Error() string {
	return fmt.Sprintf("%v %v already exists", err.Kind, err.Name)
}

// HTTPStatus returns a fixed 409 Conflict error code.
func (err ErrAlreadyExists) HTTPStatus() int {
	return http.StatusConflict
}

// ErrMalformedResponse is returned when a response body cannot be
// decoded as the expected document.
type ErrMalformedResponse struct {
	Kind string
}

func (err ErrMalformedResponse) Error() string {
	return fmt.Sprintf("Malformed %v response", err.Kind)
}
