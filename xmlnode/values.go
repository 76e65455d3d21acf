// Copyright 2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package xmlnode

import (
	"strconv"
)

// FormatBool renders b the way GeoServer expects XML booleans.
func FormatBool(b bool) string {
	return strconv.FormatBool(b)
}

// FormatInt renders an integer field value.
func FormatInt(i int) string {
	return strconv.Itoa(i)
}

// FormatFloat renders a number with the fewest digits that round-trip.
func FormatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func parseInt(n *Node, field string) (int, bool) {
	s, ok := n.Get(field)
	if !ok {
		return 0, false
	}
	i, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return i, true
}

func parseFloat(n *Node, field string) (float64, bool) {
	s, ok := n.Get(field)
	if !ok {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// SetBool sets field to an XML boolean.
func (r Record[F]) SetBool(field F, value bool) {
	r.Set(field, FormatBool(value))
}

// SetInt sets field to a decimal integer.
func (r Record[F]) SetInt(field F, value int) {
	r.Set(field, FormatInt(value))
}

// SetFloat sets field to a decimal number.
func (r Record[F]) SetFloat(field F, value float64) {
	r.Set(field, FormatFloat(value))
}
