// Copyright 2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package geoserver_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/diffeo/go-geoserver/geoserver"
)

func TestClassifyVersion(t *testing.T) {
	tests := []struct {
		Input   string
		Version geoserver.Version
	}{
		{"2.2", geoserver.V22},
		{"2.2.5", geoserver.V22},
		{"2.3-SNAPSHOT", geoserver.V23},
		{"2.4.0", geoserver.V24},
		{"2.5", geoserver.V25},
		{"2.6", geoserver.V26},
		{"2.6-SNAPSHOT", geoserver.V26},
		{"2.6-ENTERPRISE-SNAPSHOT", geoserver.V26},
		{"2.7", geoserver.VersionAbove},
		{"2.21", geoserver.VersionAbove},
		{"2.21.1", geoserver.VersionAbove},
		{"2.1", geoserver.VersionUnrecognized},
		{"3.0", geoserver.VersionUnrecognized},
		{"anystring", geoserver.VersionUnrecognized},
		{"", geoserver.VersionUnrecognized},
	}
	for _, test := range tests {
		assert.Equal(t, test.Version, geoserver.ClassifyVersion(test.Input),
			"ClassifyVersion(%q)", test.Input)
	}
}

func TestVersionOrdering(t *testing.T) {
	assert.Equal(t, -1, geoserver.V22.Compare(geoserver.V26))
	assert.Equal(t, -1, geoserver.V26.Compare(geoserver.VersionAbove))
	assert.Equal(t, 1, geoserver.VersionAbove.Compare(geoserver.V22))
	assert.Equal(t, 0, geoserver.V24.Compare(geoserver.V24))

	assert.True(t, geoserver.V26.AtLeast(geoserver.V25))
	assert.True(t, geoserver.VersionAbove.AtLeast(geoserver.V26))
	assert.False(t, geoserver.V22.AtLeast(geoserver.V23))
	assert.False(t, geoserver.VersionUnrecognized.AtLeast(geoserver.VersionUnrecognized))
}

func TestVersionJSON(t *testing.T) {
	b, err := json.Marshal(geoserver.V25)
	if assert.NoError(t, err) {
		assert.Equal(t, `"2.5"`, string(b))
	}

	var v geoserver.Version
	if assert.NoError(t, json.Unmarshal([]byte(`"above"`), &v)) {
		assert.Equal(t, geoserver.VersionAbove, v)
	}
	assert.EqualError(t, v.UnmarshalText([]byte("9.9")),
		"invalid version (unmarshal, 9.9)")
	assert.Equal(t, "Version(42)", geoserver.Version(42).String())
}
