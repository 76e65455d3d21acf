// Copyright 2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package geoserver

import (
	"fmt"
)

// String returns the name of a version tier.
func (v Version) String() string {
	b, err := v.MarshalText()
	if err != nil {
		return fmt.Sprintf("Version(%d)", int(v))
	}
	return string(b)
}

// MarshalText returns a string representing a version tier.
func (v Version) MarshalText() ([]byte, error) {
	switch v {
	case VersionUnrecognized:
		return []byte("unrecognized"), nil
	case V22:
		return []byte("2.2"), nil
	case V23:
		return []byte("2.3"), nil
	case V24:
		return []byte("2.4"), nil
	case V25:
		return []byte("2.5"), nil
	case V26:
		return []byte("2.6"), nil
	case VersionAbove:
		return []byte("above"), nil
	default:
		return nil, fmt.Errorf("invalid version (marshal, %+v)", int(v))
	}
}

// UnmarshalText populates a version tier from its name.
func (v *Version) UnmarshalText(text []byte) error {
	switch string(text) {
	case "unrecognized":
		*v = VersionUnrecognized
	case "2.2":
		*v = V22
	case "2.3":
		*v = V23
	case "2.4":
		*v = V24
	case "2.5":
		*v = V25
	case "2.6":
		*v = V26
	case "above":
		*v = VersionAbove
	default:
		return fmt.Errorf("invalid version (unmarshal, %+v)", string(text))
	}
	return nil
}

// String returns the name of a seed task status.
func (status SeedTaskStatus) String() string {
	b, err := status.MarshalText()
	if err != nil {
		return fmt.Sprintf("SeedTaskStatus(%d)", int(status))
	}
	return string(b)
}

// MarshalText returns a string representing a seed task status.
func (status SeedTaskStatus) MarshalText() ([]byte, error) {
	switch status {
	case SeedNotFound:
		return []byte("not_found"), nil
	case SeedAborted:
		return []byte("aborted"), nil
	case SeedPending:
		return []byte("pending"), nil
	case SeedRunning:
		return []byte("running"), nil
	case SeedDone:
		return []byte("done"), nil
	default:
		return nil, fmt.Errorf("invalid seed status (marshal, %+v)", int(status))
	}
}

// UnmarshalText populates a seed task status from a string.
func (status *SeedTaskStatus) UnmarshalText(text []byte) error {
	switch string(text) {
	case "not_found":
		*status = SeedNotFound
	case "aborted":
		*status = SeedAborted
	case "pending":
		*status = SeedPending
	case "running":
		*status = SeedRunning
	case "done":
		*status = SeedDone
	default:
		return fmt.Errorf("invalid seed status (unmarshal, %+v)", string(text))
	}
	return nil
}

// ParseSeedType validates a seeding request type name.
func ParseSeedType(s string) (SeedType, error) {
	for _, t := range SeedTypes {
		if string(t) == s {
			return t, nil
		}
	}
	return "", fmt.Errorf("invalid seed type %q", s)
}
