// Copyright 2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package main

import (
	"io/ioutil"
	"net/http"
	"strings"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

// Config holds the settings read from the YAML configuration file.
// Command-line flags override it.
type Config struct {
	// URL is the GeoServer web application root.
	URL string `mapstructure:"url"`

	// Headers are added to every request, typically for
	// authentication.
	Headers map[string]string `mapstructure:"headers"`

	// Timeout bounds each request; zero means no limit.
	Timeout time.Duration `mapstructure:"timeout"`

	// LogLevel is a logrus level name.
	LogLevel string `mapstructure:"log_level"`

	// Workspace is the default workspace for commands that need
	// one.
	Workspace string `mapstructure:"workspace"`
}

// defaultConfig is used for settings neither the file nor the flags
// provide.
var defaultConfig = Config{
	URL:      "http://localhost:8080/geoserver",
	LogLevel: "info",
}

func loadConfigYaml(filename string) (map[string]interface{}, error) {
	var result map[string]interface{}
	var err error
	var bytes []byte
	bytes, err = ioutil.ReadFile(filename)
	if err == nil {
		err = yaml.Unmarshal(bytes, &result)
	}
	return result, err
}

// decodeConfig overlays raw configuration values on cfg.  Durations
// may be given as strings such as "30s".
func decodeConfig(raw map[string]interface{}, cfg *Config) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:       mapstructure.StringToTimeDurationHookFunc(),
		WeaklyTypedInput: true,
		ErrorUnused:      true,
		Result:           cfg,
	})
	if err != nil {
		return err
	}
	return decoder.Decode(raw)
}

// headerFlag collects repeated "Name: value" flags into an HTTP
// header.  It implements flag.Value, so a typical use is
//
//	header := headerFlag{}
//	flag.Var(&header, "header", "Name: value of an extra header")
type headerFlag struct {
	Header http.Header
}

// String renders the collected headers one per line.
func (h *headerFlag) String() string {
	var lines []string
	for name, values := range h.Header {
		for _, value := range values {
			lines = append(lines, name+": "+value)
		}
	}
	return strings.Join(lines, "\n")
}

// Set parses one "Name: value" header and adds it.
func (h *headerFlag) Set(param string) error {
	parts := strings.SplitN(param, ":", 2)
	if len(parts) != 2 || strings.TrimSpace(parts[0]) == "" {
		return errors.New("header must be of the form \"Name: value\"")
	}
	if h.Header == nil {
		h.Header = make(http.Header)
	}
	h.Header.Add(strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1]))
	return nil
}
