package main

import (
	"os"
	"strconv"

	"github.com/revsynth/revsynth/iniconfig"
)

// loadValues parses path as an ini document, or returns an empty Values
// when path is blank: every command works from flag defaults alone if no
// config file is given, matching main.cpp's "if not specified, default
// options would be used".
func loadValues(path string) (iniconfig.Values, error) {
	if path == "" {
		return iniconfig.Values{}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return iniconfig.Parse(f)
}

// firstOr returns values' first entry for key, or def if key is absent.
func firstOr(values iniconfig.Values, key, def string) string {
	if v, ok := values.First(key); ok {
		return v
	}
	return def
}

// firstIntOr is firstOr for an integer-valued key; a malformed value
// falls back to def rather than erroring, consistent with the ini
// format's "missing key" handling.
func firstIntOr(values iniconfig.Values, key string, def int) int {
	v, ok := values.First(key)
	if !ok {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

// firstBoolOr is firstOr for a boolean-valued key.
func firstBoolOr(values iniconfig.Values, key string, def bool) bool {
	v, ok := values.First(key)
	if !ok {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}
