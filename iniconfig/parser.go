package iniconfig

import (
	"bufio"
	"io"
	"strings"
)

// Values maps a key to every value assigned to it, in the order the
// assignments appeared.
type Values map[string][]string

// First returns the first value assigned to key, and whether key was
// present at all.
func (v Values) First(key string) (string, bool) {
	vals, ok := v[key]
	if !ok || len(vals) == 0 {
		return "", false
	}
	return vals[0], true
}

// Parse reads key=value assignments from r.
func Parse(r io.Reader) (Values, error) {
	values := make(Values)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if isBlank(line) || isComment(line) {
			continue
		}
		split(line, values)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return values, nil
}

func split(line string, values Values) {
	pos := strings.IndexByte(line, '=')
	if pos < 0 {
		return
	}

	key := strings.TrimSpace(line[:pos])
	value := removeQuotes(strings.TrimSpace(line[pos+1:]))
	if key == "" {
		return
	}

	values[key] = append(values[key], value)
}

func isBlank(line string) bool {
	return strings.TrimSpace(line) == ""
}

func isComment(line string) bool {
	trimmed := strings.TrimLeft(line, " \t")
	return strings.HasPrefix(trimmed, "#")
}

func removeQuotes(s string) string {
	if len(s) >= 2 && (s[0] == '"' && s[len(s)-1] == '"' || s[0] == '\'' && s[len(s)-1] == '\'') {
		return s[1 : len(s)-1]
	}
	return s
}
