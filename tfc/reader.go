package tfc

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/revsynth/revsynth/gate"
	"github.com/revsynth/revsynth/word"
)

// Read parses a TFC document from r and returns the gate scheme it
// describes.
func Read(r io.Reader) (gate.Scheme, error) {
	scanner := bufio.NewScanner(r)

	variableIndex := make(map[string]int)
	var n int
	var scheme gate.Scheme
	inBody := false

	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r\n")
		trimmed := strings.TrimSpace(line)

		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}

		switch {
		case strings.HasPrefix(trimmed, ".v "):
			names := strings.Split(strings.TrimSpace(trimmed[len(".v "):]), ",")
			for i, name := range names {
				name = strings.TrimSpace(name)
				variableIndex[name] = i
			}
			n = len(names)

		case strings.HasPrefix(trimmed, ".i "), strings.HasPrefix(trimmed, ".o "), strings.HasPrefix(trimmed, ".c "):
			// input/output/constant ordering is metadata the scheme
			// itself doesn't need: every gate line already names its
			// lines directly via variableIndex.

		case trimmed == "BEGIN":
			inBody = true

		case trimmed == "END":
			inBody = false

		case inBody && len(trimmed) > 1 && trimmed[0] == 't':
			g, err := parseElement(trimmed, n, variableIndex)
			if err != nil {
				return nil, err
			}
			scheme = append(scheme, g)

		default:
			return nil, fmt.Errorf("tfc: line %q: %w", line, ErrFormat)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return scheme, nil
}

func parseElement(line string, n int, variableIndex map[string]int) (gate.Element, error) {
	rest := line[1:] // skip 't'

	spacePos := strings.IndexFunc(rest, func(r rune) bool { return r == ' ' || r == '\t' })
	if spacePos < 0 {
		return gate.Element{}, fmt.Errorf("tfc: line %q: %w", line, ErrFormat)
	}

	count, err := strconv.Atoi(rest[:spacePos])
	if err != nil {
		return gate.Element{}, fmt.Errorf("tfc: line %q: %w", line, ErrFormat)
	}

	names := strings.Split(strings.TrimSpace(rest[spacePos+1:]), ",")
	if len(names) != count {
		return gate.Element{}, fmt.Errorf("tfc: line %q: %w", line, ErrFormat)
	}

	var controlMask, inversionMask word.Word
	for _, name := range names[:len(names)-1] {
		name = strings.TrimSpace(name)
		inverted := strings.HasSuffix(name, "'")
		if inverted {
			name = name[:len(name)-1]
		}
		idx, ok := variableIndex[name]
		if !ok {
			return gate.Element{}, fmt.Errorf("tfc: line %q: variable %q: %w", line, name, ErrUnknownVariable)
		}
		bit := word.Word(1) << uint(idx)
		controlMask |= bit
		if inverted {
			inversionMask |= bit
		}
	}

	targetName := strings.TrimSpace(names[len(names)-1])
	targetIdx, ok := variableIndex[targetName]
	if !ok {
		return gate.Element{}, fmt.Errorf("tfc: line %q: variable %q: %w", line, targetName, ErrUnknownVariable)
	}

	return gate.New(n, word.Word(1)<<uint(targetIdx), controlMask, inversionMask)
}
