package tfc

import (
	"fmt"
	"io"

	"github.com/revsynth/revsynth/gate"
	"github.com/revsynth/revsynth/word"
)

// variableName returns the single-letter name ('a', 'b', ...) for line
// index i.
func variableName(i int) (string, error) {
	if i >= 'z'-'a'+1 {
		return "", fmt.Errorf("tfc: index %d: %w", i, ErrTooManyVariables)
	}
	return string(rune('a' + i)), nil
}

// Write emits s, an n-line scheme, as a TFC document to w.
func Write(w io.Writer, s gate.Scheme, n int) error {
	names := make([]string, n)
	for i := range names {
		name, err := variableName(i)
		if err != nil {
			return err
		}
		names[i] = name
	}

	if err := writeHeaderLine(w, ".v ", names); err != nil {
		return err
	}
	if err := writeHeaderLine(w, ".i ", names); err != nil {
		return err
	}
	if err := writeHeaderLine(w, ".o ", names); err != nil {
		return err
	}

	if _, err := fmt.Fprintln(w, "BEGIN"); err != nil {
		return err
	}
	for _, g := range s {
		if err := writeElement(w, g, names); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, "END")
	return err
}

func writeHeaderLine(w io.Writer, prefix string, names []string) error {
	if _, err := io.WriteString(w, prefix); err != nil {
		return err
	}
	for i, name := range names {
		if i > 0 {
			if _, err := io.WriteString(w, ","); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, name); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "\n")
	return err
}

func writeElement(w io.Writer, g gate.Element, names []string) error {
	var controls []string
	for m := g.ControlMask; m != 0; m &= m - 1 {
		bit := word.LowestSetBit(m)
		idx := int(word.LowestSetBitPos(bit))
		name := names[idx]
		if g.InversionMask&bit != 0 {
			name += "'"
		}
		controls = append(controls, name)
	}

	targetIdx := int(word.LowestSetBitPos(g.TargetMask))
	parts := append(controls, names[targetIdx])

	if _, err := fmt.Fprintf(w, "t%d ", len(parts)); err != nil {
		return err
	}
	for i, p := range parts {
		if i > 0 {
			if _, err := io.WriteString(w, ","); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, p); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "\n")
	return err
}
