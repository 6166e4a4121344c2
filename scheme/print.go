package scheme

import (
	"strings"

	"github.com/revsynth/revsynth/gate"
)

// Format renders s as an ASCII circuit diagram, one line per wire, reading
// left to right in gate order. A control line shows "o" for an uninverted
// control and "x" for an inverted one; the target line shows "+" (the
// usual generalized-Toffoli target marker); every other line shows "-" for
// that gate's column.
func Format(s gate.Scheme) string {
	if len(s) == 0 {
		return ""
	}

	n := 0
	for _, e := range s {
		if e.N > n {
			n = e.N
		}
	}

	rows := make([][]byte, n)
	for i := range rows {
		rows[i] = make([]byte, len(s))
	}

	for col, e := range s {
		for line := 0; line < n; line++ {
			bit := uint(1) << uint(line)
			switch {
			case e.TargetMask&bit != 0:
				rows[line][col] = '+'
			case e.ControlMask&bit != 0 && e.InversionMask&bit != 0:
				rows[line][col] = 'x'
			case e.ControlMask&bit != 0:
				rows[line][col] = 'o'
			default:
				rows[line][col] = '-'
			}
		}
	}

	var b strings.Builder
	for line := n - 1; line >= 0; line-- {
		b.Write(rows[line])
		if line > 0 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}
