package truthtable

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/revsynth/revsynth/word"
)

// Parse reads an NxMxB document from r. It returns a table of length 2^n
// (one entry per input value), the input bit count n and output bit count
// m. Rows the document omits are left as word.Undefined.
func Parse(r io.Reader) (table []word.Word, n, m int, err error) {
	scanner := bufio.NewScanner(r)

	if !scanner.Scan() {
		return nil, 0, 0, fmt.Errorf("truthtable: empty input: %w", ErrHeader)
	}
	n, m, base, err := parseHeader(scanner.Text())
	if err != nil {
		return nil, 0, 0, err
	}

	size := 1 << uint(n)
	table = make([]word.Word, size)
	for i := range table {
		table[i] = word.Undefined
	}

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		x, y, err := parseRow(line, base, n, m)
		if err != nil {
			return nil, 0, 0, err
		}
		if table[x] != word.Undefined {
			return nil, 0, 0, fmt.Errorf("truthtable: x=%d: %w", x, ErrDuplicateRow)
		}
		table[x] = y
	}
	if err := scanner.Err(); err != nil {
		return nil, 0, 0, err
	}

	return table, n, m, nil
}

// parseHeader parses a line of the form "NxMxB".
func parseHeader(line string) (n, m, base int, err error) {
	parts := strings.Split(strings.TrimSpace(line), "x")
	if len(parts) != 3 {
		return 0, 0, 0, fmt.Errorf("truthtable: %q: %w", line, ErrHeader)
	}
	n, err1 := strconv.Atoi(parts[0])
	m, err2 := strconv.Atoi(parts[1])
	base, err3 := strconv.Atoi(parts[2])
	if err1 != nil || err2 != nil || err3 != nil || n <= 0 || m <= 0 || m > n || base < 2 {
		return 0, 0, 0, fmt.Errorf("truthtable: %q: %w", line, ErrHeader)
	}
	return n, m, base, nil
}

// parseRow parses an "x=>y" line in the given base.
func parseRow(line string, base, n, m int) (x, y word.Word, err error) {
	pos := strings.Index(line, "=>")
	if pos < 0 {
		return 0, 0, fmt.Errorf("truthtable: %q: %w", line, ErrRow)
	}
	left := strings.TrimSpace(line[:pos])
	right := strings.TrimSpace(line[pos+2:])

	xi, errX := strconv.ParseUint(left, base, 64)
	yi, errY := strconv.ParseUint(right, base, 64)
	if errX != nil || errY != nil {
		return 0, 0, fmt.Errorf("truthtable: %q: %w", line, ErrRow)
	}

	maxInput := uint64(1) << uint(n)
	maxOutput := uint64(1) << uint(m)
	if xi >= maxInput || yi >= maxOutput {
		return 0, 0, fmt.Errorf("truthtable: %q: value out of range: %w", line, ErrRow)
	}

	return word.Word(xi), word.Word(yi), nil
}
