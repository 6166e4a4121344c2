package truthtable

import (
	"fmt"
	"io"
	"strconv"

	"github.com/revsynth/revsynth/word"
)

// Write emits table (a 2^n-entry slice, n input bits and m output bits) as
// an NxMxB document to w, using base for both sides of every row.
func Write(w io.Writer, table []word.Word, n, m, base int) error {
	if _, err := fmt.Fprintf(w, "%dx%dx%d\n", n, m, base); err != nil {
		return err
	}
	for x, y := range table {
		if y == word.Undefined {
			continue
		}
		left := strconv.FormatUint(uint64(x), base)
		right := strconv.FormatUint(uint64(y), base)
		if _, err := fmt.Fprintf(w, "%s=>%s\n", left, right); err != nil {
			return err
		}
	}
	return nil
}
