package output

import (
	"fmt"
	"io"
)

// ListsCompact writes each encoded task on its own line: pending first, then
// a blank line and the history when it is not empty.
func ListsCompact(w io.Writer, l Lists) {
	for _, e := range l.Pending {
		fmt.Fprintln(w, e)
	}
	if len(l.Completed) == 0 {
		return
	}
	fmt.Fprintln(w)
	for _, e := range l.Completed {
		fmt.Fprintln(w, e)
	}
}
