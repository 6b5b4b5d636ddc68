package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// Chain returns one message per level of err's cause chain. A wrapper's
// message has its cause's text trimmed off so each level reads on its own.
func Chain(err error) []string {
	var msgs []string
	for e := err; e != nil; e = errors.Unwrap(e) {
		msg := e.Error()
		if cause := errors.Unwrap(e); cause != nil {
			msg = strings.TrimSuffix(msg, ": "+cause.Error())
		}
		msgs = append(msgs, msg)
	}
	return msgs
}

// Report writes err as "error: ..." followed by one "caused by: ..." line
// per cause.
func Report(w io.Writer, err error) {
	for i, msg := range Chain(err) {
		if i == 0 {
			fmt.Fprintf(w, "error: %s\n", msg)
			continue
		}
		fmt.Fprintf(w, "caused by: %s\n", msg)
	}
}
