package client

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

var (
	ErrUsage          = errors.New("usage error")
	ErrUnknownCommand = errors.New("unknown command")
)

// PrintError writes err as one red line.
func PrintError(w io.Writer, err error) {
	if err == nil {
		return
	}
	_, _ = fmt.Fprintln(w, errorStyle.Render("error: "+humanizeError(err)))
}

func humanizeError(err error) string {
	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") {
		return "network is unreachable or the server is down (" + err.Error() + ")"
	}

	return err.Error()
}
