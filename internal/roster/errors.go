package roster

import "fmt"

// UsageError reports wrong command-line arguments. Nothing is written to
// standard output when it occurs.
type UsageError struct {
	Usage string
	Msg   string
}

func (e *UsageError) Error() string {
	if e.Msg == "" {
		return "usage: " + e.Usage
	}
	return e.Msg + "\nusage: " + e.Usage
}

// FormatError reports a spreadsheet that lacks the expected structure after
// the preamble skip.
type FormatError struct {
	Path string
	Msg  string
	Err  error
}

func (e *FormatError) Error() string {
	msg := e.Msg
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	if e.Path != "" {
		return fmt.Sprintf("roster format: %s: %s", e.Path, msg)
	}
	return "roster format: " + msg
}

func (e *FormatError) Unwrap() error { return e.Err }

// ValidationError reports a date column whose month abbreviation is not
// recognized. Only raised in strict mode.
type ValidationError struct {
	Column string
	Msg    string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("roster validation: column %q: %s", e.Column, e.Msg)
}
