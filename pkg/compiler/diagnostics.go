package compiler

import "fmt"

// Diagnostics collects the error and warning messages of one analysis run in
// the order they are reported. It never fails; callers keep going after
// recording a semantic problem.
type Diagnostics struct {
	errors   []string
	warnings []string
}

func NewDiagnostics() *Diagnostics {
	return &Diagnostics{}
}

// Reset drops everything recorded so far.
func (d *Diagnostics) Reset() {
	d.errors = nil
	d.warnings = nil
}

// Errorf records a semantic error found on line.
func (d *Diagnostics) Errorf(line int, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	d.errors = append(d.errors, fmt.Sprintf("semantic error (line %d): %s", line, msg))
}

// Warnf records a semantic warning found on line.
func (d *Diagnostics) Warnf(line int, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	d.warnings = append(d.warnings, fmt.Sprintf("semantic warning (line %d): %s", line, msg))
}

// Fatal records the lexical or syntax error that stopped the run.
func (d *Diagnostics) Fatal(err error) {
	d.errors = append(d.errors, err.Error())
}

func (d *Diagnostics) HasErrors() bool {
	return len(d.errors) > 0
}

// Errors returns a copy of the recorded errors.
func (d *Diagnostics) Errors() []string {
	return append([]string(nil), d.errors...)
}

// Warnings returns a copy of the recorded warnings.
func (d *Diagnostics) Warnings() []string {
	return append([]string(nil), d.warnings...)
}
