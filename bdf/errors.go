package bdf

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingHeader indicates that the font bounding box or the glyph count
	// is missing or not positive.
	ErrMissingHeader = errors.New("bdf: font bounding box or glyph count missing")
	// ErrMissingWidth indicates a bitmap whose device width is not known.
	ErrMissingWidth = errors.New("bdf: character width not specified")
	// ErrMalformedRow indicates a bitmap row which is not an even number of
	// hex digits.
	ErrMalformedRow = errors.New("bdf: malformed bitmap row")
	// ErrGlyphCountExceeded indicates more glyphs than declared by CHARS.
	ErrGlyphCountExceeded = errors.New("bdf: too many bitmaps for characters")
)

// ErrorSeverity represents the severity level of a parsing issue.
type ErrorSeverity int

const (
	// SeverityCritical aborts processing of the font.
	SeverityCritical ErrorSeverity = iota
	// SeverityMajor affects a single glyph, which is still processed.
	SeverityMajor
	// SeverityMinor indicates an issue which does not change the output,
	// or changes a glyph's position only.
	SeverityMinor
)

// String returns a human-readable representation of the error severity.
func (s ErrorSeverity) String() string {
	switch s {
	case SeverityCritical:
		return "CRITICAL"
	case SeverityMajor:
		return "MAJOR"
	case SeverityMinor:
		return "MINOR"
	default:
		return "UNKNOWN"
	}
}

// ParseError represents a fatal error encountered while reading a BDF font.
// It wraps one of the package's sentinel errors, so clients may test for the
// kind of error with errors.Is.
type ParseError struct {
	Line     int           // input line number, 1-based (0 if unknown)
	Glyph    string        // name of the glyph being read, if any
	Issue    string        // human-readable description
	Severity ErrorSeverity // severity level
	Err      error         // sentinel error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	where := ""
	if e.Line > 0 {
		where = fmt.Sprintf(" at line %d", e.Line)
	}
	if e.Glyph != "" {
		where += fmt.Sprintf(" (glyph %s)", e.Glyph)
	}
	return fmt.Sprintf("[%s] %v%s: %s", e.Severity, e.Err, where, e.Issue)
}

// Unwrap returns the sentinel error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Warning represents a non-fatal issue encountered while reading or
// converting a font.
type Warning struct {
	Line     int           // input line number, 1-based
	Glyph    string        // name of the glyph being read, if any
	Issue    string        // human-readable description
	Severity ErrorSeverity // SeverityMajor or SeverityMinor
}

// String returns a human-readable representation of the warning.
func (w Warning) String() string {
	if w.Glyph != "" {
		return fmt.Sprintf("[%s] line %d (glyph %s): %s", w.Severity, w.Line, w.Glyph, w.Issue)
	}
	return fmt.Sprintf("[%s] line %d: %s", w.Severity, w.Line, w.Issue)
}

// warningCollector accumulates warnings during parsing.
type warningCollector struct {
	warnings []Warning
}

// addWarning records and traces a warning of major severity.
func (wc *warningCollector) addWarning(line int, glyph string, format string, args ...any) {
	wc.add(SeverityMajor, line, glyph, format, args...)
}

// addMinor records and traces a warning of minor severity.
func (wc *warningCollector) addMinor(line int, glyph string, format string, args ...any) {
	wc.add(SeverityMinor, line, glyph, format, args...)
}

func (wc *warningCollector) add(sev ErrorSeverity, line int, glyph string, format string, args ...any) {
	w := Warning{Line: line, Glyph: glyph, Issue: fmt.Sprintf(format, args...), Severity: sev}
	tracer().Infof("%s", w)
	wc.warnings = append(wc.warnings, w)
}
