package bdf

import (
	"bufio"
	"io"
	"strconv"
	"strings"
)

// maxLineLength is the longest input line we accept. BDF lines are short,
// except for bitmap rows of very wide glyphs and long COMMENT lines.
const maxLineLength = 1 << 20

// lineScanner splits the input into lines of whitespace separated fields,
// skipping empty lines. It counts lines and allows to push back one line.
type lineScanner struct {
	sc     *bufio.Scanner
	line   int      // current line number, 1-based
	fields []string // fields of the current line
	rest   string   // current line without the directive, trimmed
	unread bool
}

func newLineScanner(r io.Reader) *lineScanner {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 4096), maxLineLength)
	return &lineScanner{sc: sc}
}

// next advances to the next non-empty line.
func (ls *lineScanner) next() bool {
	if ls.unread {
		ls.unread = false
		return true
	}
	for ls.sc.Scan() {
		ls.line++
		text := ls.sc.Text()
		ls.fields = strings.Fields(text)
		if len(ls.fields) == 0 {
			continue
		}
		ls.rest = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(text), ls.fields[0]))
		return true
	}
	return false
}

// pushBack makes the next call to next return the current line again.
func (ls *lineScanner) pushBack() {
	ls.unread = true
}

// directive is the upper-cased first field of the current line.
func (ls *lineScanner) directive() string {
	return strings.ToUpper(ls.fields[0])
}

func (ls *lineScanner) err() error {
	return ls.sc.Err()
}

// atoiArgs converts the first n arguments of a directive to integers.
func atoiArgs(args []string, n int) ([]int, bool) {
	if len(args) < n {
		return nil, false
	}
	v := make([]int, n)
	for i := 0; i < n; i++ {
		x, err := strconv.Atoi(args[i])
		if err != nil {
			return nil, false
		}
		v[i] = x
	}
	return v, true
}
