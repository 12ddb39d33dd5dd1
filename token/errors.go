package token

import (
	"fmt"
	"io"
	"sort"
)

// Error is a single structured lexical error or warning: a position and a
// message. Warning reports whether the condition was non-fatal — over-long
// identifiers, macro names and numbers are warnings, everything else is fatal.
type Error struct {
	Pos     Position
	Msg     string
	Warning bool
}

func (e Error) Error() string {
	if e.Pos.Filename != "" || e.Pos.IsValid() {
		return e.Pos.String() + ": " + e.Msg
	}
	return e.Msg
}

// ErrorList is a sortable list of *Error. A Scanner accumulates one of these
// regardless of whether an ErrorHandler callback was also supplied.
type ErrorList []*Error

// Add appends an error for pos with the given message.
func (l *ErrorList) Add(pos Position, msg string) {
	*l = append(*l, &Error{Pos: pos, Msg: msg})
}

// AddWarning appends a non-fatal warning for pos with the given message.
func (l *ErrorList) AddWarning(pos Position, msg string) {
	*l = append(*l, &Error{Pos: pos, Msg: msg, Warning: true})
}

func (l ErrorList) Len() int      { return len(l) }
func (l ErrorList) Swap(i, j int) { l[i], l[j] = l[j], l[i] }

func (l ErrorList) Less(i, j int) bool {
	e := &l[i].Pos
	f := &l[j].Pos
	if e.Filename != f.Filename {
		return e.Filename < f.Filename
	}
	if e.Line != f.Line {
		return e.Line < f.Line
	}
	if e.Column != f.Column {
		return e.Column < f.Column
	}
	return l[i].Msg < l[j].Msg
}

// Sort sorts an ErrorList in source order.
func (l ErrorList) Sort() { sort.Sort(l) }

// RemoveMultiples sorts an ErrorList and removes all but the first error per
// source line, following go/scanner's de-duplication idiom: a cascading lex
// failure on one line tends to produce many low-value follow-on errors on
// that same line.
func (l *ErrorList) RemoveMultiples() {
	l.Sort()
	var last Position
	i := 0
	for _, e := range *l {
		if e.Pos.Filename != last.Filename || e.Pos.Line != last.Line {
			last = e.Pos
			(*l)[i] = e
			i++
		}
	}
	*l = (*l)[:i]
}

// Error implements the error interface: the first error with its position,
// followed by a count of the remaining errors when there is more than one.
func (l ErrorList) Error() string {
	switch len(l) {
	case 0:
		return "no errors"
	case 1:
		return l[0].Error()
	}
	return fmt.Sprintf("%s (and %d more errors)", l[0].Error(), len(l)-1)
}

// Err returns l as an error, or nil if l is empty.
func (l ErrorList) Err() error {
	if len(l) == 0 {
		return nil
	}
	return l
}

// PrintError writes each error in err, one per line, to w. err may be an
// ErrorList, a single error, or nil.
func PrintError(w io.Writer, err error) {
	if list, ok := err.(ErrorList); ok {
		for _, e := range list {
			fmt.Fprintf(w, "%s\n", e)
		}
		return
	}
	if err != nil {
		fmt.Fprintf(w, "%s\n", err)
	}
}
