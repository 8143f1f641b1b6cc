/*
Package console renders coefficient matrices of families and bases as
fixed-width tables for terminals (for debugging purposes).

Rows are family members, columns are basis indexes. Zero and nonzero
coefficients are colored differently so the support structure of a family
is visible at a glance.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2025, Norbert Pillmayer

Please refer to the License file in the repository root.
*/
package console

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/term"

	"github.com/npillmayer/finbasis"
)

// tracer writes to trace with key 'finbasis'
func tracer() tracing.Trace {
	return tracing.Select("finbasis")
}

// ErrNotFinite signals an attempt to tabulate an infinite basis or family.
var ErrNotFinite = errors.New("console: cannot tabulate an infinite domain")

// Palette maps table roles to colors. A nil color prints plain.
type Palette struct {
	Header  *color.Color
	Zero    *color.Color
	Nonzero *color.Color
}

// NewPalette creates the default palette: dimmed zeros, colored support
// entries.
func NewPalette() *Palette {
	return &Palette{
		Header:  color.New(color.Bold),
		Zero:    color.New(color.FgHiBlack),
		Nonzero: color.New(color.FgBlue),
	}
}

// MatrixWriter formats coefficient tables with a fixed column budget.
type MatrixWriter struct {
	palette *Palette
	columns int // maximum printable columns, including the row label
}

// NewMatrixWriter creates a writer with the given palette (nil for the
// default) and a column budget from the current terminal's properties (if
// stdout is interactive).
func NewMatrixWriter(palette *Palette) *MatrixWriter {
	if palette == nil {
		palette = NewPalette()
	}
	return &MatrixWriter{
		palette: palette,
		columns: widthFromTerminal(),
	}
}

// Table writes the coefficient matrix of family v in basis b.
//
// Both domains must be finite; otherwise ErrNotFinite is returned. Columns
// beyond the width budget are elided with a trailing ellipsis.
func Table[I, K comparable, M, R any](mw *MatrixWriter, w io.Writer, b finbasis.Basis[I, M, R], v finbasis.Family[K, M]) error {
	if !b.Domain().IsFinite() || !v.Domain().IsFinite() {
		return ErrNotFinite
	}
	var cols []I
	for i := range b.Domain().Each() {
		cols = append(cols, i)
	}
	cellw := 8
	budget := mw.columns/cellw - 1
	elided := false
	if budget > 0 && len(cols) > budget {
		cols = cols[:budget]
		elided = true
	}

	mw.cell(w, mw.palette.Header, "")
	for _, i := range cols {
		mw.cell(w, mw.palette.Header, fmt.Sprintf("%v", i))
	}
	if elided {
		io.WriteString(w, " …")
	}
	io.WriteString(w, "\n")

	rng := b.Ring()
	for k := range v.Domain().Each() {
		m := b.Repr(v.At(k))
		mw.cell(w, mw.palette.Header, fmt.Sprintf("%v", k))
		for _, i := range cols {
			c := m.Get(i)
			if rng.Eq(c, rng.Zero()) {
				mw.cell(w, mw.palette.Zero, ".")
			} else {
				mw.cell(w, mw.palette.Nonzero, fmt.Sprintf("%v", c))
			}
		}
		if elided {
			io.WriteString(w, " …")
		}
		io.WriteString(w, "\n")
	}
	return nil
}

// cell prints one fixed-width table cell, right-padded.
func (mw *MatrixWriter) cell(w io.Writer, c *color.Color, s string) {
	if len(s) > 7 {
		s = s[:6] + "…"
	}
	padded := fmt.Sprintf("%-8s", s)
	if c != nil {
		c.Fprint(w, padded)
		return
	}
	io.WriteString(w, padded)
}

// widthFromTerminal checks whether stdout is a terminal, and if so reads
// the terminal's width for the column budget.
func widthFromTerminal() int {
	width := 65
	if term.IsTerminal(int(os.Stdout.Fd())) {
		if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 20 {
			width = w
		}
	}
	tracer().P("format", "console").Infof("setting table width to %d en", width)
	return width
}
