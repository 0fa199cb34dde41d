// Package render formats the pipeline and register state as text tables.
package render

import (
	"io"
	"iter"
	"strconv"
	"strings"

	"github.com/ezrec/pipesim/pipeline"
	"github.com/ezrec/pipesim/translate"
)

const (
	COLUMN_WIDTH = 7 // Width of a table column.
)

var f = translate.Fprintf

// Pipeline writes the pipeline matrix: a header of stage names, and one row
// per cycle of the instruction id occupying each stage.
func Pipeline(w io.Writer, history []pipeline.Snapshot) (err error) {
	row := make([]string, 0, pipeline.STAGE_COUNT)
	for _, stage := range pipeline.Stages() {
		row = append(row, stage.String())
	}
	err = line(w, row)
	if err != nil {
		return
	}

	for _, snap := range history {
		row = row[:0]
		for _, id := range snap {
			cell := ""
			if id != pipeline.SLOT_EMPTY {
				cell = strconv.Itoa(id)
			}
			row = append(row, cell)
		}
		err = line(w, row)
		if err != nil {
			return
		}
	}

	return
}

// line writes one row of the pipeline matrix.
func line(w io.Writer, row []string) (err error) {
	_, err = f(w, " ")
	if err != nil {
		return
	}
	for _, cell := range row {
		_, err = f(w, "%7s", cell)
		if err != nil {
			return
		}
	}
	_, err = f(w, "\n")
	return
}

// Registers writes a boxed table of register names and values.
func Registers(w io.Writer, regs iter.Seq2[string, int]) (err error) {
	var names, values []string
	for name, value := range regs {
		names = append(names, name)
		values = append(values, strconv.Itoa(value))
	}

	border := "+" + strings.Repeat("-", len(names)*COLUMN_WIDTH+2) + "+"

	_, err = f(w, "\n%s\n", border)
	if err != nil {
		return
	}

	for _, row := range [][]string{names, values} {
		_, err = f(w, "|")
		if err != nil {
			return
		}
		for _, cell := range row {
			_, err = f(w, "%7s", cell)
			if err != nil {
				return
			}
		}
		_, err = f(w, "  |\n")
		if err != nil {
			return
		}
	}

	_, err = f(w, "%s\n\n", border)
	return
}

// Jump writes the notice of a taken jump.
func Jump(w io.Writer, line int) (err error) {
	_, err = f(w, "==> Go to line: %d\n", line)
	return
}
