// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"maps"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Assembler parses program text into a Program.
//
// Lines starting with a tab or a space are instructions, all other
// lines are tags. An instruction line is a mnemonic followed by its
// operands, separated by commas or whitespace, with an optional
// '//' comment. A tag line is a name with a trailing ':'.
type Assembler struct {
	Verbose      bool           // If set, verbosely logs the assembler actions.
	Instructions []Instruction  // List of parsed instructions.
	Tags         map[string]int // Map of tags to instruction indexes.

	predefine map[string]string // Predefines for $() expressions.
}

// Predefine defines a new integer name for $() expressions, or redefines
// an existing one.
func (asm *Assembler) Predefine(name string, value string) {
	if asm.predefine == nil {
		asm.predefine = map[string]string{name: value}
	} else {
		asm.predefine[name] = value
	}
}

var (
	reParen     = regexp.MustCompile(`\$\([^\$]*\)`)
	instCleaner = strings.NewReplacer("\t", " ", ",", " ")
	tagCleaner  = strings.NewReplacer(":", "", "\t", "", " ", "")
)

// parenEval does compile-time $(...) evaluations
func (asm *Assembler) parenEval(expr string, lineno int) (value int, err error) {
	thread := starlark.Thread{Name: "expr"}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{
		"LINENO": starlark.MakeInt(lineno),
	}
	for key, str := range asm.predefine {
		v64, perr := strconv.ParseInt(str, 0, strconv.IntSize)
		if perr != nil {
			// Ignore non-integer predefines.
			continue
		}
		pred[key] = starlark.MakeInt64(v64)
	}
	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		if asm.Verbose {
			log.Printf("asm: $(%v): %v", expr, err)
		}
		err = ErrParseExpression(expr)
		return
	}
	st_int, ok := dict["rc"].(starlark.Int)
	if !ok {
		err = ErrExpressionNotInt
		return
	}
	st_int64, ok := st_int.Int64()
	if !ok {
		err = ErrExpressionNotInt
		return
	}
	value = int(st_int64)
	return
}

// expand replaces all $() expressions in a line with their values.
func (asm *Assembler) expand(line string, lineno int) (expanded string, err error) {
	expanded = reParen.ReplaceAllStringFunc(line, func(str string) string {
		value, _err := asm.parenEval(str[2:len(str)-1], lineno)
		if _err != nil {
			err = _err
		}
		return fmt.Sprintf("%d", value)
	})
	return
}

// parseInstruction parses an instruction line.
func (asm *Assembler) parseInstruction(line string, lineno int) (err error) {
	line, _, _ = strings.Cut(line, "//")

	line, err = asm.expand(line, lineno)
	if err != nil {
		return
	}

	words := strings.Fields(instCleaner.Replace(line))

	// no-op
	if len(words) == 0 {
		return
	}

	inst := Instruction{
		Id:       len(asm.Instructions),
		LineNo:   lineno,
		Mnemonic: words[0],
		Operands: words[1:],
	}

	if len(inst.Operands) < inst.Opcode().Operands() {
		err = ErrOperandMissing
		return
	}

	asm.Instructions = append(asm.Instructions, inst)

	return
}

// parseTag parses a tag line.
func (asm *Assembler) parseTag(line string) (err error) {
	line, _, _ = strings.Cut(line, "//")

	tag := tagCleaner.Replace(line)
	if len(tag) == 0 {
		return
	}

	_, ok := asm.Tags[tag]
	if ok {
		err = ErrTagDuplicate(tag)
		return
	}

	asm.Tags[tag] = len(asm.Instructions)

	return
}

// Parse parses an input stream into a Program.
func (asm *Assembler) Parse(input io.Reader) (prog *Program, err error) {
	scanner := bufio.NewScanner(input)

	var line string
	var lineno int

	defer func() {
		if err != nil {
			err = &ErrSyntax{LineNo: lineno, Line: line, Err: err}
		}
	}()

	asm.Instructions = asm.Instructions[:0]
	if asm.Tags == nil {
		asm.Tags = make(map[string]int, 16)
	}
	clear(asm.Tags)

	for scanner.Scan() {
		line = scanner.Text()
		lineno += 1

		if asm.Verbose {
			log.Printf("%v: %v\n", lineno, line)
		}

		if len(line) == 0 {
			continue
		}

		switch line[0] {
		case '\t', ' ':
			err = asm.parseInstruction(line, lineno)
		default:
			err = asm.parseTag(line)
		}
		if err != nil {
			return
		}
	}

	err = scanner.Err()
	if err != nil {
		return
	}

	prog = &Program{
		Instructions: slices.Clone(asm.Instructions),
		Tags:         maps.Clone(asm.Tags),
	}

	return
}
