// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package interpreter drives a program through the instruction pipeline,
// one clock cycle per Step.
package interpreter

import (
	"log"
	"strconv"
	"strings"

	"github.com/ezrec/pipesim/cpu"
	"github.com/ezrec/pipesim/pipeline"
)

// Interpreter state. Registers + program + pipeline + fetch cursor.
type Interpreter struct {
	Verbose   bool               // If set, enables verbose logging.
	Registers *cpu.Registers     // Register bank.
	Program   *cpu.Program       // Program, once parsed.
	Pipeline  *pipeline.Pipeline // Instruction pipeline.

	source string
	esp    int
	line   int  // Fetch cursor.
	jumped bool // Set if the last cycle took a jump.
	halted bool // Set once the program has ended.
}

// NewInterpreter creates an interpreter for the program source, with the
// initial value of the esp register.
func NewInterpreter(source string, esp int) (in *Interpreter) {
	in = &Interpreter{
		Registers: cpu.NewRegisters(esp),
		Pipeline:  pipeline.NewPipeline(),
		source:    source,
		esp:       esp,
	}

	return
}

// ParseProgram parses the program source. It must be called once before
// stepping.
func (in *Interpreter) ParseProgram() (err error) {
	asm := &cpu.Assembler{Verbose: in.Verbose}
	asm.Predefine("ESP", strconv.Itoa(in.esp))

	prog, err := asm.Parse(strings.NewReader(in.source))
	if err != nil {
		return
	}

	in.Program = prog
	in.Pipeline.Reset()
	in.line = 0
	in.jumped = false
	in.halted = false

	if in.Verbose {
		log.Printf("interpreter: %d instructions, %d tags", prog.Len(), len(prog.Tags))
		for line, inst := range prog.All() {
			for _, tag := range prog.TagsOf(line) {
				log.Printf("interpreter: %v:", tag)
			}
			log.Printf("interpreter: %3d: %v", line, inst)
		}
	}

	return
}

// Line returns the fetch cursor: the index of the next instruction to admit.
func (in *Interpreter) Line() int {
	return in.line
}

// Jumped returns true if the last cycle took a jump.
func (in *Interpreter) Jumped() bool {
	return in.jumped
}

// Halted returns true once the program has ended.
func (in *Interpreter) Halted() bool {
	return in.halted
}

// Cycles returns the number of cycles run.
func (in *Interpreter) Cycles() int {
	return in.Pipeline.Cycles()
}

// Snapshot returns the pipeline snapshot of the last cycle.
func (in *Interpreter) Snapshot() pipeline.Snapshot {
	return in.Pipeline.Snapshot()
}

// History returns the pipeline snapshots of all cycles run.
func (in *Interpreter) History() []pipeline.Snapshot {
	return in.Pipeline.History()
}

// LineNo returns the source line number of the instruction that will be
// executed in the next cycle, or 0 if there is none.
func (in *Interpreter) LineNo() int {
	for _, slot := range in.Pipeline.Slots() {
		if slot.Stage == pipeline.STAGE_EXECUTE_INSTRUCTION {
			return slot.Instruction.LineNo
		}
	}

	return 0
}

// Step performs a single clock cycle.
//
// done is set when the program has ended, either by a 'ret' instruction,
// by running past the last instruction with an empty pipeline, or by a
// runtime error.
func (in *Interpreter) Step() (done bool, err error) {
	if in.Program == nil {
		err = ErrNotReady
		return
	}

	if in.halted {
		done = true
		err = ErrHalted
		return
	}

	in.jumped = false

	// Runtime errors are fatal: the program ends mid-cycle, and later
	// steps return ErrHalted.
	lineno := in.LineNo()
	defer func() {
		if err != nil {
			in.halted = true
			done = true
			err = &ErrRuntime{LineNo: lineno, Err: err}
		}
	}()

	// Add new instruction to pipeline
	if in.line < in.Program.Len() {
		in.Pipeline.Admit(in.Program.Instruction(in.line))
	}

	sig, err := in.Pipeline.Advance(in.Registers)
	if err != nil {
		return
	}

	switch sig.Kind {
	case cpu.SIGNAL_NONE:
		in.line++
	case cpu.SIGNAL_HALT:
		if in.Verbose {
			log.Printf("interpreter: program ended")
		}
		in.halted = true
		done = true
		return
	case cpu.SIGNAL_JUMP:
		var target int
		target, err = in.Program.Line(sig.Tag)
		if err != nil {
			return
		}
		in.Pipeline.Flush()
		in.line = target
		in.jumped = true
		if in.Verbose {
			log.Printf("interpreter: go to line %d (%v)", target, sig.Tag)
		}
	}

	if in.line >= in.Program.Len() && in.Pipeline.Len() == 0 {
		if in.Verbose {
			log.Printf("interpreter: program ended without ret")
		}
		in.halted = true
		done = true
	}

	return
}

// Run steps the program until it ends. If limit is positive, at most
// limit cycles are run before ErrCycleLimit is returned.
func (in *Interpreter) Run(limit int) (err error) {
	for cycles := 0; limit <= 0 || cycles < limit; cycles++ {
		var done bool
		done, err = in.Step()
		if done || err != nil {
			return
		}
	}

	err = ErrCycleLimit
	return
}
