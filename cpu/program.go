package cpu

import (
	"iter"
	"slices"
	"strings"
)

// Instruction is a single decoded instruction of a program.
type Instruction struct {
	Id       int      // Sequence number, in program order.
	LineNo   int      // Source line number.
	Mnemonic string   // Instruction mnemonic.
	Operands []string // Instruction operands.
}

// Opcode returns the opcode of the mnemonic. Unknown mnemonics are OP_NOP.
func (inst *Instruction) Opcode() Opcode {
	op, ok := opcodeMap[inst.Mnemonic]
	if !ok {
		return OP_NOP
	}
	return op
}

func (inst *Instruction) String() string {
	if len(inst.Operands) == 0 {
		return inst.Mnemonic
	}
	return inst.Mnemonic + " " + strings.Join(inst.Operands, ", ")
}

// Program is an assembled program: the instructions in order, and the
// instruction index of each tag.
type Program struct {
	Instructions []Instruction
	Tags         map[string]int
}

// Len returns the number of instructions in the program.
func (prog *Program) Len() int {
	return len(prog.Instructions)
}

// Instruction returns the instruction at a line index.
func (prog *Program) Instruction(line int) *Instruction {
	return &prog.Instructions[line]
}

// Line returns the instruction index a tag points to.
func (prog *Program) Line(tag string) (line int, err error) {
	line, ok := prog.Tags[tag]
	if !ok {
		err = ErrTagUndefined(tag)
	}
	return
}

// TagsOf returns the sorted tag names that point to line.
func (prog *Program) TagsOf(line int) (tags []string) {
	for tag, index := range prog.Tags {
		if index == line {
			tags = append(tags, tag)
		}
	}
	slices.Sort(tags)
	return
}

// All returns an iterator over the line index and instruction of the program.
func (prog *Program) All() iter.Seq2[int, *Instruction] {
	return func(yield func(line int, inst *Instruction) bool) {
		for n := range prog.Instructions {
			if !yield(n, &prog.Instructions[n]) {
				return
			}
		}
	}
}
