// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package pipeline implements an in-order, six stage instruction pipeline.
//
// One instruction may be admitted per cycle. Every in-flight instruction
// advances exactly one stage per cycle, is executed as it passes through
// the execute stage, and retires after the write stage. There is no
// hazard detection, stalling or forwarding.
package pipeline

import (
	"log"
	"slices"

	"github.com/ezrec/pipesim/cpu"
)

// Slot is an in-flight instruction and its current stage.
type Slot struct {
	Instruction *cpu.Instruction
	Stage       Stage
}

// Snapshot is the instruction id occupying each stage during a cycle,
// or SLOT_EMPTY.
type Snapshot [STAGE_COUNT]int

// EmptySnapshot returns a snapshot with all stages unoccupied.
func EmptySnapshot() (snap Snapshot) {
	for n := range snap {
		snap[n] = SLOT_EMPTY
	}
	return
}

// Pipeline is the in-flight instruction state.
type Pipeline struct {
	Verbose bool // If set, enables verbose logging.

	Retired int // Instructions retired since a reset.
	Flushed int // Instructions flushed since a reset.

	slots    []*Slot    // In-flight slots, oldest first.
	snapshot Snapshot   // Snapshot of the last cycle.
	history  []Snapshot // Snapshots of all cycles since a reset.
}

// NewPipeline creates an empty pipeline.
func NewPipeline() (p *Pipeline) {
	p = &Pipeline{}
	p.Reset()
	return
}

// Reset empties the pipeline, and clears the history and statistics.
func (p *Pipeline) Reset() {
	p.slots = p.slots[:0]
	p.history = p.history[:0]
	p.snapshot = EmptySnapshot()
	p.Retired = 0
	p.Flushed = 0
}

// Admit adds an instruction to the pipeline at the fetch stage.
func (p *Pipeline) Admit(inst *cpu.Instruction) {
	if p.Verbose {
		log.Printf("pipeline: admit %d: %v", inst.Id, inst)
	}

	p.slots = append(p.slots, &Slot{Instruction: inst, Stage: STAGE_FETCH_INSTRUCTION})
}

// Advance runs one clock cycle of the pipeline.
//
// Every slot advances one stage. The slot passing through the execute
// stage is executed against regs, and its signal is returned. The oldest
// slot is retired once it has passed through the write stage.
//
// An execution error aborts the cycle, and is returned.
func (p *Pipeline) Advance(regs *cpu.Registers) (sig cpu.Signal, err error) {
	snap := EmptySnapshot()
	retire := false

	for _, slot := range p.slots {
		id := slot.Instruction.Id

		switch {
		case slot.Stage < STAGE_EXECUTE_INSTRUCTION:
			snap[slot.Stage] = id
			slot.Stage++
		case slot.Stage == STAGE_EXECUTE_INSTRUCTION:
			sig, err = cpu.Execute(slot.Instruction, regs)
			if err != nil {
				return
			}
			if p.Verbose {
				log.Printf("pipeline: execute %d: %v => %v [%v]", id, slot.Instruction, sig, regs)
			}
			snap[slot.Stage] = id
			slot.Stage++
		default:
			snap[STAGE_WRITE_OPERANDS] = id
			retire = true
		}
	}

	if retire {
		if p.Verbose {
			log.Printf("pipeline: retire %d", p.slots[0].Instruction.Id)
		}
		p.slots = p.slots[1:]
		p.Retired++
	}

	p.snapshot = snap
	p.history = append(p.history, snap)

	return
}

// Flush discards every slot that has not reached the write stage, and
// returns the number of discarded slots.
func (p *Pipeline) Flush() (flushed int) {
	before := len(p.slots)

	p.slots = slices.DeleteFunc(p.slots, func(slot *Slot) bool {
		return slot.Stage < STAGE_WRITE_OPERANDS
	})

	flushed = before - len(p.slots)
	p.Flushed += flushed

	if p.Verbose {
		log.Printf("pipeline: flush %d", flushed)
	}

	return
}

// Len returns the number of in-flight slots.
func (p *Pipeline) Len() int {
	return len(p.slots)
}

// Slots returns a copy of the in-flight slots, oldest first.
func (p *Pipeline) Slots() (slots []Slot) {
	for _, slot := range p.slots {
		slots = append(slots, *slot)
	}
	return
}

// Snapshot returns the snapshot of the last cycle.
func (p *Pipeline) Snapshot() Snapshot {
	return p.snapshot
}

// History returns the snapshots of all cycles since a reset.
func (p *Pipeline) History() []Snapshot {
	return slices.Clone(p.history)
}

// Cycles returns the number of cycles since a reset.
func (p *Pipeline) Cycles() int {
	return len(p.history)
}
