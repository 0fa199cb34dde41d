package cpu

// SignalKind is the kind of control transfer requested by an instruction.
type SignalKind int

//go:generate go tool stringer -linecomment -type=SignalKind
const (
	SIGNAL_NONE = SignalKind(0) // none
	SIGNAL_JUMP = SignalKind(1) // jump
	SIGNAL_HALT = SignalKind(2) // halt
)

// Signal is the control transfer result of executing an instruction.
type Signal struct {
	Kind SignalKind
	Tag  string // Jump target, for SIGNAL_JUMP.
}

func (sig Signal) String() string {
	if sig.Kind == SIGNAL_JUMP {
		return sig.Kind.String() + " " + sig.Tag
	}
	return sig.Kind.String()
}

// Jump returns a signal to jump to a tag.
func Jump(tag string) Signal {
	return Signal{Kind: SIGNAL_JUMP, Tag: tag}
}

// Halt returns a signal to end the program.
func Halt() Signal {
	return Signal{Kind: SIGNAL_HALT}
}

// Execute applies the side effect of an instruction to the register bank,
// and returns the resulting control transfer signal.
func Execute(inst *Instruction, regs *Registers) (sig Signal, err error) {
	op := inst.Opcode()
	if len(inst.Operands) < op.Operands() {
		err = ErrOperandMissing
		return
	}

	args := inst.Operands

	switch op {
	case OP_MOVL:
		err = regs.Move(args[0], args[1])
	case OP_ADDL:
		err = regs.Add(args[0], args[1])
	case OP_INCL:
		err = regs.Increment(args[0])
	case OP_CMPL:
		err = regs.Compare(args[0], args[1])
	case OP_JMP:
		sig = Jump(args[0])
	case OP_JLE:
		if regs.Value[REG_CMP] >= 0 {
			sig = Jump(args[0])
		}
	case OP_RET:
		sig = Halt()
	default:
		// no-op
	}

	return
}
