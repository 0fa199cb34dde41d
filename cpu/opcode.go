package cpu

// Opcode is the decoded operation of an instruction mnemonic.
type Opcode int

//go:generate go tool stringer -linecomment -type=Opcode
const (
	OP_NOP  = Opcode(0) // nop
	OP_MOVL = Opcode(1) // movl
	OP_ADDL = Opcode(2) // addl
	OP_INCL = Opcode(3) // incl
	OP_CMPL = Opcode(4) // cmpl
	OP_JMP  = Opcode(5) // jmp
	OP_JLE  = Opcode(6) // jle
	OP_RET  = Opcode(7) // ret
)

// opcodeMap maps mnemonics to opcodes.
var opcodeMap = map[string]Opcode{
	"movl": OP_MOVL,
	"addl": OP_ADDL,
	"incl": OP_INCL,
	"cmpl": OP_CMPL,
	"jmp":  OP_JMP,
	"jle":  OP_JLE,
	"ret":  OP_RET,
}

// Operands returns the number of operands the opcode uses.
func (op Opcode) Operands() int {
	switch op {
	case OP_MOVL, OP_ADDL, OP_CMPL:
		return 2
	case OP_INCL, OP_JMP, OP_JLE:
		return 1
	default:
		return 0
	}
}
