// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"fmt"
	"iter"
	"strconv"
	"strings"
)

// Register is an index into the register bank.
type Register int

//go:generate go tool stringer -linecomment -type=Register
const (
	REG_EBP   = Register(0) // ebp
	REG_EAX   = Register(1) // eax
	REG_TEMP  = Register(2) // temp
	REG_TEMP2 = Register(3) // temp2
	REG_ESP   = Register(4) // esp
	REG_CMP   = Register(5) // cmp
)

const (
	REG_COUNT = 6 // Number of registers in the bank.
)

// regMap maps register names to their index.
var regMap = func() map[string]Register {
	m := make(map[string]Register, REG_COUNT)
	for reg := range Register(REG_COUNT) {
		m[reg.String()] = reg
	}
	return m
}()

// Registers is the fixed register bank of the machine.
type Registers struct {
	Value [REG_COUNT]int // Register values, indexed by Register.
}

// NewRegisters creates a register bank with all registers zeroed,
// except for esp.
func NewRegisters(esp int) (regs *Registers) {
	regs = &Registers{}
	regs.Value[REG_ESP] = esp
	return
}

// Lookup returns the register index for a register name.
func Lookup(name string) (reg Register, err error) {
	reg, ok := regMap[name]
	if !ok {
		err = ErrRegisterUnknown(name)
	}
	return
}

// Get returns the value of a named register.
func (regs *Registers) Get(name string) (value int, err error) {
	reg, err := Lookup(name)
	if err != nil {
		return
	}

	value = regs.Value[reg]
	return
}

// Set sets the value of a named register.
func (regs *Registers) Set(name string, value int) (err error) {
	reg, err := Lookup(name)
	if err != nil {
		return
	}

	regs.Value[reg] = value
	return
}

// valueOf returns the value of a word, which is either a register
// name or an integer literal.
func (regs *Registers) valueOf(word string) (value int, err error) {
	reg, ok := regMap[word]
	if ok {
		value = regs.Value[reg]
		return
	}

	value, ok = parseLiteral(word)
	if !ok {
		err = ErrRegisterUnknown(word)
	}
	return
}

// parseLiteral parses a signed decimal literal, or a signed hexadecimal
// literal with a 0x prefix. Leading zeros are decimal, never octal.
func parseLiteral(word string) (value int, ok bool) {
	sign, digits := "", word
	if len(digits) > 0 && (digits[0] == '-' || digits[0] == '+') {
		sign, digits = digits[:1], digits[1:]
	}

	base := 10
	if strings.HasPrefix(digits, "0x") || strings.HasPrefix(digits, "0X") {
		base = 16
		digits = digits[2:]
	}

	// No second sign after the prefix.
	if len(digits) == 0 || digits[0] == '-' || digits[0] == '+' {
		return
	}

	v64, err := strconv.ParseInt(sign+digits, base, strconv.IntSize)
	if err != nil {
		return
	}

	return int(v64), true
}

// update applies op to the value of dst.
func (regs *Registers) update(dst string, op func(value int) int) (err error) {
	reg, err := Lookup(dst)
	if err != nil {
		return
	}

	regs.Value[reg] = op(regs.Value[reg])
	return
}

// Move puts a literal into dst, or copies the value of the src register.
func (regs *Registers) Move(dst string, src string) (err error) {
	value, err := regs.valueOf(src)
	if err != nil {
		return
	}

	return regs.Set(dst, value)
}

// Compare stores b - a in the cmp register.
func (regs *Registers) Compare(a string, b string) (err error) {
	va, err := regs.Get(a)
	if err != nil {
		return
	}

	vb, err := regs.valueOf(b)
	if err != nil {
		return
	}

	regs.Value[REG_CMP] = vb - va
	return
}

// Add adds a literal, or the value of the src register, to dst.
func (regs *Registers) Add(dst string, src string) (err error) {
	value, err := regs.valueOf(src)
	if err != nil {
		return
	}

	return regs.update(dst, func(v int) int { return v + value })
}

// Increment adds one to dst.
func (regs *Registers) Increment(dst string) (err error) {
	return regs.update(dst, func(v int) int { return v + 1 })
}

// All returns an iterator over the register names and values, in bank order.
func (regs *Registers) All() iter.Seq2[string, int] {
	return func(yield func(name string, value int) bool) {
		for reg, value := range regs.Value {
			if !yield(Register(reg).String(), value) {
				return
			}
		}
	}
}

// String returns the register bank as a single line.
func (regs *Registers) String() string {
	var fields []string
	for name, value := range regs.All() {
		fields = append(fields, fmt.Sprintf("%v=%d", name, value))
	}
	return strings.Join(fields, " ")
}
