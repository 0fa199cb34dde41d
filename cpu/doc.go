// Package cpu implements the register machine and assembler for the
// pipeline simulator.
//
// The machine has a bank of six registers (ebp, eax, temp, temp2, esp and
// cmp) and a tiny instruction set: movl, addl, incl, cmpl, jmp, jle and ret.
// Execute applies one instruction to the register bank, and returns the
// control transfer Signal it requests.
//
// The assembler turns program text into a Program of Instructions and a
// table of tags, supporting compile-time $(...) integer expressions.
package cpu
