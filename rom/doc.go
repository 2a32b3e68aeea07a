// Package rom implements the instruction model, encoder and assembler for
// the APB sequencer ROM.
//
// Every instruction occupies one 40-bit word. The top four bits hold the
// opcode class; the remaining fields are laid out per class by the layout
// table (see Layout). Branch targets are absolute 16-bit ROM addresses.
//
//	bits     39..36  35..32  31..16            15..0
//	finish   0       0       0                 0
//	set      1       reg     immediate[31:16]  immediate[15:0]
//	request  2       kind    immediate[31:16]  immediate[15:0]
//	alu      3       op      operand[31:16]    operand[15:0]
//	wait     4       0       cycles[31:16]     cycles[15:0]
//	branch   5       kind    operand           target
//
// Programs are authored with a Builder, then compiled by an Assembler in two
// passes: address assignment with label collection, then branch linking and
// operand validation.
package rom
