package rom

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncode(t *testing.T) {
	assert := assert.New(t)

	tests := []struct {
		insn Instruction
		word Word
		str  string
	}{
		{Finish{}, 0x00_0000_0000, "finish"},
		{SetRegister{REG_INCREMENT, 4}, 0x10_0000_0004, "set.increment 0x4"},
		{SetRegister{REG_ADDRESS, 0x4000c}, 0x11_0004_000c, "set.address 0x4000c"},
		{SetRegister{REG_REPEAT, 0xffffffff}, 0x13_ffff_ffff, "set.repeat 0xffffffff"},
		{Request{REQ_WRITE_ACC, 162}, 0x22_0000_00a2, "request.write_acc 0xa2"},
		{Request{REQ_WRITE_ACC_INC, 1}, 0x25_0000_0001, "request.write_acc_inc 0x1"},
		{Alu{ALU_OP_ADD, 1}, 0x30_0000_0001, "alu.add 0x1"},
		{Alu{ALU_OP_BIC, 0x80}, 0x35_0000_0080, "alu.bic 0x80"},
		{Wait{1 << 24}, 0x40_0100_0000, "wait 16777216"},
		{Branch{BRANCH_ALWAYS, 0, 5}, 0x50_0000_0005, "branch.branch 0x0 0005"},
		{Branch{BRANCH_LOOP, 0xffff, 0xffff}, 0x53_ffff_ffff, "branch.loop 0xffff ffff"},
	}

	for _, test := range tests {
		word, err := Encode(test.insn)
		assert.NoError(err, test.str)
		assert.Equal(test.word, word, test.str)
		assert.Equal(test.str, test.insn.String())
		assert.Equal(test.insn.Class(), word.Class(), test.str)

		insn, err := Decode(word)
		assert.NoError(err, test.str)
		assert.Equal(test.insn, insn, test.str)
	}
}

func TestEncodeInjective(t *testing.T) {
	assert := assert.New(t)

	seen := map[Word]Instruction{}
	add := func(insn Instruction) {
		word, err := Encode(insn)
		assert.NoError(err)
		prior, dup := seen[word]
		assert.False(dup, "%v and %v share %#x", prior, insn, word)
		seen[word] = insn
	}

	values := []uint64{0, 1, 0xffff, 0x10000, 0xffffffff}
	add(Finish{})
	for reg := REG_INCREMENT; reg <= REG_REPEAT; reg++ {
		for _, v := range values {
			add(SetRegister{reg, v})
		}
	}
	for kind := REQ_READ; kind <= REQ_WRITE_ACC_INC; kind++ {
		for _, v := range values {
			add(Request{kind, v})
		}
	}
	for op := ALU_OP_ADD; op <= ALU_OP_BIC; op++ {
		for _, v := range values {
			add(Alu{op, v})
		}
	}
	for _, v := range values {
		add(Wait{v})
	}
	for kind := BRANCH_ALWAYS; kind <= BRANCH_LOOP; kind++ {
		for _, operand := range []uint64{0, 1, 0xffff} {
			for _, target := range []uint64{0, 1, 0xffff} {
				add(Branch{kind, operand, target})
			}
		}
	}
}

func TestEncodeOverflow(t *testing.T) {
	assert := assert.New(t)

	tests := []struct {
		insn  Instruction
		field Field
		width uint
	}{
		{SetRegister{REG_ADDRESS, 0x1_0000_0000}, FIELD_IMMEDIATE, 32},
		{Request{REQ_READ, 0x1_0000_0000}, FIELD_IMMEDIATE, 32},
		{Alu{ALU_OP_SUB, 0x1_0000_0000}, FIELD_IMMEDIATE, 32},
		{Wait{0x1_0000_0000}, FIELD_CYCLES, 32},
		{Branch{BRANCH_EQ, 0x10000, 0}, FIELD_OPERAND, 16},
		{Branch{BRANCH_EQ, 0, 0x10000}, FIELD_TARGET, 16},
	}

	for _, test := range tests {
		_, err := Encode(test.insn)
		assert.ErrorIs(err, ErrOperandOverflow, test.insn.String())
		var eo ErrOverflow
		if assert.True(errors.As(err, &eo)) {
			assert.Equal(test.field, eo.Field)
			assert.Equal(test.width, eo.Width)
		}
	}
}

func TestEncodeUnknownKind(t *testing.T) {
	assert := assert.New(t)

	_, err := Encode(SetRegister{Register(9), 0})
	assert.ErrorIs(err, ErrUnknownKind)

	_, err = Encode(Branch{Kind: BranchKind(-1)})
	assert.ErrorIs(err, ErrUnknownKind)

	_, err = Encode(nil)
	assert.ErrorIs(err, ErrInstructionInvalid)
}

func TestDecodeInvalid(t *testing.T) {
	assert := assert.New(t)

	words := []Word{
		0x60_0000_0000,   // class 6
		0xf0_0000_0000,   // class 15
		0x00_0000_0001,   // finish with operand bits
		0x41_0000_0000,   // wait with kind bits
		0x19_0000_0000,   // set register 9
		0x1_00_0000_0000, // above the word
	}

	for _, word := range words {
		insn, err := Decode(word)
		assert.ErrorIs(err, ErrDecode, "%#x", uint64(word))
		assert.Nil(insn)
	}

	_, err := Decode(0x60_0000_0000)
	assert.ErrorContains(err, "0x6000000000")
	_, err = Decode(0x00_0000_0001)
	assert.ErrorContains(err, "0x0000000001")
}

func TestMake(t *testing.T) {
	assert := assert.New(t)

	set, err := MakeSet("address", 0x40008)
	assert.NoError(err)
	assert.Equal(SetRegister{REG_ADDRESS, 0x40008}, set)

	req, err := MakeRequest("write_arg", 162)
	assert.NoError(err)
	assert.Equal(Request{REQ_WRITE_ARG, 162}, req)

	alu, err := MakeAlu("add", 1)
	assert.NoError(err)
	assert.Equal(Alu{ALU_OP_ADD, 1}, alu)

	wait, err := MakeWait(1 << 24)
	assert.NoError(err)
	assert.Equal(Wait{1 << 24}, wait)

	branch, err := MakeBranch("branch", 0)
	assert.NoError(err)
	assert.Equal(Branch{Kind: BRANCH_ALWAYS}, branch)

	assert.Equal(Finish{}, MakeFinish())
}

func TestMakeLimits(t *testing.T) {
	assert := assert.New(t)

	_, err := MakeSet("accumulator", 0xffffffff)
	assert.NoError(err)
	_, err = MakeSet("accumulator", 0x100000000)
	assert.ErrorIs(err, ErrOperandOverflow)

	_, err = MakeRequest("read", 0xffffffff)
	assert.NoError(err)
	_, err = MakeRequest("read", 0x100000000)
	assert.ErrorIs(err, ErrOperandOverflow)

	_, err = MakeAlu("xor", 0xffffffff)
	assert.NoError(err)
	_, err = MakeAlu("xor", 0x100000000)
	assert.ErrorIs(err, ErrOperandOverflow)

	_, err = MakeWait(0xffffffff)
	assert.NoError(err)
	_, err = MakeWait(0x100000000)
	assert.ErrorIs(err, ErrOperandOverflow)

	_, err = MakeBranch("bne", 0xffff)
	assert.NoError(err)
	_, err = MakeBranch("bne", 0x10000)
	assert.ErrorIs(err, ErrOperandOverflow)
}

func TestMakeUnknownKind(t *testing.T) {
	assert := assert.New(t)

	_, err := MakeSet("pc", 0)
	assert.ErrorIs(err, ErrUnknownKind)
	_, err = MakeRequest("write", 0)
	assert.ErrorIs(err, ErrUnknownKind)
	_, err = MakeAlu("mul", 0)
	assert.ErrorIs(err, ErrUnknownKind)
	_, err = MakeBranch("bgt", 0)
	assert.ErrorIs(err, ErrUnknownKind)
}
