package wavm

import (
	"encoding/binary"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

// Instruction is one primitive operation plus its optional 64-bit operand.
// Instructions are plain values; an instruction with no operand carries
// zero, which serializes identically to an explicit zero operand.
type Instruction struct {
	Opcode Opcode
	Arg    uint64
}

// Simple builds an instruction with a zero operand.
func Simple(op Opcode) Instruction {
	return Instruction{Opcode: op}
}

// WithArg builds an instruction carrying the given operand.
func WithArg(op Opcode, arg uint64) Instruction {
	return Instruction{Opcode: op, Arg: arg}
}

// packedLen is the proof-format size of one instruction: a 2-byte
// big-endian opcode followed by the operand widened to 32 bytes.
const packedLen = 34

// Pack serializes the instruction in the proof format.
func (i Instruction) Pack() [packedLen]byte {
	var out [packedLen]byte
	binary.BigEndian.PutUint16(out[:2], uint16(i.Opcode))
	binary.BigEndian.PutUint64(out[packedLen-8:], i.Arg)
	return out
}

// Hash returns the instruction's leaf hash as used by function
// merkleization.
func (i Instruction) Hash() common.Hash {
	packed := i.Pack()
	return crypto.Keccak256Hash([]byte("Instruction:"), packed[:])
}

func (i Instruction) String() string {
	if i.Arg == 0 {
		return fmt.Sprintf("0x%04x", uint16(i.Opcode))
	}
	return fmt.Sprintf("0x%04x(%d)", uint16(i.Opcode), i.Arg)
}
