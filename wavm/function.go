package wavm

import "github.com/ethereum/go-ethereum/common"

// Function is a stub: a signature plus an immutable instruction sequence
// and no locals beyond its parameters. Once constructed it is never
// mutated, so it may be read from any number of goroutines.
type Function struct {
	Type FuncType
	Code []Instruction
}

// NewFunction builds a function from a raw instruction sequence. The
// sequence is copied, so the caller's slice stays independent.
func NewFunction(code []Instruction, ty FuncType) Function {
	owned := make([]Instruction, len(code))
	copy(owned, code)
	return Function{Type: ty, Code: owned}
}

// CodeHash merkleizes the function body. Equal bodies hash equally
// regardless of how the function was constructed.
func (f Function) CodeHash() common.Hash {
	leaves := make([]common.Hash, len(f.Code))
	for i, inst := range f.Code {
		leaves[i] = inst.Hash()
	}
	return instructionMerkleRoot(leaves)
}

// FunctionBuilder accumulates instructions one at a time and seals them
// into a Function. Sealing a builder and constructing from the equivalent
// raw sequence produce identical functions.
type FunctionBuilder struct {
	code []Instruction
}

// Add appends an instruction with a zero operand.
func (b *FunctionBuilder) Add(op Opcode) *FunctionBuilder {
	b.code = append(b.code, Simple(op))
	return b
}

// AddWithArg appends an instruction carrying the given operand.
func (b *FunctionBuilder) AddWithArg(op Opcode, arg uint64) *FunctionBuilder {
	b.code = append(b.code, WithArg(op, arg))
	return b
}

// Seal finalizes the accumulated sequence under the given signature.
// The builder may be reused afterwards without affecting sealed functions.
func (b *FunctionBuilder) Seal(ty FuncType) Function {
	return NewFunction(b.code, ty)
}
