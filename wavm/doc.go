// Package wavm defines the machine primitives the binding layer is built
// from: the closed value-type and opcode sets, instructions with their
// 64-bit operand, function signatures, and immutable stub functions.
//
// Nothing in this package executes. Instructions are plain values; the
// interpreter that gives them meaning lives elsewhere. What this package
// does own is the canonical serialization and keccak merkleization of
// instruction sequences, since every stub placed by the binding layer must
// hash identically on every machine that replays the same module.
package wavm
