package wavm

// Opcode identifies one primitive machine operation. Values below 0x8000
// follow the WebAssembly binary opcode numbering; values at 0x8000 and
// above are machine extensions. Both halves are fixed by the on-chain
// one-step-proof encoding.
type Opcode uint16

// Control and variable access opcodes (WebAssembly numbering).
const (
	OpUnreachable Opcode = 0x00
	OpNop         Opcode = 0x01
	OpReturn      Opcode = 0x0F
	OpCall        Opcode = 0x10

	OpDrop   Opcode = 0x1A
	OpSelect Opcode = 0x1B

	OpLocalGet  Opcode = 0x20
	OpLocalSet  Opcode = 0x21
	OpGlobalGet Opcode = 0x23
	OpGlobalSet Opcode = 0x24
)

// Memory access opcodes (WebAssembly numbering). The operand's low bits
// carry the constant offset; width and signedness are in the opcode itself.
const (
	OpI32Load    Opcode = 0x28
	OpI64Load    Opcode = 0x29
	OpF32Load    Opcode = 0x2A
	OpF64Load    Opcode = 0x2B
	OpI32Load8S  Opcode = 0x2C
	OpI32Load8U  Opcode = 0x2D
	OpI32Load16S Opcode = 0x2E
	OpI32Load16U Opcode = 0x2F
	OpI64Load8S  Opcode = 0x30
	OpI64Load8U  Opcode = 0x31
	OpI64Load16S Opcode = 0x32
	OpI64Load16U Opcode = 0x33
	OpI64Load32S Opcode = 0x34
	OpI64Load32U Opcode = 0x35

	OpI32Store   Opcode = 0x36
	OpI64Store   Opcode = 0x37
	OpF32Store   Opcode = 0x38
	OpF64Store   Opcode = 0x39
	OpI32Store8  Opcode = 0x3A
	OpI32Store16 Opcode = 0x3B
	OpI64Store8  Opcode = 0x3C
	OpI64Store16 Opcode = 0x3D
	OpI64Store32 Opcode = 0x3E

	OpI32Const Opcode = 0x41
	OpI64Const Opcode = 0x42
)

// Machine extension opcodes. These never appear in guest code; only the
// binding layer and the interpreter's lowering passes emit them.
const (
	OpInitFrame                Opcode = 0x8002
	OpArbitraryJump            Opcode = 0x8003
	OpArbitraryJumpIf          Opcode = 0x8004
	OpMoveFromStackToInternal  Opcode = 0x8005
	OpMoveFromInternalToStack  Opcode = 0x8006
	OpDup                      Opcode = 0x8008
	OpCallerModuleInternalCall Opcode = 0x8009

	OpGetGlobalStateBytes32 Opcode = 0x8010
	OpSetGlobalStateBytes32 Opcode = 0x8011
	OpGetGlobalStateU64     Opcode = 0x8012
	OpSetGlobalStateU64     Opcode = 0x8013

	OpReadPreImage       Opcode = 0x8020
	OpReadInboxMessage   Opcode = 0x8021
	OpHaltAndSetFinished Opcode = 0x8022
)

// InboxChannel selects which input stream a ReadInboxMessage consults.
// The value is baked into the instruction operand at link time.
type InboxChannel uint64

const (
	InboxSequencer InboxChannel = 0 // primary inbox
	InboxDelayed   InboxChannel = 1 // delayed inbox
)

func (c InboxChannel) String() string {
	switch c {
	case InboxSequencer:
		return "sequencer"
	case InboxDelayed:
		return "delayed"
	}
	return "unknown"
}
