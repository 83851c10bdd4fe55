package host

import "github.com/alt-research/nitro-berachain/wavm"

// GasGlobals identifies the two module globals wired when software gas
// metering is enabled: the remaining-budget slot and the exhaustion flag.
type GasGlobals struct {
	Remaining uint64
	Status    uint64
}

// internalFunc is the ordinal of a privileged internal function. The
// numbering is the position of the capability in the capabilities list,
// which is also the position of its stub in the injected table.
type internalFunc uint64

const (
	internalLoad8 internalFunc = iota
	internalLoad32
	internalStore8
	internalStore32
	internalGasLeft
	internalGasStatus
	internalSetGas
	numInternalFuncs
)

// Every internal function is recorded with the same uniform signature;
// the interpreter moves the real arguments through the caller's frame.
// The on-chain proof checker assumes this table layout, so it never
// changes.
var internalFuncType = wavm.NewFuncType([]wavm.ValueType{wavm.I32}, []wavm.ValueType{wavm.I32})

// capability is one privileged internal function: a name for diagnostics
// plus the instruction recipe for its stub body. Exactly one of code and
// gasCode is set; gasCode entries exist only in gas-metered modules.
type capability struct {
	name    string
	code    []wavm.Instruction
	gasCode func(GasGlobals) []wavm.Instruction
}

// capabilities is the single source of truth for ordinal assignment.
// Index-keyed so an entry cannot drift from its ordinal.
var capabilities = [numInternalFuncs]capability{
	internalLoad8: {
		name: "load-byte",
		code: []wavm.Instruction{wavm.Simple(wavm.OpI32Load8U)},
	},
	internalLoad32: {
		name: "load-word",
		code: []wavm.Instruction{wavm.Simple(wavm.OpI32Load)},
	},
	internalStore8: {
		name: "store-byte",
		code: []wavm.Instruction{wavm.Simple(wavm.OpI32Store8)},
	},
	internalStore32: {
		name: "store-word",
		code: []wavm.Instruction{wavm.Simple(wavm.OpI32Store)},
	},
	internalGasLeft: {
		name: "read-gas-remaining",
		gasCode: func(g GasGlobals) []wavm.Instruction {
			return []wavm.Instruction{wavm.WithArg(wavm.OpGlobalGet, g.Remaining)}
		},
	},
	internalGasStatus: {
		name: "read-gas-status",
		gasCode: func(g GasGlobals) []wavm.Instruction {
			return []wavm.Instruction{wavm.WithArg(wavm.OpGlobalGet, g.Status)}
		},
	},
	internalSetGas: {
		name: "write-gas-remaining-and-status",
		gasCode: func(g GasGlobals) []wavm.Instruction {
			// The status argument is on top of the stack and must be
			// stored before the remaining budget. Reversing these two
			// writes corrupts the gas state without any other symptom.
			return []wavm.Instruction{
				wavm.WithArg(wavm.OpGlobalSet, g.Status),
				wavm.WithArg(wavm.OpGlobalSet, g.Remaining),
			}
		},
	},
}

// Inject appends one stub per privileged capability to the module's
// function table, and its signature to the parallel type table, in
// capability order. Modules without gas globals get the four memory
// capabilities; modules with them get all seven. Run once per module,
// before any import is resolved.
func Inject(funcs *[]wavm.Function, types *[]wavm.FuncType, gas *GasGlobals) {
	if len(*funcs) != len(*types) {
		panic("host: function and signature tables diverged before injection")
	}

	for _, c := range capabilities {
		var body []wavm.Instruction
		switch {
		case c.gasCode == nil:
			body = c.code
		case gas != nil:
			body = c.gasCode(*gas)
		default:
			// Gas capability on a module without gas metering.
			continue
		}

		code := make([]wavm.Instruction, 0, len(body)+2)
		code = append(code, wavm.Simple(wavm.OpInitFrame))
		code = append(code, body...)
		code = append(code, wavm.Simple(wavm.OpReturn))

		*funcs = append(*funcs, wavm.NewFunction(code, internalFuncType))
		*types = append(*types, internalFuncType)
	}

	if len(*funcs) != len(*types) {
		panic("host: function and signature tables diverged during injection")
	}
}

// NumInternalFuncs returns the privileged table size Inject produces for
// the given gas configuration.
func NumInternalFuncs(gas *GasGlobals) int {
	if gas == nil {
		return int(internalGasLeft)
	}
	return int(numInternalFuncs)
}

// InternalFuncName names the capability behind an internal-call ordinal,
// for logs and error messages. Unknown ordinals yield the empty string.
func InternalFuncName(ordinal uint64) string {
	if ordinal >= uint64(numInternalFuncs) {
		return ""
	}
	return capabilities[ordinal].name
}
