package host

import "github.com/alt-research/nitro-berachain/wavm"

// ImportDecl is one entry of the recognized import surface: a namespace
// and name pair with the signature its stub carries. The full set of
// these is a stable ABI; reshaping any entry breaks every module
// compiled against the machine.
type ImportDecl struct {
	Namespace string
	Name      string
	Type      wavm.FuncType
}

type catalogEntry struct {
	namespace string
	name      string
	ty        wavm.FuncType
	body      []wavm.Instruction
}

func i32s(n int) []wavm.ValueType {
	out := make([]wavm.ValueType, n)
	for i := range out {
		out[i] = wavm.I32
	}
	return out
}

// pushLocals reads the first n parameters onto the stack in declaration
// order.
func pushLocals(n int) []wavm.Instruction {
	out := make([]wavm.Instruction, n)
	for i := range out {
		out[i] = wavm.WithArg(wavm.OpLocalGet, uint64(i))
	}
	return out
}

func internalCall(f internalFunc) wavm.Instruction {
	return wavm.WithArg(wavm.OpCallerModuleInternalCall, uint64(f))
}

// catalogEntries is the entire import surface, in its published order.
// Bodies are plain instruction data; resolution only copies them.
var catalogEntries = []catalogEntry{
	{
		namespace: "env", name: "wavm_caller_load8",
		ty:   wavm.NewFuncType(i32s(1), i32s(1)),
		body: append(pushLocals(1), internalCall(internalLoad8)),
	},
	{
		namespace: "env", name: "wavm_caller_load32",
		ty:   wavm.NewFuncType(i32s(1), i32s(1)),
		body: append(pushLocals(1), internalCall(internalLoad32)),
	},
	{
		namespace: "env", name: "wavm_caller_store8",
		ty:   wavm.NewFuncType(i32s(2), nil),
		body: append(pushLocals(2), internalCall(internalStore8)),
	},
	{
		namespace: "env", name: "wavm_caller_store32",
		ty:   wavm.NewFuncType(i32s(2), nil),
		body: append(pushLocals(2), internalCall(internalStore32)),
	},
	{
		namespace: "env", name: "wavm_get_globalstate_bytes32",
		ty:   wavm.NewFuncType(i32s(2), nil),
		body: append(pushLocals(2), wavm.Simple(wavm.OpGetGlobalStateBytes32)),
	},
	{
		namespace: "env", name: "wavm_set_globalstate_bytes32",
		ty:   wavm.NewFuncType(i32s(2), nil),
		body: append(pushLocals(2), wavm.Simple(wavm.OpSetGlobalStateBytes32)),
	},
	{
		namespace: "env", name: "wavm_get_globalstate_u64",
		ty:   wavm.NewFuncType(i32s(1), []wavm.ValueType{wavm.I64}),
		body: append(pushLocals(1), wavm.Simple(wavm.OpGetGlobalStateU64)),
	},
	{
		namespace: "env", name: "wavm_set_globalstate_u64",
		ty:   wavm.NewFuncType([]wavm.ValueType{wavm.I32, wavm.I64}, nil),
		body: append(pushLocals(2), wavm.Simple(wavm.OpSetGlobalStateU64)),
	},
	{
		namespace: "env", name: "wavm_read_pre_image",
		ty:   wavm.NewFuncType(i32s(2), i32s(1)),
		body: append(pushLocals(2), wavm.Simple(wavm.OpReadPreImage)),
	},
	{
		namespace: "env", name: "wavm_read_inbox_message",
		ty:   wavm.NewFuncType([]wavm.ValueType{wavm.I64, wavm.I32, wavm.I32}, i32s(1)),
		body: append(pushLocals(3), wavm.WithArg(wavm.OpReadInboxMessage, uint64(wavm.InboxSequencer))),
	},
	{
		namespace: "env", name: "wavm_read_delayed_inbox_message",
		ty:   wavm.NewFuncType([]wavm.ValueType{wavm.I64, wavm.I32, wavm.I32}, i32s(1)),
		body: append(pushLocals(3), wavm.WithArg(wavm.OpReadInboxMessage, uint64(wavm.InboxDelayed))),
	},
	{
		namespace: "env", name: "wavm_halt_and_set_finished",
		ty:   wavm.NewFuncType(nil, nil),
		body: []wavm.Instruction{wavm.Simple(wavm.OpHaltAndSetFinished)},
	},
	{
		namespace: "hostio", name: "user_gas_left",
		ty:   wavm.NewFuncType(nil, []wavm.ValueType{wavm.I64}),
		body: []wavm.Instruction{internalCall(internalGasLeft)},
	},
	{
		namespace: "hostio", name: "user_gas_status",
		ty:   wavm.NewFuncType(nil, i32s(1)),
		body: []wavm.Instruction{internalCall(internalGasStatus)},
	},
	{
		namespace: "hostio", name: "user_set_gas",
		ty:   wavm.NewFuncType([]wavm.ValueType{wavm.I64, wavm.I32}, nil),
		body: append(pushLocals(2), internalCall(internalSetGas)),
	},
}

type importKey struct {
	namespace string
	name      string
}

var catalog = func() map[importKey]*catalogEntry {
	m := make(map[importKey]*catalogEntry, len(catalogEntries))
	for i := range catalogEntries {
		e := &catalogEntries[i]
		key := importKey{e.namespace, e.name}
		if _, dup := m[key]; dup {
			panic("host: duplicate catalog entry " + e.namespace + "." + e.name)
		}
		m[key] = e
	}
	return m
}()

// Resolve returns the stub implementing the given import. Resolution is
// a pure catalog lookup: the same pair always yields an identical stub,
// and an unknown pair always yields *UnresolvedImportError. Stubs that
// call gas capabilities are produced regardless of whether the module
// was injected with gas globals; wiring the two together correctly is
// the linker's contract, not something Resolve can observe.
func Resolve(namespace, name string) (wavm.Function, error) {
	entry, ok := catalog[importKey{namespace, name}]
	if !ok {
		return wavm.Function{}, &UnresolvedImportError{Namespace: namespace, Name: name}
	}
	return wavm.NewFunction(entry.body, entry.ty), nil
}

// Catalog lists every recognized import in published order.
func Catalog() []ImportDecl {
	out := make([]ImportDecl, len(catalogEntries))
	for i, e := range catalogEntries {
		out[i] = ImportDecl{Namespace: e.namespace, Name: e.name, Type: e.ty}
	}
	return out
}
