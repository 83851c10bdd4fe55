package host_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/alt-research/nitro-berachain/host"
	"github.com/alt-research/nitro-berachain/wavm"
)

func i32s(n int) []wavm.ValueType {
	out := make([]wavm.ValueType, n)
	for i := range out {
		out[i] = wavm.I32
	}
	return out
}

func locals(n int) []wavm.Instruction {
	out := make([]wavm.Instruction, n)
	for i := range out {
		out[i] = wavm.WithArg(wavm.OpLocalGet, uint64(i))
	}
	return out
}

func internal(ordinal uint64) wavm.Instruction {
	return wavm.WithArg(wavm.OpCallerModuleInternalCall, ordinal)
}

// goldenStubs pins every catalog entry to its exact signature and
// instruction sequence. Any diff here is an ABI break.
var goldenStubs = []struct {
	namespace string
	name      string
	ty        wavm.FuncType
	body      []wavm.Instruction
}{
	{"env", "wavm_caller_load8",
		wavm.NewFuncType(i32s(1), i32s(1)),
		append(locals(1), internal(0))},
	{"env", "wavm_caller_load32",
		wavm.NewFuncType(i32s(1), i32s(1)),
		append(locals(1), internal(1))},
	{"env", "wavm_caller_store8",
		wavm.NewFuncType(i32s(2), nil),
		append(locals(2), internal(2))},
	{"env", "wavm_caller_store32",
		wavm.NewFuncType(i32s(2), nil),
		append(locals(2), internal(3))},
	{"env", "wavm_get_globalstate_bytes32",
		wavm.NewFuncType(i32s(2), nil),
		append(locals(2), wavm.Simple(wavm.OpGetGlobalStateBytes32))},
	{"env", "wavm_set_globalstate_bytes32",
		wavm.NewFuncType(i32s(2), nil),
		append(locals(2), wavm.Simple(wavm.OpSetGlobalStateBytes32))},
	{"env", "wavm_get_globalstate_u64",
		wavm.NewFuncType(i32s(1), []wavm.ValueType{wavm.I64}),
		append(locals(1), wavm.Simple(wavm.OpGetGlobalStateU64))},
	{"env", "wavm_set_globalstate_u64",
		wavm.NewFuncType([]wavm.ValueType{wavm.I32, wavm.I64}, nil),
		append(locals(2), wavm.Simple(wavm.OpSetGlobalStateU64))},
	{"env", "wavm_read_pre_image",
		wavm.NewFuncType(i32s(2), i32s(1)),
		append(locals(2), wavm.Simple(wavm.OpReadPreImage))},
	{"env", "wavm_read_inbox_message",
		wavm.NewFuncType([]wavm.ValueType{wavm.I64, wavm.I32, wavm.I32}, i32s(1)),
		append(locals(3), wavm.WithArg(wavm.OpReadInboxMessage, uint64(wavm.InboxSequencer)))},
	{"env", "wavm_read_delayed_inbox_message",
		wavm.NewFuncType([]wavm.ValueType{wavm.I64, wavm.I32, wavm.I32}, i32s(1)),
		append(locals(3), wavm.WithArg(wavm.OpReadInboxMessage, uint64(wavm.InboxDelayed)))},
	{"env", "wavm_halt_and_set_finished",
		wavm.NewFuncType(nil, nil),
		[]wavm.Instruction{wavm.Simple(wavm.OpHaltAndSetFinished)}},
	{"hostio", "user_gas_left",
		wavm.NewFuncType(nil, []wavm.ValueType{wavm.I64}),
		[]wavm.Instruction{internal(4)}},
	{"hostio", "user_gas_status",
		wavm.NewFuncType(nil, i32s(1)),
		[]wavm.Instruction{internal(5)}},
	{"hostio", "user_set_gas",
		wavm.NewFuncType([]wavm.ValueType{wavm.I64, wavm.I32}, nil),
		append(locals(2), internal(6))},
}

func TestResolveGolden(t *testing.T) {
	for _, tt := range goldenStubs {
		stub, err := host.Resolve(tt.namespace, tt.name)
		if err != nil {
			t.Fatalf("%s.%s: %v", tt.namespace, tt.name, err)
		}
		if !stub.Type.Equals(tt.ty) {
			t.Errorf("%s.%s: type = %s, want %s", tt.namespace, tt.name, stub.Type, tt.ty)
		}
		if !reflect.DeepEqual(stub.Code, tt.body) {
			t.Errorf("%s.%s: body = %v, want %v", tt.namespace, tt.name, stub.Code, tt.body)
		}
	}
}

func TestResolveIsPure(t *testing.T) {
	first, err := host.Resolve("env", "wavm_caller_store32")
	if err != nil {
		t.Fatal(err)
	}

	// A caller scribbling on a resolved stub must not leak into later
	// resolutions.
	first.Code[0] = wavm.Simple(wavm.OpUnreachable)

	second, err := host.Resolve("env", "wavm_caller_store32")
	if err != nil {
		t.Fatal(err)
	}
	want := []wavm.Instruction{
		wavm.WithArg(wavm.OpLocalGet, 0),
		wavm.WithArg(wavm.OpLocalGet, 1),
		wavm.WithArg(wavm.OpCallerModuleInternalCall, 3),
	}
	if !reflect.DeepEqual(second.Code, want) {
		t.Fatalf("resolution not pure: %v", second.Code)
	}
}

func TestResolveUnknownImport(t *testing.T) {
	_, err := host.Resolve("env", "not_a_real_import")
	if err == nil {
		t.Fatal("expected error for unknown import")
	}

	var unresolved *host.UnresolvedImportError
	if !errors.As(err, &unresolved) {
		t.Fatalf("error type = %T, want *UnresolvedImportError", err)
	}
	if unresolved.Namespace != "env" || unresolved.Name != "not_a_real_import" {
		t.Errorf("error carries (%q, %q), want (%q, %q)",
			unresolved.Namespace, unresolved.Name, "env", "not_a_real_import")
	}
}

func TestCatalogMatchesResolution(t *testing.T) {
	decls := host.Catalog()
	if len(decls) != len(goldenStubs) {
		t.Fatalf("catalog has %d entries, want %d", len(decls), len(goldenStubs))
	}

	for i, decl := range decls {
		if decl.Namespace != goldenStubs[i].namespace || decl.Name != goldenStubs[i].name {
			t.Errorf("entry %d: got %s.%s, want %s.%s", i,
				decl.Namespace, decl.Name, goldenStubs[i].namespace, goldenStubs[i].name)
		}
		stub, err := host.Resolve(decl.Namespace, decl.Name)
		if err != nil {
			t.Fatalf("catalog entry %s.%s does not resolve: %v", decl.Namespace, decl.Name, err)
		}
		if !stub.Type.Equals(decl.Type) {
			t.Errorf("%s.%s: catalog type %s, resolved type %s",
				decl.Namespace, decl.Name, decl.Type, stub.Type)
		}
	}
}
