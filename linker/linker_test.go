package linker_test

import (
	"errors"
	"testing"

	"github.com/alt-research/nitro-berachain/host"
	"github.com/alt-research/nitro-berachain/linker"
	"github.com/alt-research/nitro-berachain/wavm"
)

func i32s(n int) []wavm.ValueType {
	out := make([]wavm.ValueType, n)
	for i := range out {
		out[i] = wavm.I32
	}
	return out
}

func TestBindWithoutGas(t *testing.T) {
	mod := linker.Module{
		Name: "guest",
		Imports: []linker.Import{
			{Namespace: "env", Name: "wavm_halt_and_set_finished", Type: wavm.NewFuncType(nil, nil)},
			{Namespace: "env", Name: "wavm_caller_store32", Type: wavm.NewFuncType(i32s(2), nil)},
		},
	}

	bound, err := linker.Bind(mod, nil)
	if err != nil {
		t.Fatal(err)
	}

	if len(bound.Internals) != 4 {
		t.Errorf("internal table has %d entries, want 4", len(bound.Internals))
	}
	if len(bound.InternalTypes) != len(bound.Internals) {
		t.Errorf("signature table has %d entries, function table %d",
			len(bound.InternalTypes), len(bound.Internals))
	}
	if len(bound.Stubs) != 2 {
		t.Fatalf("bound %d stubs, want 2", len(bound.Stubs))
	}
	if op := bound.Stubs[0].Code[0].Opcode; op != wavm.OpHaltAndSetFinished {
		t.Errorf("first stub starts with %v, want halt", op)
	}
}

func TestBindWithGas(t *testing.T) {
	mod := linker.Module{
		Name: "user",
		Imports: []linker.Import{
			{Namespace: "hostio", Name: "user_gas_left", Type: wavm.NewFuncType(nil, []wavm.ValueType{wavm.I64})},
			{Namespace: "hostio", Name: "user_set_gas", Type: wavm.NewFuncType([]wavm.ValueType{wavm.I64, wavm.I32}, nil)},
		},
	}

	bound, err := linker.Bind(mod, &host.GasGlobals{Remaining: 0, Status: 1})
	if err != nil {
		t.Fatal(err)
	}
	if len(bound.Internals) != 7 {
		t.Errorf("internal table has %d entries, want 7", len(bound.Internals))
	}
}

func TestBindGasImportWithoutGasGlobals(t *testing.T) {
	mod := linker.Module{
		Name: "user",
		Imports: []linker.Import{
			{Namespace: "hostio", Name: "user_gas_left", Type: wavm.NewFuncType(nil, []wavm.ValueType{wavm.I64})},
		},
	}

	_, err := linker.Bind(mod, nil)
	if err == nil {
		t.Fatal("expected error binding a gas import without gas globals")
	}

	var bindErr *linker.BindError
	if !errors.As(err, &bindErr) {
		t.Fatalf("error type = %T, want *BindError", err)
	}
	if bindErr.ImportPath != "hostio.user_gas_left" {
		t.Errorf("ImportPath = %q, want %q", bindErr.ImportPath, "hostio.user_gas_left")
	}
}

func TestBindUnknownImport(t *testing.T) {
	mod := linker.Module{
		Name: "guest",
		Imports: []linker.Import{
			{Namespace: "env", Name: "no_such_thing"},
		},
	}

	_, err := linker.Bind(mod, nil)
	if err == nil {
		t.Fatal("expected error for unknown import")
	}

	var unresolved *host.UnresolvedImportError
	if !errors.As(err, &unresolved) {
		t.Fatalf("cause chain lacks *UnresolvedImportError: %v", err)
	}
	if unresolved.Namespace != "env" || unresolved.Name != "no_such_thing" {
		t.Errorf("error carries (%q, %q)", unresolved.Namespace, unresolved.Name)
	}
}

func TestBindSignatureMismatch(t *testing.T) {
	mod := linker.Module{
		Name: "guest",
		Imports: []linker.Import{
			// Declared with one parameter too few.
			{Namespace: "env", Name: "wavm_caller_store32", Type: wavm.NewFuncType(i32s(1), nil)},
		},
	}

	_, err := linker.Bind(mod, nil)
	if err == nil {
		t.Fatal("expected signature mismatch error")
	}

	var bindErr *linker.BindError
	if !errors.As(err, &bindErr) {
		t.Fatalf("error type = %T, want *BindError", err)
	}
}

func TestBindEmptyModule(t *testing.T) {
	bound, err := linker.Bind(linker.Module{Name: "empty"}, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(bound.Stubs) != 0 {
		t.Errorf("bound %d stubs for an import-free module", len(bound.Stubs))
	}
	if len(bound.Internals) != 4 {
		t.Errorf("internal table has %d entries, want 4", len(bound.Internals))
	}
}
