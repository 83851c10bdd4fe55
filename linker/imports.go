package linker

import (
	"context"
	"fmt"

	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/api"

	"github.com/alt-research/nitro-berachain/wavm"
)

// Imports compiles a guest wasm binary and returns its declared function
// imports in declaration order. Only the import section is consumed; the
// module is never instantiated.
func Imports(ctx context.Context, wasmBytes []byte) ([]Import, error) {
	rt := wazero.NewRuntimeWithConfig(ctx, wazero.NewRuntimeConfigInterpreter())
	defer rt.Close(ctx)

	compiled, err := rt.CompileModule(ctx, wasmBytes)
	if err != nil {
		return nil, fmt.Errorf("compile guest module: %w", err)
	}
	defer compiled.Close(ctx)

	defs := compiled.ImportedFunctions()
	imports := make([]Import, 0, len(defs))
	for _, def := range defs {
		namespace, name, ok := def.Import()
		if !ok {
			continue
		}
		ty, err := funcTypeFromAPI(def.ParamTypes(), def.ResultTypes())
		if err != nil {
			return nil, fmt.Errorf("import %s.%s: %w", namespace, name, err)
		}
		imports = append(imports, Import{Namespace: namespace, Name: name, Type: ty})
	}
	return imports, nil
}

func funcTypeFromAPI(params, results []api.ValueType) (wavm.FuncType, error) {
	ps, err := valueTypesFromAPI(params)
	if err != nil {
		return wavm.FuncType{}, err
	}
	rs, err := valueTypesFromAPI(results)
	if err != nil {
		return wavm.FuncType{}, err
	}
	return wavm.NewFuncType(ps, rs), nil
}

func valueTypesFromAPI(in []api.ValueType) ([]wavm.ValueType, error) {
	if len(in) == 0 {
		return nil, nil
	}
	out := make([]wavm.ValueType, len(in))
	for i, vt := range in {
		switch vt {
		case api.ValueTypeI32:
			out[i] = wavm.I32
		case api.ValueTypeI64:
			out[i] = wavm.I64
		case api.ValueTypeF32:
			out[i] = wavm.F32
		case api.ValueTypeF64:
			out[i] = wavm.F64
		default:
			return nil, fmt.Errorf("unsupported import value type %s", api.ValueTypeName(vt))
		}
	}
	return out, nil
}
