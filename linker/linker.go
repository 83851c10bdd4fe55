package linker

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/alt-research/nitro-berachain/host"
	"github.com/alt-research/nitro-berachain/wavm"
)

// Import is one function import a guest module declares, with the
// signature the module expects it to have.
type Import struct {
	Namespace string
	Name      string
	Type      wavm.FuncType
}

// Path renders the import in namespace.name form.
func (i Import) Path() string {
	return i.Namespace + "." + i.Name
}

// Module describes a guest module to be bound: a name for diagnostics
// and its declared imports in declaration order.
type Module struct {
	Name    string
	Imports []Import
}

// BoundModule is the result of binding: the privileged internal-function
// table with its parallel signature table, and one resolved stub per
// declared import, in declaration order. All slices are fixed at
// construction and safe for concurrent reads.
type BoundModule struct {
	Name          string
	Internals     []wavm.Function
	InternalTypes []wavm.FuncType
	Stubs         []wavm.Function
}

// Bind links one guest module against the host: it injects the
// privileged table (sized by whether gas globals are present), resolves
// every declared import, checks each resolved stub against the declared
// signature, and verifies every internal-call ordinal lands inside the
// table that was actually injected. Any failure rejects the module
// whole; there is no partial binding.
func Bind(mod Module, gas *host.GasGlobals) (*BoundModule, error) {
	var (
		funcs []wavm.Function
		types []wavm.FuncType
	)
	host.Inject(&funcs, &types, gas)

	log := Logger()
	stubs := make([]wavm.Function, 0, len(mod.Imports))
	for _, imp := range mod.Imports {
		stub, err := host.Resolve(imp.Namespace, imp.Name)
		if err != nil {
			return nil, bindError(mod.Name, imp.Path(), "unresolved import", err)
		}

		if !stub.Type.Equals(imp.Type) {
			reason := fmt.Sprintf("signature mismatch: declared %s, host provides %s",
				imp.Type, stub.Type)
			return nil, bindError(mod.Name, imp.Path(), reason, nil)
		}

		if err := checkOrdinals(stub, len(funcs)); err != nil {
			return nil, bindError(mod.Name, imp.Path(), "privileged call outside injected table", err)
		}

		log.Debug("bound import",
			zap.String("module", mod.Name),
			zap.String("import", imp.Path()),
			zap.Stringer("type", stub.Type),
			zap.Int("instructions", len(stub.Code)),
		)
		stubs = append(stubs, stub)
	}

	log.Debug("module bound",
		zap.String("module", mod.Name),
		zap.Int("internals", len(funcs)),
		zap.Int("imports", len(stubs)),
		zap.Bool("gas_metered", gas != nil),
	)

	return &BoundModule{
		Name:          mod.Name,
		Internals:     funcs,
		InternalTypes: types,
		Stubs:         stubs,
	}, nil
}

// checkOrdinals rejects stubs whose internal calls reference entries the
// injector did not place. This is how resolving a gas import for a
// module linked without gas globals surfaces.
func checkOrdinals(stub wavm.Function, tableLen int) error {
	for _, inst := range stub.Code {
		if inst.Opcode != wavm.OpCallerModuleInternalCall {
			continue
		}
		if inst.Arg >= uint64(tableLen) {
			name := host.InternalFuncName(inst.Arg)
			if name == "" {
				name = "unknown"
			}
			return fmt.Errorf("ordinal %d (%s) not injected, table has %d entries",
				inst.Arg, name, tableLen)
		}
	}
	return nil
}
