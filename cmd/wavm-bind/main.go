package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/alt-research/nitro-berachain/host"
	"github.com/alt-research/nitro-berachain/linker"
)

func main() {
	var (
		wasmFile = flag.String("wasm", "", "Path to guest wasm module")
		list     = flag.Bool("list", false, "List declared imports and exit")
		catalog  = flag.Bool("catalog", false, "Print the recognized import surface and exit")
		gasSpec  = flag.String("gas", "", "Enable gas metering with global slots remaining:status")
		verbose  = flag.Bool("v", false, "Enable debug logging")
	)
	flag.Parse()

	if *verbose {
		logger, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer logger.Sync()
		linker.SetLogger(logger)
	}

	if *catalog {
		printCatalog()
		return
	}

	if *wasmFile == "" {
		fmt.Fprintln(os.Stderr, "Usage: wavm-bind -wasm <file.wasm> [-gas remaining:status] [-v]")
		fmt.Fprintln(os.Stderr, "       wavm-bind -wasm <file.wasm> -list")
		fmt.Fprintln(os.Stderr, "       wavm-bind -catalog")
		os.Exit(1)
	}

	gas, err := parseGas(*gasSpec)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := run(*wasmFile, gas, *list); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(wasmFile string, gas *host.GasGlobals, listOnly bool) error {
	ctx := context.Background()

	data, err := os.ReadFile(wasmFile)
	if err != nil {
		return fmt.Errorf("read file: %w", err)
	}

	imports, err := linker.Imports(ctx, data)
	if err != nil {
		return err
	}

	if listOnly {
		for _, imp := range imports {
			fmt.Printf("%-45s %s\n", imp.Path(), imp.Type)
		}
		return nil
	}

	bound, err := linker.Bind(linker.Module{Name: wasmFile, Imports: imports}, gas)
	if err != nil {
		return err
	}

	fmt.Printf("internal functions (%d):\n", len(bound.Internals))
	for i, fn := range bound.Internals {
		fmt.Printf("  %d  %-32s %d instructions  code %s\n",
			i, host.InternalFuncName(uint64(i)), len(fn.Code), fn.CodeHash())
	}

	fmt.Printf("bound imports (%d):\n", len(bound.Stubs))
	for i, stub := range bound.Stubs {
		fmt.Printf("  %-45s %-24s code %s\n",
			imports[i].Path(), stub.Type, stub.CodeHash())
	}
	return nil
}

func printCatalog() {
	for _, decl := range host.Catalog() {
		fmt.Printf("%-45s %s\n", decl.Namespace+"."+decl.Name, decl.Type)
	}
}

func parseGas(spec string) (*host.GasGlobals, error) {
	if spec == "" {
		return nil, nil
	}
	var gas host.GasGlobals
	parts := strings.SplitN(spec, ":", 2)
	if len(parts) != 2 {
		return nil, fmt.Errorf("invalid -gas %q, want remaining:status", spec)
	}
	if _, err := fmt.Sscanf(parts[0], "%d", &gas.Remaining); err != nil {
		return nil, fmt.Errorf("invalid -gas remaining slot %q", parts[0])
	}
	if _, err := fmt.Sscanf(parts[1], "%d", &gas.Status); err != nil {
		return nil, fmt.Errorf("invalid -gas status slot %q", parts[1])
	}
	return &gas, nil
}
