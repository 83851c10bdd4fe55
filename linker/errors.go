package linker

import (
	"fmt"
	"strings"
)

// BindError provides context when binding a guest module fails.
type BindError struct {
	Cause      error
	Module     string
	ImportPath string
	Reason     string
}

func (e *BindError) Error() string {
	var b strings.Builder
	b.WriteString("binding failed")

	if e.Module != "" {
		fmt.Fprintf(&b, " for module %q", e.Module)
	}

	if e.ImportPath != "" {
		b.WriteString(": ")
		b.WriteString(e.ImportPath)
	}

	if e.Reason != "" {
		b.WriteString(": ")
		b.WriteString(e.Reason)
	}

	if e.Cause != nil {
		b.WriteString(": ")
		b.WriteString(e.Cause.Error())
	}

	return b.String()
}

func (e *BindError) Unwrap() error {
	return e.Cause
}

func bindError(module, importPath, reason string, cause error) *BindError {
	return &BindError{
		Module:     module,
		ImportPath: importPath,
		Reason:     reason,
		Cause:      cause,
	}
}
