package host

import "fmt"

// UnresolvedImportError reports an import with no catalog entry. It
// carries the requested namespace and name verbatim; resolution has no
// other failure mode.
type UnresolvedImportError struct {
	Namespace string
	Name      string
}

func (e *UnresolvedImportError) Error() string {
	return fmt.Sprintf("no such hostio %q in %q", e.Name, e.Namespace)
}
