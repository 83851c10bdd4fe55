// Package linker drives host binding for one guest module: it injects the
// privileged internal-function table, then resolves every declared import
// against the host catalog, in declaration order. It is the only layer
// that can see both sides of the ordinal contract, so it is also where a
// stub referencing a table entry that was never injected is rejected.
//
// Binding runs once per module, single-threaded, at build time. The
// resulting tables are immutable.
package linker
