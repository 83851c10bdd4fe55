// Package host binds guest-declared imports to stub functions and injects
// the machine's privileged internal functions into a module's function
// table.
//
// The two entry points share one ordered capability list: Inject appends
// one stub per capability, and Resolve emits internal-call instructions
// whose ordinal is that capability's position in the list. Keeping both
// sides on the same list is the load-bearing invariant of this package;
// a stub that calls ordinal 3 is calling whatever Inject put fourth.
package host
