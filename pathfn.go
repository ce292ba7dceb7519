// Package pathfn implements native path predicates
// for use as foreign functions of a Datalog evaluation host.
//
// The predicates are purely lexical:
// no cleaning, no symlink resolution, no filesystem access.
// Strings cross the host boundary through a [SymbolTable],
// and boolean results are carried as 0/1 [Domain] words.
//
// Hosts that load foreign functions with C linkage
// should build cmd/libpathfn instead of importing this package.
package pathfn

// Domain is the value domain of the host:
// a signed 32-bit word holding either an interned symbol identifier
// or a small integer such as a boolean result.
type Domain int32

// Bool converts a predicate result
// into the host's integer representation:
// 1 for true, 0 for false.
func Bool(b bool) Domain {
	if b {
		return 1
	}
	return 0
}

// SymbolTable is the string-interning table of the host.
// Both operations are total:
// any string can be encoded,
// and any identifier the table issued decodes
// back to the string it was issued for.
//
// Decoding an identifier the table never issued
// is a caller bug and may panic.
type SymbolTable interface {
	Encode(s string) Domain
	Decode(d Domain) string
}
