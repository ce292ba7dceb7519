package pathfn

import (
	"fmt"
	"sync"
)

// Interner is an in-memory [SymbolTable]
// issuing sequential identifiers starting at zero.
// The zero value is an empty table ready to use.
// It is safe for concurrent use.
//
// Hosts that already maintain an interning table
// should adapt that table to [SymbolTable]
// instead of copying strings into an Interner.
type Interner struct {
	mu   sync.RWMutex
	ids  map[string]Domain
	syms []string
}

var _ SymbolTable = (*Interner)(nil)

// Encode interns s and returns its identifier.
// Encoding the same string again returns the same identifier.
func (in *Interner) Encode(s string) Domain {
	in.mu.RLock()
	d, ok := in.ids[s]
	in.mu.RUnlock()
	if ok {
		return d
	}

	in.mu.Lock()
	defer in.mu.Unlock()

	// Another encoder may have won the race.
	if d, ok := in.ids[s]; ok {
		return d
	}
	if in.ids == nil {
		in.ids = make(map[string]Domain)
	}
	d = Domain(len(in.syms))
	in.ids[s] = d
	in.syms = append(in.syms, s)
	return d
}

// Decode returns the string that d was issued for.
// It panics if this table never issued d.
func (in *Interner) Decode(d Domain) string {
	in.mu.RLock()
	defer in.mu.RUnlock()

	if d < 0 || int(d) >= len(in.syms) {
		panic(fmt.Sprintf("pathfn: Decode(%d): identifier was never issued by this table", d))
	}
	return in.syms[d]
}
