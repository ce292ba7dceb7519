package pathfn

import (
	"braces.dev/errtrace"

	"go.abhg.dev/pathfn/internal/pathx"
)

// Basename is the symbol-marshalled basename functor.
// It decodes its argument,
// takes the final path component lexically,
// and returns the re-encoded result.
//
// The result is guaranteed to decode
// to a string without a path separator.
// An empty path, or a path with a trailing slash,
// yields the empty string.
func Basename(st SymbolTable, arg Domain) Domain {
	return st.Encode(pathx.Base(st.Decode(arg)))
}

// IsUnderDir is the stateless isUnderDir functor:
// raw strings in, 0/1 out.
//
// It reports whether file is strictly below dir
// by a literal segment-wise prefix test.
// There is no normalization:
// "/a/../b" is compared exactly as written.
// A path is never under itself,
// and nothing is under the empty directory.
func IsUnderDir(dir, file string) Domain {
	return Bool(pathx.Under(dir, file))
}

// Func is a native functor in the host calling convention:
// interned arguments in, one interned or integer result out.
type Func func(st SymbolTable, args []Domain) Domain

type functor struct {
	arity int
	fn    Func
}

// Registry holds named native functors
// for lookup and invocation by a rule-evaluation host.
// The zero value is an empty registry.
//
// Registry is not safe for concurrent mutation;
// register all functors before evaluation starts.
type Registry struct {
	functors map[string]functor
}

// Register binds name to fn with the given arity,
// replacing any previous binding for name.
func (r *Registry) Register(name string, arity int, fn Func) {
	if r.functors == nil {
		r.functors = make(map[string]functor)
	}
	r.functors[name] = functor{arity: arity, fn: fn}
}

// Call invokes the functor registered under name.
// It fails if name is unknown
// or args does not match the registered arity.
func (r *Registry) Call(st SymbolTable, name string, args ...Domain) (Domain, error) {
	f, ok := r.functors[name]
	if !ok {
		return 0, errtrace.Errorf("unknown functor %q", name)
	}
	if len(args) != f.arity {
		return 0, errtrace.Errorf("functor %q takes %d argument(s), got %d", name, f.arity, len(args))
	}
	return f.fn(st, args), nil
}

// Builtins returns a registry preloaded with the path predicates:
// basename/1 and isUnderDir/2.
func Builtins() *Registry {
	var r Registry
	r.Register("basename", 1, func(st SymbolTable, args []Domain) Domain {
		return Basename(st, args[0])
	})
	r.Register("isUnderDir", 2, func(st SymbolTable, args []Domain) Domain {
		return IsUnderDir(st.Decode(args[0]), st.Decode(args[1]))
	})
	return &r
}
