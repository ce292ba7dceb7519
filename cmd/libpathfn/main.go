// libpathfn exposes the path predicates as process-visible symbols
// with C linkage, for hosts that resolve foreign functions
// through a dlopen-style loader.
//
// Build it as a shared library:
//
//	go build -buildmode=c-shared -o libpathfn.so ./cmd/libpathfn
//
// Both symbols follow the stateless string convention:
// the caller passes NUL-terminated strings
// and owns any string returned to it.
package main

/*
#include <stdint.h>
#include <stdlib.h>
*/
import "C"

import "go.abhg.dev/pathfn/internal/pathx"

// basename returns the final path component of path.
// The result is freshly allocated with malloc;
// the caller frees it.
//
//export basename
func basename(path *C.char) *C.char {
	return C.CString(pathx.Base(C.GoString(path)))
}

// isUnderDir reports whether filepath is strictly below dirpath,
// as 1 or 0.
//
//export isUnderDir
func isUnderDir(dirpath, filepath *C.char) C.int32_t {
	if pathx.Under(C.GoString(dirpath), C.GoString(filepath)) {
		return 1
	}
	return 0
}

func main() {}
