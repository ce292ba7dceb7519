// Package pathx answers lexical questions about /-separated paths
// with string manipulation exclusively.
package pathx

import "strings"

// Base returns the final component of p:
// the substring after the last slash,
// or p itself if it contains no slash.
//
// The split is purely lexical,
// so a path with a trailing slash has an empty final component.
// The result never contains a slash.
func Base(p string) string {
	if idx := strings.LastIndexByte(p, '/'); idx >= 0 {
		return p[idx+1:]
	}
	return p
}

// Under reports whether file is strictly below dir.
//
// The test is a literal prefix match on whole path segments:
// "/a" covers "/a/b" but not "/ab/c".
// No path is under itself, and an empty dir covers nothing.
func Under(dir, file string) bool {
	if dir == "" || dir == file {
		return false
	}
	if !strings.HasSuffix(dir, "/") {
		dir += "/"
	}
	return strings.HasPrefix(file, dir)
}
