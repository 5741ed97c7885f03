//go:build debug

// Invariant checks that panic in debug builds.
//
// To enable: go test -tags debug ./...
package tableview

import "fmt"

// debugAssert panics with the formatted message when cond is false.
func debugAssert(cond bool, format string, args ...any) {
	if !cond {
		panic(fmt.Sprintf("tableview invariant: "+format, args...))
	}
}
