//go:build !debug

package tableview

// debugAssert is a no-op in release builds; violations are logged instead.
func debugAssert(bool, string, ...any) {}
