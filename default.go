package sx

import "sync"

var (
	defaultMu       sync.Mutex
	defaultCompiler *Compiler
)

// Default returns the package-level compiler, creating it (and its
// document) on first use.
func Default() *Compiler {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	if defaultCompiler == nil {
		defaultCompiler = New()
	}
	return defaultCompiler
}

// ResetDefault discards the package-level compiler, together with its
// document and stylesheet.
func ResetDefault() {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultCompiler = nil
}

// CSS compiles style descriptions with the package-level compiler.
// See Compiler.CSS.
func CSS(desc any, more ...any) (Style, error) {
	return Default().CSS(desc, more...)
}

// Combine combines style descriptions with the package-level compiler.
// See Compiler.Combine.
func Combine(descs ...any) (Style, error) {
	return Default().Combine(descs...)
}
