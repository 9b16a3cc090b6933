//go:build tools
// +build tools

// Package tools declares tool dependencies for this module.
//
// These imports are not used at runtime. They keep Go-based tools invoked via
// `go generate` (mockgen for mocks/) tracked as explicit module dependencies.
package chat_bridge

import (
	_ "go.uber.org/mock/mockgen"
)
