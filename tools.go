//go:build tools
// +build tools

// Package tools pins tool dependencies in go.mod even though they are
// not imported by application code.
package tools

import (
	_ "github.com/stretchr/testify"
)
