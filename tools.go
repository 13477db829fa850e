//go:build tools
// +build tools

package tools

// Pins build-time tooling in go.mod. Nothing here is imported by the
// application itself.

import (
	_ "github.com/golangci/golangci-lint/cmd/golangci-lint"
	_ "github.com/swaggo/swag/cmd/swag"
	_ "golang.org/x/perf/cmd/benchstat"
)
