// Package remotelog forwards structured log events to the remote collector.
// Records are validated against the collector's enumerations before anything
// goes on the wire.
package remotelog

import (
	"errors"
	"fmt"
)

// Record is one event accepted by the collector.
type Record struct {
	Stack   string `json:"stack"`
	Level   string `json:"level"`
	Package string `json:"package"`
	Message string `json:"message"`
}

var ErrInvalidRecord = errors.New("invalid logging parameters")

var validStacks = map[string]bool{
	"backend":  true,
	"frontend": true,
}

var validLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
	"fatal": true,
}

var backendPackages = map[string]bool{
	"cache":      true,
	"controller": true,
	"cron job":   true,
	"db":         true,
	"domain":     true,
	"handler":    true,
	"repository": true,
	"route":      true,
	"service":    true,
}

var frontendPackages = map[string]bool{
	"api":       true,
	"component": true,
	"hook":      true,
	"page":      true,
	"state":     true,
	"style":     true,
}

// commonPackages are accepted for either stack.
var commonPackages = map[string]bool{
	"auth":       true,
	"config":     true,
	"middleware": true,
	"utils":      true,
}

// Validate checks the record against the collector's enumerations. A record
// failing validation must never be sent.
func (r Record) Validate() error {
	if !validStacks[r.Stack] {
		return fmt.Errorf("%w: unknown stack %q", ErrInvalidRecord, r.Stack)
	}

	if !validLevels[r.Level] {
		return fmt.Errorf("%w: unknown level %q", ErrInvalidRecord, r.Level)
	}

	if !packageAllowed(r.Stack, r.Package) {
		return fmt.Errorf("%w: package %q not allowed for stack %q", ErrInvalidRecord, r.Package, r.Stack)
	}

	return nil
}

func packageAllowed(stack, pkg string) bool {
	if commonPackages[pkg] {
		return true
	}

	switch stack {
	case "backend":
		return backendPackages[pkg]
	case "frontend":
		return frontendPackages[pkg]
	}
	return false
}
