package mcp

import (
	"github.com/custodia-labs/bookscan/internal/core/ports/driving"
)

// Ports aggregates the driving ports used by the MCP server.
type Ports struct {
	// Conversion runs conversions.
	Conversion driving.ConversionService

	// Runs reads stored runs. Optional; run tools and resources report
	// not found without it.
	Runs driving.RunService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Conversion == nil {
		return ErrMissingConversionService
	}
	return nil
}
