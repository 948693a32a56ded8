package core

import "ipxact-gen/internal/types"

// Well-known vendor identifiers. The interface abstractions are the
// registry keys rewritten by the override step; the parameter catalogs
// are the distinct identifiers native generators consult for defaults.

func AbstractionAxiMemoryMapped() types.VersionedIdentifier {
	return types.NewIdentifier("xilinx.com", "interface", "aximm_rtl", "1.0")
}

func AbstractionAxiStream() types.VersionedIdentifier {
	return types.NewIdentifier("xilinx.com", "interface", "axis_rtl", "1.0")
}

func AbstractionClock() types.VersionedIdentifier {
	return types.NewIdentifier("xilinx.com", "signal", "clock_rtl", "1.0")
}

func AbstractionReset() types.VersionedIdentifier {
	return types.NewIdentifier("xilinx.com", "signal", "reset_rtl", "1.0")
}

func AbstractionInterrupt() types.VersionedIdentifier {
	return types.NewIdentifier("xilinx.com", "signal", "interrupt_rtl", "1.0")
}

func CatalogAxiMemoryMapped() types.VersionedIdentifier {
	return types.NewIdentifier("xilinx.com", "interface.param", "aximm", "1.0")
}

func CatalogAxiStream() types.VersionedIdentifier {
	return types.NewIdentifier("xilinx.com", "interface.param", "axis", "1.0")
}
