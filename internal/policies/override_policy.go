package policies

import (
	"ipxact-gen/internal/core"
	"ipxact-gen/internal/types"
)

// NativeOverrides is the fixed replacement table applied to the registry
// once, before generation begins. Known standard buses get hand-written
// protocol-aware generators that produce idiomatic, parameter-aware
// output; everything else keeps the generic schema-derived path as
// fallback. Implemented as a bulk registry rewrite rather than
// conditional checks at lookup time, so lookups stay uniform.
func NativeOverrides() map[types.VersionedIdentifier]types.Definition {
	return map[types.VersionedIdentifier]types.Definition{
		core.AbstractionAxiMemoryMapped(): core.NativeAxiMemoryMapped{Identifier: core.AbstractionAxiMemoryMapped()},
		core.AbstractionAxiStream():       core.NativeAxiStream{Identifier: core.AbstractionAxiStream()},
		core.AbstractionClock():           core.GenericVector{Identifier: core.AbstractionClock()},
		core.AbstractionReset():           core.GenericVector{Identifier: core.AbstractionReset()},
		core.AbstractionInterrupt():       core.GenericVector{Identifier: core.AbstractionInterrupt()},
	}
}
