package app

import (
	"context"
	"sort"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"ipxact-gen/internal/core"
	"ipxact-gen/internal/policies"
	"ipxact-gen/internal/types"
)

// Inspect loads the registry from the search roots and returns a sorted
// summary of every definition it holds, including the native overrides.
func (s Service) Inspect(ctx context.Context, req InspectRequest) (InspectResult, error) {
	if len(req.SearchRoots) == 0 {
		return InspectResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("at least one search root is required")
	}
	registry, err := s.loadRegistry(ctx, req.SearchRoots)
	if err != nil {
		return InspectResult{}, err
	}
	registry = registry.Override(policies.NativeOverrides())

	result := InspectResult{}
	for id, definition := range registry {
		result.Definitions = append(result.Definitions, RegistryEntry{
			Identifier: id.String(),
			Kind:       definitionKind(definition),
		})
	}
	sort.Slice(result.Definitions, func(i, j int) bool {
		return result.Definitions[i].Identifier < result.Definitions[j].Identifier
	})
	return result, nil
}

func definitionKind(definition types.Definition) string {
	switch definition.(type) {
	case *types.BusDefinition:
		return "busDefinition"
	case *types.AbstractionDefinition:
		return "abstractionDefinition"
	case *types.Component:
		return "component"
	case *types.Design:
		return "design"
	case *types.ParameterAbstractionDefinition:
		return "parameterAbstractionDefinition"
	case core.NativeAxiMemoryMapped:
		return "nativeAxiMemoryMapped"
	case core.NativeAxiStream:
		return "nativeAxiStream"
	case core.GenericVector:
		return "genericVector"
	default:
		return "unknown"
	}
}
