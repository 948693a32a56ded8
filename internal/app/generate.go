package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"ipxact-gen/internal/adapters"
	"ipxact-gen/internal/core"
	"ipxact-gen/internal/policies"
	"ipxact-gen/internal/types"
)

// Generate runs the whole pipeline: scan the search roots, build the
// registry, apply the native overrides, parse and validate the design
// document, and emit one source unit per component instance. A failing
// instance is skipped with a diagnostic; a failing design document is
// fatal because there is nothing to emit.
func (s Service) Generate(ctx context.Context, req GenerateRequest) (GenerateResult, error) {
	designPath := strings.TrimSpace(req.DesignPath)
	if designPath == "" {
		return GenerateResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("design path is required")
	}
	if len(req.SearchRoots) == 0 {
		return GenerateResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("at least one search root is required")
	}
	outputDir := strings.TrimSpace(req.OutputDir)
	if outputDir == "" {
		return GenerateResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("output directory is required")
	}

	registry, err := s.loadRegistry(ctx, req.SearchRoots)
	if err != nil {
		return GenerateResult{}, err
	}
	registry = registry.Override(policies.NativeOverrides())

	design, err := s.loadDesign(designPath)
	if err != nil {
		return GenerateResult{}, err
	}
	if err := core.NewDesignValidator().ValidateDesign(ctx, design); err != nil {
		return GenerateResult{}, err
	}

	emitter := core.NewEmitter(registry)
	output := adapters.NewOutputFileAdapter(outputDir)
	result := GenerateResult{
		DesignName: design.Identifier.Name,
		OutputDir:  outputDir,
	}
	for _, instance := range design.ComponentInstances {
		content, err := emitter.EmitInstance(ctx, instance)
		if err != nil {
			log.Ctx(ctx).Warn().Str("instance", instance.InstanceName).Err(err).
				Msg("instance skipped")
			result.Skipped = append(result.Skipped, SkippedInstance{
				InstanceName: instance.InstanceName,
				Reason:       err.Error(),
			})
			continue
		}
		path, err := output.WriteUnit(instance.InstanceName+".scala", content)
		if err != nil {
			return GenerateResult{}, err
		}
		result.Units = append(result.Units, GeneratedUnit{
			InstanceName: instance.InstanceName,
			Path:         path,
		})
	}
	log.Ctx(ctx).Info().Str("design", design.Identifier.Name).
		Int("units", len(result.Units)).Int("skipped", len(result.Skipped)).
		Msg("generation completed")
	return result, nil
}

func (s Service) loadRegistry(ctx context.Context, roots []string) (core.Registry, error) {
	var paths []string
	for _, root := range roots {
		found, err := s.Workspace.FindMetadataXML(strings.TrimSpace(root))
		if err != nil {
			return nil, err
		}
		paths = append(paths, found...)
	}
	return core.LoadRegistry(ctx, s.Documents, paths), nil
}

// loadDesign parses the single required top-level design document. Any
// failure here propagates to the caller as a run failure.
func (s Service) loadDesign(path string) (*types.Design, error) {
	root, err := s.Documents.LoadDocument(path)
	if err != nil {
		return nil, err
	}
	definition, err := core.ParseDocument(root)
	if err != nil {
		return nil, err
	}
	if definition == nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("document is not a metadata design: %s", path))
	}
	design, ok := definition.(*types.Design)
	if !ok {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("document is not a design: %s", path))
	}
	return design, nil
}
