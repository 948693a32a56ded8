package core

import (
	"context"
	"fmt"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"ipxact-gen/internal/shared"
	"ipxact-gen/internal/types"
)

// Emitter drives per-instance generation: it resolves the instance's
// component, runs each bus interface through its abstraction's
// generator, and assembles one source unit. Interfaces whose generator
// yields no result are omitted silently; interfaces whose generator
// fails are omitted with a diagnostic, so partial output is possible.
type Emitter struct {
	Registry Registry
}

func NewEmitter(registry Registry) Emitter {
	return Emitter{Registry: registry}
}

// EmitInstance renders the generated unit for one component instance.
func (e Emitter) EmitInstance(ctx context.Context, instance types.ComponentInstance) (string, error) {
	definition, err := e.resolveReference(instance.ComponentRef)
	if err != nil {
		return "", err
	}
	component, ok := definition.(*types.Component)
	if !ok {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("reference %s does not name a component", instance.ComponentRef))
	}

	unit := NewUnit("generated")
	unit.AddHeader(fmt.Sprintf("// Generated by ipxact-gen for instance %s.", instance.InstanceName))
	unit.AddHeader("// Do not edit.")

	emittedTypes := map[string]struct{}{}
	var fields []string
	for _, busIf := range component.BusInterfaces {
		field, ok := e.emitInterface(ctx, unit, emittedTypes, instance, busIf)
		if !ok {
			continue
		}
		fields = append(fields, field)
	}

	var body string
	if len(fields) > 0 {
		body = "\n" + strings.Join(fields, "\n") + "\n"
	}
	unit.AddDeclaration(fmt.Sprintf("case class %sIo() extends Bundle {%s}",
		shared.UpperCamel(instance.InstanceName), body))
	unit.AddImports([]string{"spinal.core._", "spinal.lib._"})
	return unit.Render(), nil
}

func (e Emitter) emitInterface(ctx context.Context, unit *Unit, emittedTypes map[string]struct{}, instance types.ComponentInstance, busIf types.BusInterface) (string, bool) {
	ref := busIf.BusType
	if busIf.AbstractionType != nil {
		ref = *busIf.AbstractionType
	}
	definition, err := e.resolveReference(ref)
	if err != nil {
		log.Ctx(ctx).Warn().Str("interface", busIf.Name).Str("reference", ref.String()).Err(err).
			Msg("unknown reference, interface omitted")
		return "", false
	}
	generator, ok := GeneratorFor(definition)
	if !ok {
		log.Ctx(ctx).Debug().Str("interface", busIf.Name).Str("reference", ref.String()).
			Msg("definition cannot generate, interface omitted")
		return "", false
	}
	cfg := InterfaceParameters(busIf).Merge(ScopedConfig(instance.ConfigurableElementValues, busIf.Name))
	snippet, err := generator.InstanceExpression(cfg, e.Registry)
	if err != nil {
		log.Ctx(ctx).Error().Str("interface", busIf.Name).Err(err).
			Msg("generation failed, interface omitted")
		return "", false
	}
	if snippet == nil {
		log.Ctx(ctx).Debug().Str("interface", busIf.Name).Msg("no generator result, interface omitted")
		return "", false
	}
	if generic, isGeneric := generator.(GenericAbstraction); isGeneric {
		if _, seen := emittedTypes[generic.TypeName()]; !seen {
			emittedTypes[generic.TypeName()] = struct{}{}
			typeDef, err := generator.TypeDefinition("", cfg, e.Registry)
			if err == nil && typeDef != nil {
				unit.AddDeclaration(typeDef.Text)
				unit.AddImports(typeDef.Imports)
			}
		}
	}
	unit.AddImports(snippet.Imports)
	return fmt.Sprintf("  val %s = %s",
		shared.LowerIdentifier(busIf.Name), wrapByMode(busIf.Mode, snippet.Text)), true
}

// wrapByMode applies the interface's role to the bus expression.
// Mirrored and monitor roles keep the bare expression.
func wrapByMode(mode types.InterfaceMode, expr string) string {
	switch mode {
	case types.ModeMaster:
		return fmt.Sprintf("master(%s)", expr)
	case types.ModeSlave:
		return fmt.Sprintf("slave(%s)", expr)
	default:
		return expr
	}
}

// resolveReference resolves a VLNV, falling back to the newest matching
// version when the reference omits one.
func (e Emitter) resolveReference(ref types.VersionedIdentifier) (types.Definition, error) {
	if ref.Version == "" {
		return e.Registry.ResolveNewest(ref.Vendor, ref.Library, ref.Name)
	}
	return e.Registry.Resolve(ref)
}
