package core

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"ipxact-gen/internal/shared"
	"ipxact-gen/internal/types"
)

// Snippet is one piece of generated text together with the imports it
// needs. Imports are merged and deduplicated at the unit level.
type Snippet struct {
	Text    string
	Imports []string
}

// BusGenerator is the generation capability shared by every abstraction
// variant, schema-derived or native. Both operations may return a nil
// snippet with a nil error, meaning this bus cannot be generated and the
// caller should skip it rather than fail the run.
type BusGenerator interface {
	// InstanceExpression produces the expression instantiating the bus
	// for one configured interface.
	InstanceExpression(cfg Config, registry Registry) (*Snippet, error)

	// TypeDefinition produces a standalone type declaration for the bus,
	// indented by indent, when the variant needs one.
	TypeDefinition(indent string, cfg Config, registry Registry) (*Snippet, error)
}

// GeneratorFor adapts a resolved definition to the generation
// capability. Definitions that cannot generate (bus definitions,
// parameter catalogs, components) yield false.
func GeneratorFor(definition types.Definition) (BusGenerator, bool) {
	switch def := definition.(type) {
	case BusGenerator:
		return def, true
	case *types.AbstractionDefinition:
		return GenericAbstraction{Def: def}, true
	default:
		return nil, false
	}
}

// GenericAbstraction is the fallback generator for arbitrary or custom
// buses: it derives a bundle type directly from the schema-described
// port set and ignores configuration entirely.
type GenericAbstraction struct {
	Def *types.AbstractionDefinition
}

func (g GenericAbstraction) DefinitionIdentifier() types.VersionedIdentifier {
	return g.Def.Identifier
}

// TypeName is the emitted bundle type name derived from the abstraction
// identifier.
func (g GenericAbstraction) TypeName() string {
	return shared.UpperCamel(g.Def.Identifier.Name)
}

func (g GenericAbstraction) InstanceExpression(cfg Config, registry Registry) (*Snippet, error) {
	return &Snippet{
		Text:    fmt.Sprintf("new %s()", g.TypeName()),
		Imports: []string{"spinal.core._", "spinal.lib._"},
	}, nil
}

func (g GenericAbstraction) TypeDefinition(indent string, cfg Config, registry Registry) (*Snippet, error) {
	var fields []string
	for _, port := range g.Def.Ports {
		view, ok := port.MasterView()
		if !ok {
			continue
		}
		fields = append(fields, fmt.Sprintf("%s  val %s = %s",
			indent, shared.LowerIdentifier(port.LogicalName), fieldType(view)))
	}
	var builder strings.Builder
	fmt.Fprintf(&builder, "%sclass %s extends Bundle {\n", indent, g.TypeName())
	builder.WriteString(strings.Join(fields, "\n"))
	if len(fields) > 0 {
		builder.WriteString("\n")
	}
	builder.WriteString(indent + "}")
	return &Snippet{
		Text:    builder.String(),
		Imports: []string{"spinal.core._"},
	}, nil
}

func fieldType(view types.WirePort) string {
	payload := "Bool()"
	if view.Width != nil {
		payload = fmt.Sprintf("Bits(%d bits)", *view.Width)
	}
	switch view.Direction {
	case types.DirectionIn:
		return "in " + payload
	case types.DirectionOut:
		return "out " + payload
	case types.DirectionInOut:
		return "inout " + payload
	default:
		return payload
	}
}

// GenericVector generates clock/reset/interrupt style signals as a bare
// sized bit vector with no directionality. A missing portwidth means a
// zero-width vector.
type GenericVector struct {
	Identifier types.VersionedIdentifier
}

func (g GenericVector) DefinitionIdentifier() types.VersionedIdentifier { return g.Identifier }

func (g GenericVector) InstanceExpression(cfg Config, registry Registry) (*Snippet, error) {
	width, err := vectorWidth(cfg)
	if err != nil {
		return nil, err
	}
	return &Snippet{
		Text:    fmt.Sprintf("Bits(%d bits)", width),
		Imports: []string{"spinal.core._"},
	}, nil
}

func (g GenericVector) TypeDefinition(indent string, cfg Config, registry Registry) (*Snippet, error) {
	snippet, err := g.InstanceExpression(cfg, registry)
	if err != nil {
		return nil, err
	}
	snippet.Text = indent + snippet.Text
	return snippet, nil
}

func vectorWidth(cfg Config) (int, error) {
	raw, ok := cfg.Get("portwidth")
	if !ok || strings.TrimSpace(raw) == "" {
		return 0, nil
	}
	width, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("portwidth is not an integer: %q", raw)).
			WithCause(err)
	}
	return width, nil
}

// argList renders named constructor arguments in the given fixed order
// so emitted output is deterministic.
func argList(order []string, values map[string]string) string {
	parts := make([]string, 0, len(order))
	for _, name := range order {
		parts = append(parts, fmt.Sprintf("%s = %s", name, values[name]))
	}
	return strings.Join(parts, ", ")
}

func sortedImports(imports map[string]struct{}) []string {
	out := make([]string, 0, len(imports))
	for name := range imports {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
