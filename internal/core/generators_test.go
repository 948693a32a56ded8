package core

import (
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/stretchr/testify/require"

	"ipxact-gen/internal/types"
)

func wirePort(direction types.Direction, width int) *types.WirePort {
	return &types.WirePort{Direction: direction, Width: &width}
}

func TestGeneratorForDispatch(t *testing.T) {
	native := NativeAxiMemoryMapped{Identifier: AbstractionAxiMemoryMapped()}
	generator, ok := GeneratorFor(native)
	require.True(t, ok)
	require.Equal(t, native, generator)

	abstraction := &types.AbstractionDefinition{
		Identifier: types.NewIdentifier("v", "l", "custom_rtl", "1.0"),
	}
	generator, ok = GeneratorFor(abstraction)
	require.True(t, ok)
	require.IsType(t, GenericAbstraction{}, generator)

	_, ok = GeneratorFor(&types.BusDefinition{})
	require.False(t, ok)
	_, ok = GeneratorFor(&types.Component{})
	require.False(t, ok)
}

func TestGenericAbstractionInstanceExpression(t *testing.T) {
	generic := GenericAbstraction{Def: &types.AbstractionDefinition{
		Identifier: types.NewIdentifier("v", "l", "my-custom.bus_rtl", "1.0"),
	}}
	snippet, err := generic.InstanceExpression(NewConfig(), Registry{})
	require.NoError(t, err)
	require.Equal(t, "new MyCustomBusRtl()", snippet.Text)
}

func TestGenericAbstractionTypeDefinition(t *testing.T) {
	generic := GenericAbstraction{Def: &types.AbstractionDefinition{
		Identifier: types.NewIdentifier("v", "l", "simple_rtl", "1.0"),
		Ports: []types.Port{
			{LogicalName: "ADDR", Style: types.StyleWire, OnMaster: wirePort(types.DirectionOut, 32)},
			{LogicalName: "READY", Style: types.StyleWire, OnSlave: &types.WirePort{Direction: types.DirectionOut}},
			{LogicalName: "UNRESOLVED", Style: types.StyleWire},
		},
	}}
	snippet, err := generic.TypeDefinition("", NewConfig(), Registry{})
	require.NoError(t, err)

	want := "class SimpleRtl extends Bundle {\n" +
		"  val addr = out Bits(32 bits)\n" +
		"  val ready = in Bool()\n" +
		"}"
	require.Equal(t, want, snippet.Text)
}

func TestGenericVectorWidths(t *testing.T) {
	vector := GenericVector{Identifier: AbstractionClock()}
	tests := []struct {
		name string
		cfg  Config
		want string
	}{
		{"empty config", NewConfig(), "Bits(0 bits)"},
		{"explicit width", Config{"portwidth": "8"}, "Bits(8 bits)"},
		{"blank width", Config{"portwidth": "  "}, "Bits(0 bits)"},
	}
	for _, tt := range tests {
		snippet, err := vector.InstanceExpression(tt.cfg, Registry{})
		require.NoError(t, err, tt.name)
		require.Equal(t, tt.want, snippet.Text, tt.name)
	}
}

func TestGenericVectorRejectsNonNumericWidth(t *testing.T) {
	vector := GenericVector{Identifier: AbstractionReset()}
	_, err := vector.InstanceExpression(Config{"portwidth": "wide"}, Registry{})
	require.Error(t, err)
	require.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err))
}

func TestGenericVectorTypeDefinitionIndents(t *testing.T) {
	vector := GenericVector{Identifier: AbstractionInterrupt()}
	snippet, err := vector.TypeDefinition("    ", Config{"portwidth": "4"}, Registry{})
	require.NoError(t, err)
	require.Equal(t, "    Bits(4 bits)", snippet.Text)
}

func TestArgListKeepsOrder(t *testing.T) {
	rendered := argList([]string{"b", "a"}, map[string]string{"a": "1", "b": "2"})
	require.Equal(t, "b = 2, a = 1", rendered)
}
