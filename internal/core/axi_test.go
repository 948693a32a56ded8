package core

import (
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/stretchr/testify/require"

	"ipxact-gen/internal/types"
)

func TestAxi4Expression(t *testing.T) {
	generator := NativeAxiMemoryMapped{Identifier: AbstractionAxiMemoryMapped()}
	cfg := Config{
		"protocol":   "AXI4",
		"addr_width": "40",
		"has_burst":  "1",
		"has_wstrb":  "1",
		"has_qos":    "0",
	}
	snippet, err := generator.InstanceExpression(cfg, Registry{})
	require.NoError(t, err)
	require.NotNil(t, snippet)

	require.Contains(t, snippet.Text, "Axi4(Axi4Config(")
	require.Contains(t, snippet.Text, "addressWidth = 40")
	require.Contains(t, snippet.Text, "dataWidth = 32")
	require.Contains(t, snippet.Text, "idWidth = 0")
	require.Contains(t, snippet.Text, "useId = true")
	require.Contains(t, snippet.Text, "useBurst = true")
	require.Contains(t, snippet.Text, "useStrb = true")
	require.Contains(t, snippet.Text, "useQos = false")
	require.Contains(t, snippet.Text, "awUserWidth = 0")
	require.Equal(t, []string{"spinal.lib.bus.amba4.axi._"}, snippet.Imports)
}

func TestAxi4ExpressionIsDeterministic(t *testing.T) {
	generator := NativeAxiMemoryMapped{Identifier: AbstractionAxiMemoryMapped()}
	cfg := Config{"protocol": "axi4", "data_width": "64"}

	first, err := generator.InstanceExpression(cfg, Registry{})
	require.NoError(t, err)
	for i := 0; i < 16; i++ {
		again, err := generator.InstanceExpression(cfg, Registry{})
		require.NoError(t, err)
		require.Equal(t, first.Text, again.Text)
	}
}

func TestAxi4UsesCatalogDefaults(t *testing.T) {
	catalogID := CatalogAxiMemoryMapped()
	registry := Registry{
		catalogID: &types.ParameterAbstractionDefinition{
			Identifier: catalogID,
			Parameters: []types.ParameterAbstraction{
				{LogicalName: "PROTOCOL", Default: "AXI4"},
				{LogicalName: "ID_WIDTH", Default: "4"},
				{LogicalName: "DATA_WIDTH", Default: "32"},
			},
		},
	}
	generator := NativeAxiMemoryMapped{Identifier: AbstractionAxiMemoryMapped()}

	// Instance config overrides the catalog where both speak.
	snippet, err := generator.InstanceExpression(Config{"data_width": "128"}, registry)
	require.NoError(t, err)
	require.Contains(t, snippet.Text, "idWidth = 4")
	require.Contains(t, snippet.Text, "dataWidth = 128")
}

func TestAxiRequiresProtocol(t *testing.T) {
	generator := NativeAxiMemoryMapped{Identifier: AbstractionAxiMemoryMapped()}
	_, err := generator.InstanceExpression(NewConfig(), Registry{})
	require.Error(t, err)
	require.Equal(t, errbuilder.CodeFailedPrecondition, errbuilder.CodeOf(err))
}

func TestAxi3IsRejectedExplicitly(t *testing.T) {
	generator := NativeAxiMemoryMapped{Identifier: AbstractionAxiMemoryMapped()}
	_, err := generator.InstanceExpression(Config{"protocol": "AXI3"}, Registry{})
	require.Error(t, err)
	require.Equal(t, errbuilder.CodeFailedPrecondition, errbuilder.CodeOf(err))
	require.Contains(t, err.Error(), "AXI3")
}

func TestUnknownAxiProtocolIsSkipped(t *testing.T) {
	generator := NativeAxiMemoryMapped{Identifier: AbstractionAxiMemoryMapped()}
	snippet, err := generator.InstanceExpression(Config{"protocol": "AXI4LITE"}, Registry{})
	require.NoError(t, err)
	require.Nil(t, snippet)
}

func TestAxiMemoryMappedHasNoTypeDefinition(t *testing.T) {
	generator := NativeAxiMemoryMapped{Identifier: AbstractionAxiMemoryMapped()}
	snippet, err := generator.TypeDefinition("", Config{"protocol": "AXI4"}, Registry{})
	require.NoError(t, err)
	require.Nil(t, snippet)
}

func TestAxiStreamExpression(t *testing.T) {
	generator := NativeAxiStream{Identifier: AbstractionAxiStream()}
	cfg := Config{
		"tdata_num_bytes": "8",
		"tid_width":       "2",
		"has_tlast":       "1",
		"has_tkeep":       "0",
	}
	snippet, err := generator.InstanceExpression(cfg, Registry{})
	require.NoError(t, err)

	require.Contains(t, snippet.Text, "Axi4Stream(Axi4StreamConfig(")
	require.Contains(t, snippet.Text, "dataWidth = 8")
	require.Contains(t, snippet.Text, "idWidth = 2")
	require.Contains(t, snippet.Text, "destWidth = 0")
	require.Contains(t, snippet.Text, "useLast = true")
	require.Contains(t, snippet.Text, "useKeep = false")
	require.Contains(t, snippet.Text, "useId = true")
	require.Contains(t, snippet.Text, "useDest = true")
	require.Contains(t, snippet.Text, "useUser = true")
	require.Equal(t, []string{"spinal.lib.bus.amba4.axis._"}, snippet.Imports)
}

func TestAxiStreamDefaults(t *testing.T) {
	generator := NativeAxiStream{Identifier: AbstractionAxiStream()}
	snippet, err := generator.InstanceExpression(NewConfig(), Registry{})
	require.NoError(t, err)
	require.Contains(t, snippet.Text, "dataWidth = 4")
}

func TestAxiStreamWithoutTReadyFails(t *testing.T) {
	generator := NativeAxiStream{Identifier: AbstractionAxiStream()}
	_, err := generator.InstanceExpression(Config{"has_tready": "0"}, Registry{})
	require.Error(t, err)
	require.Equal(t, errbuilder.CodeFailedPrecondition, errbuilder.CodeOf(err))
	require.Contains(t, err.Error(), "TREADY")
}

func TestAxiStreamExplicitTReadyPasses(t *testing.T) {
	generator := NativeAxiStream{Identifier: AbstractionAxiStream()}
	snippet, err := generator.InstanceExpression(Config{"has_tready": "1"}, Registry{})
	require.NoError(t, err)
	require.NotNil(t, snippet)
}

func TestFlagValue(t *testing.T) {
	cfg := Config{"on": "1", "off": "0", "junk": "yes"}
	require.Equal(t, "true", flagValue(cfg, "on"))
	require.Equal(t, "false", flagValue(cfg, "off"))
	require.Equal(t, "false", flagValue(cfg, "junk"))
	require.Equal(t, "false", flagValue(cfg, "absent"))
}
