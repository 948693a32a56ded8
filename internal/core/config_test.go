package core

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"ipxact-gen/internal/types"
)

func TestConfigKeysAreCaseInsensitive(t *testing.T) {
	cfg := NewConfig()
	cfg.Set("DATA_WIDTH", "64")

	value, ok := cfg.Get("data_width")
	require.True(t, ok)
	require.Equal(t, "64", value)

	value, ok = cfg.Get(" Data_Width ")
	require.True(t, ok)
	require.Equal(t, "64", value)
}

func TestMergeIsRightBiased(t *testing.T) {
	defaults := Config{"protocol": "axi4", "data_width": "32"}
	overrides := Config{"data_width": "64"}

	merged := defaults.Merge(overrides)
	want := Config{"protocol": "axi4", "data_width": "64"}
	if diff := cmp.Diff(want, merged); diff != "" {
		t.Fatalf("unexpected merge result (-want +got):\n%s", diff)
	}

	// Inputs stay untouched.
	require.Equal(t, "32", defaults["data_width"])
}

func TestScopedConfigExtractsOneInterface(t *testing.T) {
	values := []types.ConfigurableElementValue{
		{ReferenceID: "BUSIFPARAM_VALUE.M_AXI.DATA_WIDTH", Value: "64"},
		{ReferenceID: "busifparam_value.m_axi.protocol", Value: "AXI4"},
		{ReferenceID: "BUSIFPARAM_VALUE.S_AXI.DATA_WIDTH", Value: "128"},
		{ReferenceID: "SOMETHING_ELSE.M_AXI.DATA_WIDTH", Value: "8"},
	}
	cfg := ScopedConfig(values, "M_AXI")
	want := Config{"data_width": "64", "protocol": "AXI4"}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Fatalf("unexpected scoped config (-want +got):\n%s", diff)
	}
}

// M_AXI must not swallow keys scoped to M_AXI2: the interface name
// match needs an exact segment boundary.
func TestScopedConfigRespectsSegmentBoundary(t *testing.T) {
	values := []types.ConfigurableElementValue{
		{ReferenceID: "BUSIFPARAM_VALUE.M_AXI2.DATA_WIDTH", Value: "128"},
	}
	cfg := ScopedConfig(values, "M_AXI")
	require.Empty(t, cfg)

	cfg = ScopedConfig(values, "M_AXI2")
	require.Equal(t, "128", cfg.GetDefault("data_width", ""))
}

func TestScopedConfigDropsEmptyRemainder(t *testing.T) {
	values := []types.ConfigurableElementValue{
		{ReferenceID: "BUSIFPARAM_VALUE.M_AXI.", Value: "x"},
	}
	require.Empty(t, ScopedConfig(values, "M_AXI"))
}

func TestInterfaceParameters(t *testing.T) {
	busIf := types.BusInterface{
		Parameters: []types.Parameter{
			{Name: "PROTOCOL", Value: "AXI4"},
			{Name: "", Value: "ignored"},
		},
	}
	cfg := InterfaceParameters(busIf)
	require.Equal(t, Config{"protocol": "AXI4"}, cfg)
}

func TestCatalogDefaults(t *testing.T) {
	id := CatalogAxiMemoryMapped()
	registry := Registry{
		id: &types.ParameterAbstractionDefinition{
			Identifier: id,
			Parameters: []types.ParameterAbstraction{
				{LogicalName: "PROTOCOL", Default: "AXI4"},
				{LogicalName: "DATA_WIDTH", Default: "32"},
			},
		},
	}
	cfg := CatalogDefaults(registry, id)
	require.Equal(t, "AXI4", cfg.GetDefault("protocol", ""))
	require.Equal(t, "32", cfg.GetDefault("data_width", ""))
}

func TestCatalogDefaultsMissingOrWrongKind(t *testing.T) {
	id := CatalogAxiMemoryMapped()
	require.Empty(t, CatalogDefaults(Registry{}, id))

	registry := Registry{id: &types.BusDefinition{Identifier: id}}
	require.Empty(t, CatalogDefaults(registry, id))
}
