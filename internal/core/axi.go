package core

import (
	"fmt"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"ipxact-gen/internal/types"
)

// NativeAxiMemoryMapped is the hand-written generator for the AXI
// memory-mapped interface. It replaces the schema-derived abstraction so
// that known-protocol output is idiomatic and parameter-aware instead of
// a flat port bundle.
type NativeAxiMemoryMapped struct {
	Identifier types.VersionedIdentifier
}

func (g NativeAxiMemoryMapped) DefinitionIdentifier() types.VersionedIdentifier {
	return g.Identifier
}

// Constructor argument order is fixed; emitted output must not depend on
// map iteration order.
var axi4ArgOrder = []string{
	"addressWidth", "dataWidth", "idWidth", "useId",
	"useBurst", "useLock", "useCache", "useRegion", "useProt",
	"useQos", "useStrb", "useWriteResp", "useReadResp",
	"awUserWidth", "arUserWidth", "wUserWidth", "rUserWidth",
}

// axi4Flags maps the vendor's boolean feature parameters to constructor
// argument names. Values translate "1" to true and anything else to
// false.
var axi4Flags = []struct {
	key string
	arg string
}{
	{"has_burst", "useBurst"},
	{"has_lock", "useLock"},
	{"has_cache", "useCache"},
	{"has_region", "useRegion"},
	{"has_prot", "useProt"},
	{"has_qos", "useQos"},
	{"has_wstrb", "useStrb"},
	{"has_bresp", "useWriteResp"},
	{"has_rresp", "useReadResp"},
}

var axi4UserWidths = []struct {
	key string
	arg string
}{
	{"awuser_width", "awUserWidth"},
	{"aruser_width", "arUserWidth"},
	{"wuser_width", "wUserWidth"},
	{"ruser_width", "rUserWidth"},
}

func (g NativeAxiMemoryMapped) InstanceExpression(cfg Config, registry Registry) (*Snippet, error) {
	merged := CatalogDefaults(registry, CatalogAxiMemoryMapped()).Merge(cfg)
	protocol, ok := merged.Get("protocol")
	if !ok || strings.TrimSpace(protocol) == "" {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeFailedPrecondition).
			WithMsg("AXI interface configuration lacks mandatory protocol key")
	}
	switch strings.ToLower(strings.TrimSpace(protocol)) {
	case "axi4":
		return g.axi4Expression(merged), nil
	case "axi3":
		// Refusing loudly beats emitting AXI4 wiring for an AXI3 bus.
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeFailedPrecondition).
			WithMsg("AXI3 generation is not supported")
	default:
		return nil, nil
	}
}

func (g NativeAxiMemoryMapped) axi4Expression(cfg Config) *Snippet {
	values := map[string]string{
		"addressWidth": cfg.GetDefault("addr_width", "32"),
		"dataWidth":    cfg.GetDefault("data_width", "32"),
		"idWidth":      cfg.GetDefault("id_width", "0"),
		// The generated bus always carries transaction ids.
		"useId": "true",
	}
	for _, flag := range axi4Flags {
		values[flag.arg] = flagValue(cfg, flag.key)
	}
	for _, width := range axi4UserWidths {
		values[width.arg] = cfg.GetDefault(width.key, "0")
	}
	return &Snippet{
		Text:    fmt.Sprintf("Axi4(Axi4Config(%s))", argList(axi4ArgOrder, values)),
		Imports: []string{"spinal.lib.bus.amba4.axi._"},
	}
}

func (g NativeAxiMemoryMapped) TypeDefinition(indent string, cfg Config, registry Registry) (*Snippet, error) {
	// The bus type comes from the target library; no standalone
	// declaration is emitted.
	return nil, nil
}

// NativeAxiStream is the hand-written generator for the AXI-Stream
// interface.
type NativeAxiStream struct {
	Identifier types.VersionedIdentifier
}

func (g NativeAxiStream) DefinitionIdentifier() types.VersionedIdentifier {
	return g.Identifier
}

var axisArgOrder = []string{
	"dataWidth", "idWidth", "destWidth", "userWidth",
	"useStrb", "useKeep", "useLast", "useId", "useDest", "useUser",
}

var axisFlags = []struct {
	key string
	arg string
}{
	{"has_tstrb", "useStrb"},
	{"has_tkeep", "useKeep"},
	{"has_tlast", "useLast"},
}

func (g NativeAxiStream) InstanceExpression(cfg Config, registry Registry) (*Snippet, error) {
	merged := CatalogDefaults(registry, CatalogAxiStream()).Merge(cfg)
	if merged.GetDefault("has_tready", "1") != "1" {
		// A stream without a full ready/valid handshake would silently
		// change flow-control semantics in the generated hardware.
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeFailedPrecondition).
			WithMsg("AXI-Stream without TREADY is not supported")
	}
	values := map[string]string{
		"dataWidth": merged.GetDefault("tdata_num_bytes", "4"),
		"idWidth":   merged.GetDefault("tid_width", "0"),
		"destWidth": merged.GetDefault("tdest_width", "0"),
		"userWidth": merged.GetDefault("tuser_width", "0"),
		"useId":     "true",
		"useDest":   "true",
		"useUser":   "true",
	}
	for _, flag := range axisFlags {
		values[flag.arg] = flagValue(merged, flag.key)
	}
	return &Snippet{
		Text:    fmt.Sprintf("Axi4Stream(Axi4StreamConfig(%s))", argList(axisArgOrder, values)),
		Imports: []string{"spinal.lib.bus.amba4.axis._"},
	}, nil
}

func (g NativeAxiStream) TypeDefinition(indent string, cfg Config, registry Registry) (*Snippet, error) {
	return nil, nil
}

func flagValue(cfg Config, key string) string {
	if cfg.GetDefault(key, "0") == "1" {
		return "true"
	}
	return "false"
}
