package core

import (
	"strings"

	"ipxact-gen/internal/types"
)

// Config is a case-insensitive parameter mapping. Keys are lowercased on
// insert so lookups never depend on the casing vendors happen to use in
// their reference ids.
type Config map[string]string

func NewConfig() Config {
	return Config{}
}

func (c Config) Set(key, value string) {
	c[strings.ToLower(strings.TrimSpace(key))] = value
}

func (c Config) Get(key string) (string, bool) {
	value, ok := c[strings.ToLower(strings.TrimSpace(key))]
	return value, ok
}

// GetDefault returns the value for key or fallback when absent.
func (c Config) GetDefault(key, fallback string) string {
	if value, ok := c.Get(key); ok {
		return value
	}
	return fallback
}

// Merge returns a new config holding defaults overlaid with overrides.
// Right-biased: for a key present in both, the override value wins.
func (c Config) Merge(overrides Config) Config {
	out := make(Config, len(c)+len(overrides))
	for key, value := range c {
		out[key] = value
	}
	for key, value := range overrides {
		out[key] = value
	}
	return out
}

const scopePrefix = "busifparam_value."

// ScopedConfig derives the sub-configuration belonging to one bus
// interface from an instance's flat configuration values. A key
// contributes only when it matches BUSIFPARAM_VALUE.<interfaceName>.
// case-insensitively with an exact segment boundary; the matched prefix
// is stripped. One instance can therefore carry configuration for many
// interfaces without collision.
func ScopedConfig(values []types.ConfigurableElementValue, interfaceName string) Config {
	prefix := scopePrefix + strings.ToLower(strings.TrimSpace(interfaceName)) + "."
	cfg := NewConfig()
	for _, value := range values {
		key := strings.ToLower(strings.TrimSpace(value.ReferenceID))
		if !strings.HasPrefix(key, prefix) {
			continue
		}
		remainder := key[len(prefix):]
		if remainder == "" {
			continue
		}
		cfg.Set(remainder, value.Value)
	}
	return cfg
}

// InterfaceParameters lifts a bus interface's own vendor parameters into
// a config. These rank below instance-supplied values when merged.
func InterfaceParameters(busIf types.BusInterface) Config {
	cfg := NewConfig()
	for _, parameter := range busIf.Parameters {
		if parameter.Name == "" {
			continue
		}
		cfg.Set(parameter.Name, parameter.Value)
	}
	return cfg
}

// CatalogDefaults extracts the logical-name to default-value mapping
// from the parameter abstraction catalog registered under id. A missing
// or wrongly-typed entry yields an empty config: the merge then degrades
// to instance configuration only.
func CatalogDefaults(registry Registry, id types.VersionedIdentifier) Config {
	cfg := NewConfig()
	definition, err := registry.Resolve(id)
	if err != nil {
		return cfg
	}
	catalog, ok := definition.(*types.ParameterAbstractionDefinition)
	if !ok {
		return cfg
	}
	for _, parameter := range catalog.Parameters {
		cfg.Set(parameter.LogicalName, parameter.Default)
	}
	return cfg
}
