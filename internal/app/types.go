package app

type GenerateRequest struct {
	DesignPath  string
	SearchRoots []string
	OutputDir   string
}

type GeneratedUnit struct {
	InstanceName string
	Path         string
}

type GenerateResult struct {
	DesignName string
	Units      []GeneratedUnit
	// Skipped lists instances that produced no unit, with the reason.
	Skipped   []SkippedInstance
	OutputDir string
}

type SkippedInstance struct {
	InstanceName string
	Reason       string
}

type InspectRequest struct {
	SearchRoots []string
}

// RegistryEntry is one registry definition in the inspect summary.
type RegistryEntry struct {
	Identifier string `yaml:"identifier"`
	Kind       string `yaml:"kind"`
}

type InspectResult struct {
	Definitions []RegistryEntry `yaml:"definitions"`
}
