package ports

// OutputWriterPort persists generated source units.
type OutputWriterPort interface {
	// WriteUnit writes one generated text unit under the given file name
	// and returns the full path written.
	WriteUnit(name string, content string) (string, error)
}
