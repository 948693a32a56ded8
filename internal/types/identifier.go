package types

import (
	"fmt"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
)

// VersionedIdentifier is the four-part VLNV key (vendor, library, name,
// version) that identifies every top-level metadata definition and every
// cross-document reference to one. It is a comparable struct so it can be
// used directly as a registry map key.
type VersionedIdentifier struct {
	Vendor  string
	Library string
	Name    string
	Version string
}

// NewIdentifier builds a VersionedIdentifier from its four parts with
// surrounding whitespace trimmed.
func NewIdentifier(vendor, library, name, version string) VersionedIdentifier {
	return VersionedIdentifier{
		Vendor:  strings.TrimSpace(vendor),
		Library: strings.TrimSpace(library),
		Name:    strings.TrimSpace(name),
		Version: strings.TrimSpace(version),
	}
}

// ParseIdentifier parses the canonical colon-separated VLNV form
// "vendor:library:name:version".
func ParseIdentifier(value string) (VersionedIdentifier, error) {
	parts := strings.Split(strings.TrimSpace(value), ":")
	if len(parts) != 4 {
		return VersionedIdentifier{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("identifier must have four colon-separated parts: %s", value))
	}
	return NewIdentifier(parts[0], parts[1], parts[2], parts[3]), nil
}

func (id VersionedIdentifier) String() string {
	return fmt.Sprintf("%s:%s:%s:%s", id.Vendor, id.Library, id.Name, id.Version)
}

// IsZero reports whether all four parts are empty, meaning the entity that
// carried it has no usable identity and must not enter the registry.
func (id VersionedIdentifier) IsZero() bool {
	return id.Vendor == "" && id.Library == "" && id.Name == "" && id.Version == ""
}

// WithoutVersion returns a copy with the version part cleared, used for
// newest-version lookups when a reference omits its version.
func (id VersionedIdentifier) WithoutVersion() VersionedIdentifier {
	id.Version = ""
	return id
}
