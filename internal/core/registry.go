package core

import (
	"context"
	"fmt"

	"github.com/ZanzyTHEbar/errbuilder-go"
	debversion "github.com/knqyf263/go-deb-version"
	"github.com/rs/zerolog/log"

	"ipxact-gen/internal/ports"
	"ipxact-gen/internal/types"
)

// Registry maps a versioned identifier to the definition it names. It is
// built once from a file corpus, rewritten once by Override, and treated
// as immutable afterwards.
type Registry map[types.VersionedIdentifier]types.Definition

// LoadRegistry parses every file and indexes the results by identifier.
// Parse failures and foreign documents are skipped; the run continues.
// A duplicate identifier keeps the last-parsed value, so with a fixed
// input order the result is deterministic. The deliberate use of this is
// the override step, which replaces well-known entries wholesale.
func LoadRegistry(ctx context.Context, loader ports.DocumentLoaderPort, paths []string) Registry {
	registry := Registry{}
	for _, path := range paths {
		root, err := loader.LoadDocument(path)
		if err != nil {
			log.Ctx(ctx).Warn().Str("file", path).Err(err).Msg("skipping unreadable document")
			continue
		}
		definition, err := ParseDocument(root)
		if err != nil {
			log.Ctx(ctx).Warn().Str("file", path).Err(err).Msg("skipping malformed document")
			continue
		}
		if definition == nil {
			continue
		}
		id := definition.DefinitionIdentifier()
		if id.IsZero() {
			continue
		}
		if _, exists := registry[id]; exists {
			log.Ctx(ctx).Debug().Str("identifier", id.String()).Str("file", path).Msg("duplicate identifier, last definition wins")
		}
		registry[id] = definition
	}
	log.Ctx(ctx).Debug().Int("definitions", len(registry)).Msg("registry loaded")
	return registry
}

// Override returns a new registry with exactly the listed keys replaced
// and everything else unchanged. Applying the same mapping twice yields
// the same registry.
func (r Registry) Override(overrides map[types.VersionedIdentifier]types.Definition) Registry {
	out := make(Registry, len(r)+len(overrides))
	for id, definition := range r {
		out[id] = definition
	}
	for id, replacement := range overrides {
		out[id] = replacement
	}
	return out
}

// Resolve looks up a definition by its full identifier.
func (r Registry) Resolve(id types.VersionedIdentifier) (types.Definition, error) {
	definition, ok := r[id]
	if !ok {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg(fmt.Sprintf("unknown reference: %s", id))
	}
	return definition, nil
}

// ResolveNewest picks the highest-versioned definition matching vendor,
// library and name. Used when a reference omits its version. Versions
// are ordered with Debian version semantics, falling back to plain
// string comparison when a version does not parse.
func (r Registry) ResolveNewest(vendor, library, name string) (types.Definition, error) {
	var best types.Definition
	var bestVersion string
	for id, definition := range r {
		if id.Vendor != vendor || id.Library != library || id.Name != name {
			continue
		}
		if best == nil || versionLess(bestVersion, id.Version) {
			best = definition
			bestVersion = id.Version
		}
	}
	if best == nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg(fmt.Sprintf("unknown reference: %s:%s:%s", vendor, library, name))
	}
	return best, nil
}

func versionLess(a, b string) bool {
	left, errA := debversion.NewVersion(a)
	right, errB := debversion.NewVersion(b)
	if errA != nil || errB != nil {
		return a < b
	}
	return left.LessThan(right)
}
