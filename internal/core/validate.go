package core

import (
	"context"
	"fmt"

	assert "github.com/ZanzyTHEbar/assert-lib"
	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"ipxact-gen/internal/types"
)

type DesignValidator struct{}

func NewDesignValidator() DesignValidator {
	return DesignValidator{}
}

// ValidateDesign checks the top-level design document before emission
// starts. Emission-time problems (unknown references, unsupported
// protocols) are handled per interface; this only rejects designs that
// cannot drive generation at all.
func (v DesignValidator) ValidateDesign(ctx context.Context, design *types.Design) error {
	if design == nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("design is nil")
	}
	assert.NotEmpty(ctx, design.Identifier.Name, "design name must be set")
	if design.Identifier.IsZero() {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("design lacks an identifier")
	}
	if len(design.ComponentInstances) == 0 {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("design has no component instances")
	}
	seen := map[string]struct{}{}
	for _, instance := range design.ComponentInstances {
		if instance.InstanceName == "" {
			return errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg("component instance lacks a name")
		}
		if _, dup := seen[instance.InstanceName]; dup {
			return errbuilder.New().
				WithCode(errbuilder.CodeAlreadyExists).
				WithMsg(fmt.Sprintf("duplicate instance name: %s", instance.InstanceName))
		}
		seen[instance.InstanceName] = struct{}{}
		if instance.ComponentRef.IsZero() {
			return errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("instance %s lacks a component reference", instance.InstanceName))
		}
	}
	log.Ctx(ctx).Debug().Str("design", design.Identifier.Name).Msg("design validated")
	return nil
}
