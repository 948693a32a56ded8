package types

import "math/big"

// Definition is the set of values a registry can hold: the parsed
// entities below plus the native generators registered by the override
// step. Entities refer to each other only through identifiers, never by
// direct pointer, so the parsed object graph stays acyclic. Call sites
// dispatch over the concrete variants with a type switch.
type Definition interface {
	DefinitionIdentifier() VersionedIdentifier
}

// BusDefinition describes a bus protocol independent of any port set.
type BusDefinition struct {
	Identifier          VersionedIdentifier
	DirectionConnection bool
	Addressable         bool
	Extends             []VersionedIdentifier
	// MaxMasters and MaxSlaves default to -1 meaning unbounded.
	MaxMasters int
	MaxSlaves  int
}

func (d *BusDefinition) DefinitionIdentifier() VersionedIdentifier { return d.Identifier }

// WirePort is one side's view of a logical port: whether it must exist,
// how wide it is, and which way data flows.
type WirePort struct {
	Presence  Presence
	Width     *int
	Direction Direction
}

// Port is one logical port of an abstraction definition.
type Port struct {
	LogicalName  string
	DisplayName  string
	Description  string
	Qualifier    Qualifier
	Style        PortStyle
	OnMaster     *WirePort
	OnSlave      *WirePort
	DefaultValue *big.Int
}

// MasterView resolves the master-oriented direction and width of the
// port: the master-side spec wins; otherwise the slave-side spec is used
// with its direction inverted, so an abstraction defined only from the
// slave's perspective still yields a master-oriented declaration. The
// second return is false when neither side resolves a direction or a
// width, in which case the port is excluded from generation.
func (p Port) MasterView() (WirePort, bool) {
	if p.OnMaster != nil && (p.OnMaster.Direction != DirectionNone || p.OnMaster.Width != nil) {
		return *p.OnMaster, true
	}
	if p.OnSlave != nil && (p.OnSlave.Direction != DirectionNone || p.OnSlave.Width != nil) {
		view := *p.OnSlave
		view.Direction = view.Direction.Invert()
		return view, true
	}
	return WirePort{}, false
}

// AbstractionDefinition describes the logical port set of a bus protocol.
type AbstractionDefinition struct {
	Identifier VersionedIdentifier
	BusType    VersionedIdentifier
	Extends    []VersionedIdentifier
	Ports      []Port
}

func (d *AbstractionDefinition) DefinitionIdentifier() VersionedIdentifier { return d.Identifier }

// PortMap binds one logical port of the abstraction to a physical port of
// the component.
type PortMap struct {
	LogicalPort  string
	PhysicalPort string
}

// Parameter is a vendor name/value pair attached to a bus interface.
type Parameter struct {
	Name  string
	Value string
}

// BusInterface is a named attachment point on a component binding a bus
// type, an optional abstraction type, and a mode.
type BusInterface struct {
	Name               string
	BusType            VersionedIdentifier
	AbstractionType    *VersionedIdentifier
	Mode               InterfaceMode
	ConnectionRequired bool
	PortMaps           []PortMap
	Parameters         []Parameter
}

// Component is a piece of IP. Only bus interfaces carry behavior in this
// model; the schema's other component substructures are not represented.
type Component struct {
	Identifier    VersionedIdentifier
	BusInterfaces []BusInterface
}

func (d *Component) DefinitionIdentifier() VersionedIdentifier { return d.Identifier }

// ConfigurableElementValue is one instance-specific configuration
// override, keyed by a vendor-defined free-form reference id that is
// matched case-insensitively later.
type ConfigurableElementValue struct {
	ReferenceID string
	Value       string
}

// ComponentInstance is one placement of a component within a design.
type ComponentInstance struct {
	InstanceName              string
	ComponentRef              VersionedIdentifier
	ConfigurableElementValues []ConfigurableElementValue
}

// Design is the top-level parse unit for a complete hardware
// configuration.
type Design struct {
	Identifier         VersionedIdentifier
	ComponentInstances []ComponentInstance
}

func (d *Design) DefinitionIdentifier() VersionedIdentifier { return d.Identifier }

// ParameterAbstraction supplies the default value for one logical
// parameter of a protocol's parameter catalog.
type ParameterAbstraction struct {
	LogicalName string
	Format      string
	Default     string
	Provider    string
	Required    bool
	Usage       string
	Permission  string
}

// ParameterAbstractionDefinition is the vendor catalog of parameter
// defaults for one protocol, registered under a fixed per-protocol
// identifier distinct from the protocol's interface abstraction.
type ParameterAbstractionDefinition struct {
	Identifier VersionedIdentifier
	Parameters []ParameterAbstraction
}

func (d *ParameterAbstractionDefinition) DefinitionIdentifier() VersionedIdentifier {
	return d.Identifier
}
