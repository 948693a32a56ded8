package types

// InterfaceMode is the role a bus interface plays on its component,
// determined by which single child tag is present under the interface's
// mode element.
type InterfaceMode string

const (
	ModeMaster         InterfaceMode = "master"
	ModeSlave          InterfaceMode = "slave"
	ModeSystem         InterfaceMode = "system"
	ModeMirroredMaster InterfaceMode = "mirroredMaster"
	ModeMirroredSlave  InterfaceMode = "mirroredSlave"
	ModeMirroredSystem InterfaceMode = "mirroredSystem"
	ModeMonitor        InterfaceMode = "monitor"
)

// PortStyle distinguishes wire-level ports from transactional ones.
type PortStyle string

const (
	StyleWire          PortStyle = "wire"
	StyleTransactional PortStyle = "transactional"
)

// Direction is the data flow direction of a wire port as seen from the
// side that declares it.
type Direction string

const (
	DirectionNone  Direction = ""
	DirectionIn    Direction = "in"
	DirectionOut   Direction = "out"
	DirectionInOut Direction = "inout"
)

// Invert swaps In and Out; InOut and the empty direction are unchanged.
// Used when deriving a master-oriented view from a slave-side spec.
func (d Direction) Invert() Direction {
	switch d {
	case DirectionIn:
		return DirectionOut
	case DirectionOut:
		return DirectionIn
	default:
		return d
	}
}

// Presence states whether a logical port must, may, or must not appear on
// a given side of the bus.
type Presence string

const (
	PresenceRequired Presence = "required"
	PresenceIllegal  Presence = "illegal"
	PresenceOptional Presence = "optional"
)

// Qualifier classifies what a logical port carries.
type Qualifier string

const (
	QualifierNone    Qualifier = ""
	QualifierAddress Qualifier = "address"
	QualifierData    Qualifier = "data"
	QualifierClock   Qualifier = "clock"
	QualifierReset   Qualifier = "reset"
)
