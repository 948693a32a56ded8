package core

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"ipxact-gen/internal/types"
	"ipxact-gen/internal/xmltree"
)

// The two schema namespaces a document may declare to be treated as a
// metadata document. Anything else is foreign content and is ignored.
const (
	NamespaceSpirit = "http://www.spiritconsortium.org/XMLSchema/SPIRIT/1685-2009"
	NamespaceIPXACT = "http://www.accellera.org/XMLSchema/IPXACT/1685-2014"
)

// ParseDocument turns one schema tree into a typed definition. A (nil,
// nil) return means the document is foreign (wrong namespace or an
// entity kind this model does not cover) and should be skipped without
// diagnostic. A non-nil error means the document claimed to be metadata
// but is malformed.
func ParseDocument(root *xmltree.Node) (types.Definition, error) {
	if root == nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("document has no root element")
	}
	if !root.DeclaresNamespace(NamespaceSpirit) && !root.DeclaresNamespace(NamespaceIPXACT) {
		return nil, nil
	}
	switch root.Local {
	case "busDefinition":
		return parseBusDefinition(root)
	case "abstractionDefinition":
		return parseAbstractionDefinition(root)
	case "component":
		return parseComponent(root)
	case "design":
		return parseDesign(root)
	case "parameterAbstractionDefinition":
		return parseParameterAbstractionDefinition(root)
	default:
		return nil, nil
	}
}

// documentIdentifier reads the entity's own VLNV from its child
// elements. Entities without one are discarded by the registry loader,
// so absence is not an error here.
func documentIdentifier(node *xmltree.Node) types.VersionedIdentifier {
	return types.NewIdentifier(
		node.ChildText("vendor"),
		node.ChildText("library"),
		node.ChildText("name"),
		node.ChildText("version"),
	)
}

// referenceIdentifier reads a VLNV cross-reference from the element's
// attributes, resolving each part through the two known namespace URIs
// before falling back to the unqualified attribute.
func referenceIdentifier(node *xmltree.Node) (types.VersionedIdentifier, error) {
	part := func(local string) (string, bool) {
		if value, ok := node.AttrNS(NamespaceSpirit, local); ok {
			return value, true
		}
		if value, ok := node.AttrNS(NamespaceIPXACT, local); ok {
			return value, true
		}
		return node.Attr(local)
	}
	vendor, okV := part("vendor")
	library, okL := part("library")
	name, okN := part("name")
	version, _ := part("version")
	if !okV || !okL || !okN {
		return types.VersionedIdentifier{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("reference element %s lacks vendor/library/name attributes", node.Local))
	}
	return types.NewIdentifier(vendor, library, name, version), nil
}

func parseBool(node *xmltree.Node, local string, fallback bool) (bool, error) {
	child := node.Child(local)
	if child == nil {
		return fallback, nil
	}
	switch child.Text() {
	case "true":
		return true, nil
	case "false":
		return false, nil
	default:
		return false, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("element %s must be \"true\" or \"false\", got %q", local, child.Text()))
	}
}

func parseInt(node *xmltree.Node, local string, fallback int) (int, error) {
	child := node.Child(local)
	if child == nil {
		return fallback, nil
	}
	value, err := strconv.Atoi(child.Text())
	if err != nil {
		return 0, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("element %s is not an integer: %q", local, child.Text())).
			WithCause(err)
	}
	return value, nil
}

func parseBigInt(node *xmltree.Node, local string) (*big.Int, error) {
	child := node.Child(local)
	if child == nil {
		return nil, nil
	}
	value, ok := new(big.Int).SetString(child.Text(), 10)
	if !ok {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("element %s is not a number: %q", local, child.Text()))
	}
	return value, nil
}

func parseExtends(node *xmltree.Node) ([]types.VersionedIdentifier, error) {
	var refs []types.VersionedIdentifier
	for _, child := range node.ChildList("extends") {
		ref, err := referenceIdentifier(child)
		if err != nil {
			return nil, err
		}
		refs = append(refs, ref)
	}
	return refs, nil
}

func parseBusDefinition(root *xmltree.Node) (*types.BusDefinition, error) {
	def := &types.BusDefinition{
		Identifier: documentIdentifier(root),
		MaxMasters: -1,
		MaxSlaves:  -1,
	}
	var err error
	if def.DirectionConnection, err = parseBool(root, "directConnection", false); err != nil {
		return nil, err
	}
	if def.Addressable, err = parseBool(root, "isAddressable", false); err != nil {
		return nil, err
	}
	if def.Extends, err = parseExtends(root); err != nil {
		return nil, err
	}
	if def.MaxMasters, err = parseInt(root, "maxMasters", -1); err != nil {
		return nil, err
	}
	if def.MaxSlaves, err = parseInt(root, "maxSlaves", -1); err != nil {
		return nil, err
	}
	return def, nil
}

func parseAbstractionDefinition(root *xmltree.Node) (*types.AbstractionDefinition, error) {
	def := &types.AbstractionDefinition{Identifier: documentIdentifier(root)}
	busType := root.Child("busType")
	if busType == nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("abstractionDefinition lacks busType")
	}
	ref, err := referenceIdentifier(busType)
	if err != nil {
		return nil, err
	}
	def.BusType = ref
	if def.Extends, err = parseExtends(root); err != nil {
		return nil, err
	}
	if ports := root.Child("ports"); ports != nil {
		for _, portNode := range ports.ChildList("port") {
			port, err := parsePort(portNode)
			if err != nil {
				return nil, err
			}
			def.Ports = append(def.Ports, port)
		}
	}
	return def, nil
}

func parsePort(node *xmltree.Node) (types.Port, error) {
	port := types.Port{
		LogicalName: node.ChildText("logicalName"),
		DisplayName: node.ChildText("displayName"),
		Description: node.ChildText("description"),
	}
	if port.LogicalName == "" {
		return types.Port{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("port lacks logicalName")
	}
	wire := node.Child("wire")
	transactional := node.Child("transactional")
	switch {
	case wire != nil:
		port.Style = types.StyleWire
	case transactional != nil:
		port.Style = types.StyleTransactional
		return port, nil
	default:
		return types.Port{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("port %s lacks style information", port.LogicalName))
	}
	port.Qualifier = parseQualifier(wire.Child("qualifier"))
	var err error
	if port.OnMaster, err = parseWirePort(wire.Child("onMaster")); err != nil {
		return types.Port{}, err
	}
	if port.OnSlave, err = parseWirePort(wire.Child("onSlave")); err != nil {
		return types.Port{}, err
	}
	if port.DefaultValue, err = parseBigInt(wire, "defaultValue"); err != nil {
		return types.Port{}, err
	}
	return port, nil
}

func parseQualifier(node *xmltree.Node) types.Qualifier {
	if node == nil {
		return types.QualifierNone
	}
	switch {
	case node.ChildText("isAddress") == "true":
		return types.QualifierAddress
	case node.ChildText("isData") == "true":
		return types.QualifierData
	case node.ChildText("isClock") == "true":
		return types.QualifierClock
	case node.ChildText("isReset") == "true":
		return types.QualifierReset
	default:
		return types.QualifierNone
	}
}

func parseWirePort(node *xmltree.Node) (*types.WirePort, error) {
	if node == nil {
		return nil, nil
	}
	view := &types.WirePort{Presence: types.PresenceOptional}
	if presence := node.ChildText("presence"); presence != "" {
		switch types.Presence(presence) {
		case types.PresenceRequired, types.PresenceIllegal, types.PresenceOptional:
			view.Presence = types.Presence(presence)
		default:
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("invalid presence value %q", presence))
		}
	}
	if widthNode := node.Child("width"); widthNode != nil {
		width, err := strconv.Atoi(widthNode.Text())
		if err != nil {
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("wire port width is not an integer: %q", widthNode.Text())).
				WithCause(err)
		}
		view.Width = &width
	}
	if direction := node.ChildText("direction"); direction != "" {
		switch types.Direction(direction) {
		case types.DirectionIn, types.DirectionOut, types.DirectionInOut:
			view.Direction = types.Direction(direction)
		default:
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("invalid wire direction %q", direction))
		}
	}
	return view, nil
}

func parseComponent(root *xmltree.Node) (*types.Component, error) {
	component := &types.Component{Identifier: documentIdentifier(root)}
	interfaces := root.Child("busInterfaces")
	if interfaces == nil {
		return component, nil
	}
	for _, node := range interfaces.ChildList("busInterface") {
		busIf, err := parseBusInterface(node)
		if err != nil {
			return nil, err
		}
		component.BusInterfaces = append(component.BusInterfaces, busIf)
	}
	return component, nil
}

// interfaceModeTags is checked in order; the first tag present under the
// bus interface element wins. Valid input carries exactly one.
var interfaceModeTags = []struct {
	local string
	mode  types.InterfaceMode
}{
	{"master", types.ModeMaster},
	{"slave", types.ModeSlave},
	{"system", types.ModeSystem},
	{"mirroredMaster", types.ModeMirroredMaster},
	{"mirroredSlave", types.ModeMirroredSlave},
	{"mirroredSystem", types.ModeMirroredSystem},
	{"monitor", types.ModeMonitor},
}

func parseBusInterface(node *xmltree.Node) (types.BusInterface, error) {
	busIf := types.BusInterface{Name: node.ChildText("name")}
	if busIf.Name == "" {
		return types.BusInterface{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("busInterface lacks name")
	}
	busType := node.Child("busType")
	if busType == nil {
		return types.BusInterface{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("busInterface %s lacks busType", busIf.Name))
	}
	ref, err := referenceIdentifier(busType)
	if err != nil {
		return types.BusInterface{}, err
	}
	busIf.BusType = ref
	if abstraction := node.Child("abstractionType"); abstraction != nil {
		ref, err := referenceIdentifier(abstraction)
		if err != nil {
			return types.BusInterface{}, err
		}
		busIf.AbstractionType = &ref
	}
	for _, tag := range interfaceModeTags {
		if node.Child(tag.local) != nil {
			busIf.Mode = tag.mode
			break
		}
	}
	if busIf.Mode == "" {
		return types.BusInterface{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("busInterface %s lacks a mode tag", busIf.Name))
	}
	if busIf.ConnectionRequired, err = parseBool(node, "connectionRequired", false); err != nil {
		return types.BusInterface{}, err
	}
	if portMaps := node.Child("portMaps"); portMaps != nil {
		for _, mapNode := range portMaps.ChildList("portMap") {
			portMap := types.PortMap{}
			if logical := mapNode.Child("logicalPort"); logical != nil {
				portMap.LogicalPort = logical.ChildText("name")
			}
			if physical := mapNode.Child("physicalPort"); physical != nil {
				portMap.PhysicalPort = physical.ChildText("name")
			}
			busIf.PortMaps = append(busIf.PortMaps, portMap)
		}
	}
	if parameters := node.Child("parameters"); parameters != nil {
		for _, paramNode := range parameters.ChildList("parameter") {
			busIf.Parameters = append(busIf.Parameters, types.Parameter{
				Name:  paramNode.ChildText("name"),
				Value: paramNode.ChildText("value"),
			})
		}
	}
	return busIf, nil
}

func parseDesign(root *xmltree.Node) (*types.Design, error) {
	design := &types.Design{Identifier: documentIdentifier(root)}
	instances := root.Child("componentInstances")
	if instances == nil {
		return design, nil
	}
	for _, node := range instances.ChildList("componentInstance") {
		instance, err := parseComponentInstance(node)
		if err != nil {
			return nil, err
		}
		design.ComponentInstances = append(design.ComponentInstances, instance)
	}
	return design, nil
}

func parseComponentInstance(node *xmltree.Node) (types.ComponentInstance, error) {
	instance := types.ComponentInstance{InstanceName: node.ChildText("instanceName")}
	if instance.InstanceName == "" {
		return types.ComponentInstance{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("componentInstance lacks instanceName")
	}
	refNode := node.Child("componentRef")
	if refNode == nil {
		return types.ComponentInstance{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("componentInstance %s lacks componentRef", instance.InstanceName))
	}
	ref, err := referenceIdentifier(refNode)
	if err != nil {
		return types.ComponentInstance{}, err
	}
	instance.ComponentRef = ref
	if values := node.Child("configurableElementValues"); values != nil {
		for _, valueNode := range values.ChildList("configurableElementValue") {
			referenceID, ok := valueNode.Attr("referenceId")
			if !ok {
				return types.ComponentInstance{}, errbuilder.New().
					WithCode(errbuilder.CodeInvalidArgument).
					WithMsg(fmt.Sprintf("configurableElementValue in %s lacks referenceId", instance.InstanceName))
			}
			instance.ConfigurableElementValues = append(instance.ConfigurableElementValues, types.ConfigurableElementValue{
				ReferenceID: strings.TrimSpace(referenceID),
				Value:       valueNode.Text(),
			})
		}
	}
	return instance, nil
}

func parseParameterAbstractionDefinition(root *xmltree.Node) (*types.ParameterAbstractionDefinition, error) {
	def := &types.ParameterAbstractionDefinition{Identifier: documentIdentifier(root)}
	parameters := root.Child("parameters")
	if parameters == nil {
		return def, nil
	}
	for _, node := range parameters.ChildList("parameterAbstraction") {
		param := types.ParameterAbstraction{
			LogicalName: node.ChildText("logicalName"),
			Format:      node.ChildText("format"),
			Default:     node.ChildText("default"),
			Provider:    node.ChildText("provider"),
			Usage:       node.ChildText("usage"),
			Permission:  node.ChildText("permission"),
		}
		if param.LogicalName == "" {
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg("parameterAbstraction lacks logicalName")
		}
		required, err := parseBool(node, "required", false)
		if err != nil {
			return nil, err
		}
		param.Required = required
		def.Parameters = append(def.Parameters, param)
	}
	return def, nil
}
