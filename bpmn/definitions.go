package bpmn

import (
	"github.com/vine-io/bpmn/api"
)

const (
	DefaultBpmnNamespace   = "http://www.omg.org/spec/BPMN/20100524/MODEL"
	DefaultBpmnDINamespace = "http://www.omg.org/spec/BPMN/20100524/DI"
	DefaultDCNamespace     = "http://www.omg.org/spec/DD/20100524/DC"
	DefaultDINamespace     = "http://www.omg.org/spec/DD/20100524/DI"
	DefaultXSINamespace    = "http://www.w3.org/2001/XMLSchema-instance"
	DefaultTargetNamespace = "http://bpmn.io/schema/bpmn"
)

// Definitions is the root of a BPMN document.
type Definitions struct {
	Id              string
	Bpmn            string
	BpmnDI          string
	DC              string
	DI              string
	XSI             string
	TargetNamespace string
	Exporter        string
	ExporterVersion string

	Collaboration *Collaboration
	Processes     []*Process
	Diagram       *Diagram
}

func NewDefinitions() *Definitions {
	return &Definitions{
		Bpmn:            DefaultBpmnNamespace,
		BpmnDI:          DefaultBpmnDINamespace,
		DC:              DefaultDCNamespace,
		DI:              DefaultDINamespace,
		XSI:             DefaultXSINamespace,
		TargetNamespace: DefaultTargetNamespace,
		Processes:       []*Process{},
	}
}

func (d *Definitions) AddProcess(p *Process) error {
	if _, ok := d.Process(p.Id); ok {
		return api.Conflict("duplicate process id %s", p.Id)
	}
	d.Processes = append(d.Processes, p)
	return nil
}

func (d *Definitions) Process(id string) (*Process, bool) {
	for _, p := range d.Processes {
		if p.Id == id {
			return p, true
		}
	}
	return nil, false
}

// Element looks id up in every process and in the collaboration.
func (d *Definitions) Element(id string) (Element, bool) {
	for _, p := range d.Processes {
		if p.Id == id {
			return p, true
		}
		if elem, ok := p.Element(id); ok {
			return elem, true
		}
	}
	if c := d.Collaboration; c != nil {
		for _, participant := range c.Participants {
			if participant.Id == id {
				return participant, true
			}
		}
		for _, flow := range c.MessageFlows {
			if flow.Id == id {
				return flow, true
			}
		}
	}
	return nil, false
}

// FlowNode looks id up and returns it when it is a flow node.
func (d *Definitions) FlowNode(id string) (FlowNodeInterface, bool) {
	elem, ok := d.Element(id)
	if !ok {
		return nil, false
	}
	node, ok := elem.(FlowNodeInterface)
	return node, ok
}

// Plane returns the diagram plane rendering the element with the given id.
func (d *Definitions) Plane(elementID string) (*DiagramPlane, bool) {
	if d.Diagram == nil {
		return nil, false
	}
	for _, plane := range d.Diagram.Planes {
		if plane.Element == elementID {
			return plane, true
		}
	}
	return nil, false
}

var _ Element = (*Collaboration)(nil)

type Collaboration struct {
	ModelMeta
	Participants []*Participant
	MessageFlows []*MessageFlow
}

func (c *Collaboration) GetKind() Kind { return CollaborationKind }

var _ Element = (*Participant)(nil)

type Participant struct {
	ModelMeta
	ProcessRef string
}

func (p *Participant) GetKind() Kind { return ParticipantKind }

// Diagram is the BPMNDI part of a document.
type Diagram struct {
	Id     string
	Planes []*DiagramPlane
}

type DiagramPlane struct {
	Id      string
	Element string
	Shapes  []*DiagramShape
	Edges   []*DiagramEdge
}

type DiagramShape struct {
	Id           string
	Element      string
	IsExpanded   *bool
	IsHorizontal *bool
	Bounds       *DiagramBounds
	Label        *DiagramLabel
}

type DiagramEdge struct {
	Id        string
	Element   string
	Waypoints []*DiagramWaypoint
	Label     *DiagramLabel
}

type DiagramLabel struct {
	Bounds *DiagramBounds
}
