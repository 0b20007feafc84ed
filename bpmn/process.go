package bpmn

import (
	"github.com/tidwall/btree"
	"github.com/vine-io/bpmn/api"
)

var _ Element = (*Process)(nil)

// Process owns its elements. Elements are addressed by id through the
// arena; order keeps the document order used for serialization and for the
// order of edges in each node's adjacency.
type Process struct {
	ModelMeta
	IsExecutable bool

	Elements *btree.Map[string, Element]
	order    []string
}

func NewProcess(id, name string) *Process {
	p := &Process{Elements: &btree.Map[string, Element]{}}
	p.Id = id
	p.Name = name
	return p
}

func (p *Process) GetKind() Kind { return ProcessKind }

// AddElement stores elem under its id. Ids must be unique within a process.
func (p *Process) AddElement(elem Element) error {
	if p.Elements == nil {
		p.Elements = &btree.Map[string, Element]{}
	}
	id := elem.GetID()
	if id == "" {
		return api.BadRequest("%s without id in process %s", elem.GetKind(), p.Id)
	}
	if _, ok := p.Elements.Get(id); ok {
		return api.Conflict("duplicate element id %s in process %s", id, p.Id)
	}
	p.Elements.Set(id, elem)
	p.order = append(p.order, id)
	return nil
}

// RemoveElement drops the element with the given id. Adjacency built from it
// is only cleared by the next Link.
func (p *Process) RemoveElement(id string) (Element, bool) {
	if p.Elements == nil {
		return nil, false
	}
	elem, ok := p.Elements.Delete(id)
	if !ok {
		return nil, false
	}
	for i, oid := range p.order {
		if oid == id {
			p.order = append(p.order[:i], p.order[i+1:]...)
			break
		}
	}
	return elem, true
}

func (p *Process) Element(id string) (Element, bool) {
	if p.Elements == nil {
		return nil, false
	}
	return p.Elements.Get(id)
}

// Len returns the number of elements.
func (p *Process) Len() int {
	if p.Elements == nil {
		return 0
	}
	return p.Elements.Len()
}

// Range calls fn for every element in document order until fn returns false.
func (p *Process) Range(fn func(elem Element) bool) {
	for _, id := range p.order {
		elem, ok := p.Elements.Get(id)
		if !ok {
			continue
		}
		if !fn(elem) {
			return
		}
	}
}

// FlowNodes returns the flow nodes in document order.
func (p *Process) FlowNodes() []FlowNodeInterface {
	nodes := make([]FlowNodeInterface, 0)
	p.Range(func(elem Element) bool {
		if node, ok := elem.(FlowNodeInterface); ok {
			nodes = append(nodes, node)
		}
		return true
	})
	return nodes
}

// Edges returns the sequence flows and associations in document order.
func (p *Process) Edges() []Edge {
	edges := make([]Edge, 0)
	p.Range(func(elem Element) bool {
		if edge, ok := elem.(Edge); ok {
			edges = append(edges, edge)
		}
		return true
	})
	return edges
}

// StartEvents returns the start events in document order.
func (p *Process) StartEvents() []*StartEvent {
	events := make([]*StartEvent, 0)
	p.Range(func(elem Element) bool {
		if event, ok := elem.(*StartEvent); ok {
			events = append(events, event)
		}
		return true
	})
	return events
}

// Link resolves the references of this process on its own. Use
// Definitions.Link when message flows or cross process references matter.
func (p *Process) Link() {
	index := map[string]Element{}
	p.Range(func(elem Element) bool {
		index[elem.GetID()] = elem
		return true
	})
	resetProcess(p)
	linkProcess(index, p)
}
