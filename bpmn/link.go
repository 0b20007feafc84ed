package bpmn

import (
	log "github.com/vine-io/vine/lib/logger"
)

// Link turns the identifier references of the document into object links:
// edges get their source and target, flow nodes get their incoming and
// outgoing edges, boundary events get their host. Adjacency is rebuilt from
// scratch, so calling Link again after editing the document is safe.
func (d *Definitions) Link() {
	index := map[string]Element{}
	for _, p := range d.Processes {
		p.Range(func(elem Element) bool {
			index[elem.GetID()] = elem
			return true
		})
	}
	if c := d.Collaboration; c != nil {
		for _, participant := range c.Participants {
			index[participant.Id] = participant
		}
	}

	// every node is reset before any edge is bound: edges may cross
	// process boundaries
	for _, p := range d.Processes {
		resetProcess(p)
	}
	for _, p := range d.Processes {
		linkProcess(index, p)
	}

	if c := d.Collaboration; c != nil {
		for _, flow := range c.MessageFlows {
			bindEdge(index, flow)
		}
	}
}

func resetProcess(p *Process) {
	p.Range(func(elem Element) bool {
		if node, ok := elem.(FlowNodeInterface); ok {
			node.Node().resetEdges()
		}
		return true
	})
}

func linkProcess(index map[string]Element, p *Process) {
	p.Range(func(elem Element) bool {
		switch tt := elem.(type) {
		case Edge:
			bindEdge(index, tt)
		case *BoundaryEvent:
			bindBoundary(index, tt)
		}
		return true
	})
}

func bindEdge(index map[string]Element, edge Edge) {
	source, ok := index[edge.GetSourceRef()]
	if !ok {
		log.Warnf("%s %s: sourceRef %q not found", edge.GetKind(), edge.GetID(), edge.GetSourceRef())
	}
	target, ok := index[edge.GetTargetRef()]
	if !ok {
		log.Warnf("%s %s: targetRef %q not found", edge.GetKind(), edge.GetID(), edge.GetTargetRef())
	}

	edge.bind(source, target)

	if node, ok := source.(FlowNodeInterface); ok {
		node.Node().AddOutgoing(edge)
	}
	if node, ok := target.(FlowNodeInterface); ok {
		node.Node().AddIncoming(edge)
	}
}

func bindBoundary(index map[string]Element, event *BoundaryEvent) {
	event.attachedTo = nil
	host, ok := index[event.AttachedToRef]
	if !ok {
		log.Warnf("BoundaryEvent %s: attachedToRef %q not found", event.Id, event.AttachedToRef)
		return
	}
	if node, ok := host.(FlowNodeInterface); ok {
		event.attachedTo = node
	}
}

// BoundaryEvents returns the boundary events attached to the activity with
// the given id, in document order.
func (p *Process) BoundaryEvents(activityID string) []*BoundaryEvent {
	events := make([]*BoundaryEvent, 0)
	p.Range(func(elem Element) bool {
		if event, ok := elem.(*BoundaryEvent); ok && event.AttachedToRef == activityID {
			events = append(events, event)
		}
		return true
	})
	return events
}
