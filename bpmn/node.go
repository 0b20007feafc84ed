package bpmn

import (
	"github.com/vine-io/bpmn/diagram"
)

// FlowNodeInterface is implemented by every element that takes part in the
// flow graph of a process.
type FlowNodeInterface interface {
	Element
	Node() *FlowNode
}

// FlowNode holds the adjacency of a node in the flow graph. Incoming edges
// target the node, outgoing edges start at it, both in document order.
//
// The serialized reference lists mirror the sequence flow subset of the
// adjacency. They are rebuilt by SyncSerializationRefs right before a node is
// written and are never read for anything else.
type FlowNode struct {
	ModelMeta

	incoming []Edge
	outgoing []Edge

	incomingRefs []*SequenceFlow
	outgoingRefs []*SequenceFlow
}

// CopyFlowNode returns a copy of src that shares its edges. The serialized
// reference lists are not copied.
func CopyFlowNode(src *FlowNode) FlowNode {
	dst := FlowNode{ModelMeta: src.ModelMeta}
	if src.incoming != nil {
		dst.incoming = append([]Edge{}, src.incoming...)
	}
	if src.outgoing != nil {
		dst.outgoing = append([]Edge{}, src.outgoing...)
	}
	return dst
}

func (n *FlowNode) Node() *FlowNode { return n }

// Incoming returns a copy of the incoming edges.
func (n *FlowNode) Incoming() []Edge {
	return append([]Edge{}, n.incoming...)
}

// Outgoing returns a copy of the outgoing edges.
func (n *FlowNode) Outgoing() []Edge {
	return append([]Edge{}, n.outgoing...)
}

// AddIncoming appends edge unless it is already present.
func (n *FlowNode) AddIncoming(edge Edge) {
	if edge == nil || containsEdge(n.incoming, edge) {
		return
	}
	n.incoming = append(n.incoming, edge)
}

// AddOutgoing appends edge unless it is already present.
func (n *FlowNode) AddOutgoing(edge Edge) {
	if edge == nil || containsEdge(n.outgoing, edge) {
		return
	}
	n.outgoing = append(n.outgoing, edge)
}

func (n *FlowNode) resetEdges() {
	n.incoming = nil
	n.outgoing = nil
}

func containsEdge(edges []Edge, edge Edge) bool {
	for _, e := range edges {
		if e == edge {
			return true
		}
	}
	return false
}

// IncomingSequenceFlows returns the incoming sequence flows. Changes to the
// returned slice have no influence on the node.
func (n *FlowNode) IncomingSequenceFlows() []*SequenceFlow {
	return sequenceFlows(n.incoming)
}

// OutgoingSequenceFlows returns the outgoing sequence flows. Changes to the
// returned slice have no influence on the node.
func (n *FlowNode) OutgoingSequenceFlows() []*SequenceFlow {
	return sequenceFlows(n.outgoing)
}

// IncomingCompensationFlows returns the incoming associations that start at
// a compensation boundary event.
func (n *FlowNode) IncomingCompensationFlows() []*Association {
	return compensationFlows(n.incoming)
}

// OutgoingCompensationFlows returns the outgoing associations that start at
// a compensation boundary event.
func (n *FlowNode) OutgoingCompensationFlows() []*Association {
	return compensationFlows(n.outgoing)
}

func sequenceFlows(edges []Edge) []*SequenceFlow {
	flows := make([]*SequenceFlow, 0, len(edges))
	for _, edge := range edges {
		if flow, ok := edge.(*SequenceFlow); ok {
			flows = append(flows, flow)
		}
	}
	return flows
}

func compensationFlows(edges []Edge) []*Association {
	flows := make([]*Association, 0)
	for _, edge := range edges {
		if !IsCompensationFlow(edge) {
			continue
		}
		flows = append(flows, edge.(*Association))
	}
	return flows
}

// SyncSerializationRefs rebuilds the serialized reference lists from the
// current adjacency. Calling it repeatedly yields the same lists.
func (n *FlowNode) SyncSerializationRefs() {
	n.incomingRefs = n.incomingRefs[:0]
	n.outgoingRefs = n.outgoingRefs[:0]

	for _, edge := range n.incoming {
		if flow, ok := edge.(*SequenceFlow); ok {
			n.incomingRefs = append(n.incomingRefs, flow)
		}
	}

	for _, edge := range n.outgoing {
		if flow, ok := edge.(*SequenceFlow); ok {
			n.outgoingRefs = append(n.outgoingRefs, flow)
		}
	}
}

// SerializedIncoming returns a copy of the incoming reference list as of the
// last SyncSerializationRefs.
func (n *FlowNode) SerializedIncoming() []*SequenceFlow {
	return append([]*SequenceFlow{}, n.incomingRefs...)
}

// SerializedOutgoing returns a copy of the outgoing reference list as of the
// last SyncSerializationRefs.
func (n *FlowNode) SerializedOutgoing() []*SequenceFlow {
	return append([]*SequenceFlow{}, n.outgoingRefs...)
}

// appendOutgoingShapes adds one reference per outgoing sequence flow target,
// followed by one per outgoing compensation flow target.
func (n *FlowNode) appendOutgoingShapes(shape *diagram.Shape) {
	for _, flow := range n.OutgoingSequenceFlows() {
		shape.AddOutgoing(flow.GetTargetRef())
	}

	for _, flow := range n.OutgoingCompensationFlows() {
		shape.AddOutgoing(flow.GetTargetRef())
	}
}
