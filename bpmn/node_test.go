package bpmn

import (
	"errors"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/vine-io/bpmn/api"
	"github.com/vine-io/bpmn/diagram"
	"github.com/vine-io/bpmn/diagram/mock"
)

func compensationBoundary(id, attachedTo string) *BoundaryEvent {
	return NewBoundaryEvent(id, attachedTo, &EventDefinition{Kind: CompensateEventDefinition})
}

func newLinkedProcess(t *testing.T, elems ...Element) *Process {
	t.Helper()
	p := NewProcess("Process_test", "test")
	for _, elem := range elems {
		if !assert.NoError(t, p.AddElement(elem)) {
			t.FailNow()
		}
	}
	p.Link()
	return p
}

func TestFlowNode_SequenceFlows(t *testing.T) {
	start := NewStartEvent("start")
	task := NewTask("task", "")
	boundary := compensationBoundary("boundary", "task")
	handler := NewTask("handler", "")
	end := NewEndEvent("end")
	sf1 := NewSequenceFlow("sf1", "start", "task")
	sf2 := NewSequenceFlow("sf2", "task", "end")
	sf3 := NewSequenceFlow("sf3", "start", "end")
	ca := NewAssociation("ca", "boundary", "handler", AssociationOne)
	mf := NewMessageFlow("mf", "task", "end")

	newLinkedProcess(t, start, task, boundary, handler, end, sf1, sf2, sf3, ca)
	mf.bind(task, end)
	task.AddOutgoing(mf)
	end.AddIncoming(mf)

	assert.Equal(t, []string{"sf1", "sf3"}, edgeIDs(start.OutgoingSequenceFlows()))
	assert.Equal(t, []string{"sf2", "sf3", "mf"}, edgeIDs(end.Incoming()))
	assert.Equal(t, []string{"sf2", "sf3"}, edgeIDs(end.IncomingSequenceFlows()))
	assert.Equal(t, []string{"sf2"}, edgeIDs(task.OutgoingSequenceFlows()))
	assert.Empty(t, handler.IncomingSequenceFlows())
	assert.Empty(t, boundary.OutgoingSequenceFlows())

	flows := start.OutgoingSequenceFlows()
	flows[0] = nil
	assert.Equal(t, []string{"sf1", "sf3"}, edgeIDs(start.OutgoingSequenceFlows()))

	edges := end.Incoming()
	edges[0] = mf
	assert.Equal(t, "sf2", end.Incoming()[0].GetID())
}

func TestFlowNode_AddEdgeDedup(t *testing.T) {
	node := NewTask("task", "")
	flow := NewSequenceFlow("sf1", "a", "task")

	node.AddIncoming(flow)
	node.AddIncoming(flow)
	node.AddIncoming(nil)
	node.AddOutgoing(flow)

	assert.Equal(t, 1, len(node.Incoming()))
	assert.Equal(t, 1, len(node.Outgoing()))
}

func TestIsCompensationFlow(t *testing.T) {
	task := NewTask("task", "")
	handler := NewTask("handler", "")

	twoDefs := NewBoundaryEvent("two", "task",
		&EventDefinition{Kind: CompensateEventDefinition},
		&EventDefinition{Kind: ErrorEventDefinition},
	)
	timer := NewBoundaryEvent("timer", "task", &EventDefinition{Kind: TimerEventDefinition})
	noDefs := NewBoundaryEvent("none", "task")

	tests := []struct {
		name   string
		source Element
		edge   Edge
		want   bool
	}{
		{"compensation", compensationBoundary("b", "task"), NewAssociation("a", "b", "handler", AssociationOne), true},
		{"both directions", compensationBoundary("b", "task"), NewAssociation("a", "b", "handler", AssociationBoth), false},
		{"no direction", compensationBoundary("b", "task"), NewAssociation("a", "b", "handler", ""), false},
		{"two definitions", twoDefs, NewAssociation("a", "two", "handler", AssociationOne), false},
		{"timer boundary", timer, NewAssociation("a", "timer", "handler", AssociationOne), false},
		{"no definitions", noDefs, NewAssociation("a", "none", "handler", AssociationOne), false},
		{"task source", task, NewAssociation("a", "task", "handler", AssociationOne), false},
		{"dangling source", nil, NewAssociation("a", "missing", "handler", AssociationOne), false},
		{"sequence flow", compensationBoundary("b", "task"), NewSequenceFlow("a", "b", "handler"), false},
		{"message flow", compensationBoundary("b", "task"), NewMessageFlow("a", "b", "handler"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.edge.bind(tt.source, handler)
			assert.Equal(t, tt.want, IsCompensationFlow(tt.edge))
		})
	}
}

func TestFlowNode_CompensationFlows(t *testing.T) {
	task := NewServiceTask("task", "book")
	comp := compensationBoundary("comp", "task")
	other := NewBoundaryEvent("other", "task",
		&EventDefinition{Kind: CompensateEventDefinition},
		&EventDefinition{Kind: ErrorEventDefinition},
	)
	handler := NewTask("handler", "undo")
	handler.IsForCompensation = true
	note := &TextAnnotation{ModelMeta: ModelMeta{Id: "note"}}
	obj := &DataObject{}
	obj.Id = "obj"

	ca1 := NewAssociation("ca1", "comp", "handler", AssociationOne)
	ca2 := NewAssociation("ca2", "other", "handler", AssociationOne)
	ca3 := NewAssociation("ca3", "comp", "note", AssociationNone)
	ca4 := NewAssociation("ca4", "comp", "obj", AssociationOne)
	ca5 := NewAssociation("ca5", "ghost", "handler", AssociationOne)

	newLinkedProcess(t, task, comp, other, handler, note, obj, ca1, ca2, ca3, ca4, ca5)

	assert.Equal(t, []string{"ca1", "ca3", "ca4"}, edgeIDs(comp.Outgoing()))
	assert.Equal(t, []string{"ca1", "ca4"}, edgeIDs(comp.OutgoingCompensationFlows()))
	assert.Empty(t, other.OutgoingCompensationFlows())

	// ca5 dangles on the source side and is still attached to its target
	assert.Equal(t, []string{"ca1", "ca2", "ca5"}, edgeIDs(handler.Incoming()))
	assert.Equal(t, []string{"ca1"}, edgeIDs(handler.IncomingCompensationFlows()))
	assert.Equal(t, []string{"ca4"}, edgeIDs(obj.IncomingCompensationFlows()))
	assert.Empty(t, handler.OutgoingCompensationFlows())
	assert.Empty(t, task.IncomingCompensationFlows())

	flows := comp.OutgoingCompensationFlows()
	flows[0] = ca2
	assert.Equal(t, "ca1", comp.OutgoingCompensationFlows()[0].GetID())
}

func TestFlowNode_SyncSerializationRefs(t *testing.T) {
	start := NewStartEvent("start")
	task := NewTask("task", "")
	comp := compensationBoundary("comp", "task")
	handler := NewTask("handler", "")
	end := NewEndEvent("end")
	sf1 := NewSequenceFlow("sf1", "start", "task")
	sf2 := NewSequenceFlow("sf2", "task", "end")
	ca := NewAssociation("ca", "comp", "handler", AssociationOne)

	p := newLinkedProcess(t, start, task, comp, handler, end, sf1, sf2, ca)

	assert.Empty(t, task.SerializedIncoming())

	for i := 0; i < 3; i++ {
		task.SyncSerializationRefs()
		handler.SyncSerializationRefs()
		comp.SyncSerializationRefs()

		assert.Equal(t, []string{"sf1"}, edgeIDs(task.SerializedIncoming()))
		assert.Equal(t, []string{"sf2"}, edgeIDs(task.SerializedOutgoing()))
		assert.Empty(t, handler.SerializedIncoming())
		assert.Empty(t, comp.SerializedOutgoing())
	}

	sf3 := NewSequenceFlow("sf3", "task", "handler")
	if !assert.NoError(t, p.AddElement(sf3)) {
		return
	}
	p.Link()
	task.SyncSerializationRefs()
	handler.SyncSerializationRefs()
	assert.Equal(t, []string{"sf2", "sf3"}, edgeIDs(task.SerializedOutgoing()))
	assert.Equal(t, []string{"sf3"}, edgeIDs(handler.SerializedIncoming()))
}

func TestCopyFlowNode(t *testing.T) {
	task := NewTask("task", "book")
	task.Documentation = "doc"
	sf1 := NewSequenceFlow("sf1", "start", "task")
	sf2 := NewSequenceFlow("sf2", "task", "end")
	task.AddIncoming(sf1)
	task.AddOutgoing(sf2)
	task.SyncSerializationRefs()

	cp := CopyFlowNode(&task.FlowNode)
	assert.Equal(t, task.ModelMeta, cp.ModelMeta)
	assert.Equal(t, []string{"sf1"}, edgeIDs(cp.Incoming()))
	assert.Equal(t, []string{"sf2"}, edgeIDs(cp.Outgoing()))
	assert.Same(t, sf1, cp.Incoming()[0])
	assert.Empty(t, cp.SerializedIncoming())

	cp.AddOutgoing(NewSequenceFlow("sf3", "task", "other"))
	assert.Equal(t, 2, len(cp.Outgoing()))
	assert.Equal(t, 1, len(task.Outgoing()))

	empty := CopyFlowNode(&FlowNode{})
	assert.Empty(t, empty.Incoming())
	assert.Empty(t, empty.Outgoing())
}

func TestToShape(t *testing.T) {
	boundary := compensationBoundary("boundary", "task")
	boundary.Name = "undo"
	task := NewTask("task", "")
	a := NewTask("a", "")
	b := NewTask("b", "")
	handler := NewTask("handler", "")
	sf1 := NewSequenceFlow("sf1", "boundary", "a")
	sf2 := NewSequenceFlow("sf2", "boundary", "b")
	ca1 := NewAssociation("ca1", "boundary", "handler", AssociationOne)
	ca2 := NewAssociation("ca2", "task", "handler", AssociationOne)

	// the association is declared first: shape order must not follow it
	newLinkedProcess(t, task, boundary, a, b, handler, ca1, sf1, sf2, ca2)

	bounds := diagram.NewBounds(10, 20, 36, 36)
	lookup := diagram.LookupFunc(func(id string) (diagram.Bounds, error) {
		return bounds, nil
	})

	shape, err := ToShape(boundary, lookup)
	if !assert.NoError(t, err) {
		return
	}
	assert.Equal(t, "boundary", shape.ResourceID)
	assert.Equal(t, "BoundaryEvent", shape.Stencil)
	assert.Equal(t, bounds, shape.Bounds)
	assert.Equal(t, "undo", shape.GetProperty("name"))
	assert.Equal(t, "Compensate", shape.GetProperty("trigger"))
	assert.Equal(t, "true", shape.GetProperty("cancelActivity"))
	assert.Equal(t, []string{"a", "b", "handler"}, shape.OutgoingIDs())

	shape, err = ToShape(task, lookup)
	if assert.NoError(t, err) {
		assert.Equal(t, "Task", shape.Stencil)
		assert.Empty(t, shape.OutgoingIDs())
	}

	handler.IsForCompensation = true
	shape, err = ToShape(handler, lookup)
	if assert.NoError(t, err) {
		assert.Equal(t, "true", shape.GetProperty("isForCompensation"))
	}
}

func TestToShape_LookupError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	task := NewServiceTask("task", "")
	lookupErr := api.NotFound("no shape for %s", "task")

	lookup := mock.NewMockShapeCoordinateLookup(ctrl)
	lookup.EXPECT().Bounds("task").Return(diagram.Bounds{}, lookupErr).Times(1)

	shape, err := ToShape(task, lookup)
	assert.Nil(t, shape)
	assert.True(t, errors.Is(err, lookupErr))
	assert.True(t, api.IsCode(err, api.StatusNotFound))
}

func TestNilEventDefinitions(t *testing.T) {
	lookup := diagram.LookupFunc(func(id string) (diagram.Bounds, error) {
		return diagram.NewBounds(0, 0, 36, 36), nil
	})

	be := NewBoundaryEvent("be", "host", nil)
	be.AddDefinition(nil)
	assert.Empty(t, be.EventDefinitions)

	shape, err := ToShape(be, lookup)
	if assert.NoError(t, err) {
		assert.Equal(t, "", shape.GetProperty("trigger"))
	}

	host := NewTask("host", "")
	loose := NewBoundaryEvent("loose", "host")
	loose.EventDefinitions = []*EventDefinition{nil, {Kind: CompensateEventDefinition}}
	assert.False(t, loose.IsCompensation())

	shape, err = ToShape(loose, lookup)
	if assert.NoError(t, err) {
		assert.Equal(t, "Compensate", shape.GetProperty("trigger"))
	}

	d := NewDefinitions()
	p := NewProcess("p", "")
	for _, elem := range []Element{host, be, loose} {
		if !assert.NoError(t, p.AddElement(elem)) {
			return
		}
	}
	assert.NoError(t, d.AddProcess(p))
	d.Link()

	out, err := d.WriteToString()
	if assert.NoError(t, err) {
		assert.Equal(t, 1, strings.Count(out, "<bpmn:compensateEventDefinition"))
	}
}
