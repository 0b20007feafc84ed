package bpmn

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/vine-io/bpmn/api"
)

func TestBuilder(t *testing.T) {
	b := NewBuilder("test")
	d, err := b.Start().
		AppendElem(NewServiceTask("book", "book hotel")).
		AppendElem(NewExclusiveGateway("gw")).
		End().
		Seek("gw").
		AppendElem(NewEndEvent("cancelled")).
		Boundary("book", compensationBoundary("comp", "")).
		Compensate("comp", NewTask("undo", "cancel hotel")).
		Link("book", "cancelled", &ConditionExpression{Value: "${failed}"}).
		Out()

	if !assert.NoError(t, err) {
		return
	}

	if !assert.Equal(t, 1, len(d.Processes)) {
		return
	}
	p := d.Processes[0]
	assert.Equal(t, "test", p.Name)
	assert.True(t, p.IsExecutable)
	assert.Equal(t, 1, len(p.StartEvents()))

	gw, _ := d.FlowNode("gw")
	assert.Equal(t, 2, len(gw.Node().OutgoingSequenceFlows()))

	book, _ := d.FlowNode("book")
	outgoing := book.Node().OutgoingSequenceFlows()
	if assert.Equal(t, 2, len(outgoing)) {
		assert.Equal(t, "gw", outgoing[0].GetTargetRef())
		assert.Equal(t, "cancelled", outgoing[1].GetTargetRef())
		assert.Equal(t, "${failed}", outgoing[1].Condition.Value)
	}

	comp, _ := d.FlowNode("comp")
	assert.Equal(t, "book", comp.(*BoundaryEvent).AttachedTo().GetID())
	flows := comp.Node().OutgoingCompensationFlows()
	if assert.Equal(t, 1, len(flows)) {
		assert.Equal(t, "undo", flows[0].GetTargetRef())
	}

	undo, _ := d.FlowNode("undo")
	assert.True(t, undo.(ActivityInterface).GetTask().IsForCompensation)
	assert.Empty(t, undo.Node().IncomingSequenceFlows())

	assert.NoError(t, d.Validate())

	data, err := d.WriteToBytes()
	if !assert.NoError(t, err) {
		return
	}
	d2, err := FromBytes(data)
	if !assert.NoError(t, err) {
		return
	}
	if diff := cmp.Diff(collectAdjacency(d), collectAdjacency(d2)); diff != "" {
		t.Errorf("adjacency mismatch (-want +got):\n%s", diff)
	}
}

func TestBuilder_Errors(t *testing.T) {
	_, err := NewBuilder("seek").Start().Seek("missing").End().Out()
	assert.True(t, api.IsCode(err, api.StatusNotFound))

	_, err = NewBuilder("link").Start().Link("missing", "other", nil).Out()
	assert.True(t, api.IsCode(err, api.StatusNotFound))

	_, err = NewBuilder("dup").Start().
		AppendElem(NewTask("a", "")).
		AppendElem(NewTask("a", "")).
		Out()
	assert.True(t, api.IsCode(err, api.StatusConflict))

	timer := NewBoundaryEvent("timer", "", &EventDefinition{Kind: TimerEventDefinition})
	_, err = NewBuilder("compensate").Start().
		AppendElem(NewTask("a", "")).
		Boundary("a", timer).
		Compensate("timer", NewTask("undo", "")).
		Out()
	assert.True(t, api.IsCode(err, api.StatusPreconditionFiled))
}
