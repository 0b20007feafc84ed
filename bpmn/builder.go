package bpmn

import (
	"github.com/google/uuid"
	"github.com/vine-io/bpmn/api"
)

// Builder builds Definitions structure
type Builder struct {
	d   *Definitions
	ptr *Process
	cur string
	err error
}

func NewBuilder(name string) *Builder {
	def := NewDefinitions()
	def.Id = "Definitions_" + uuid.New().String()
	ptr := NewProcess(randShapeName(ProcessKind), name)
	ptr.IsExecutable = true
	def.Processes = []*Process{ptr}
	return &Builder{d: def, ptr: ptr}
}

func (b *Builder) add(elem Element) {
	if b.err != nil {
		return
	}
	if elem.GetID() == "" {
		elem.SetID(randShapeName(elem.GetKind()))
	}
	b.err = b.ptr.AddElement(elem)
}

// Start adds a start event and makes it the current element.
func (b *Builder) Start() *Builder {
	event := NewStartEvent("")
	b.add(event)
	b.cur = event.GetID()

	return b
}

// AppendElem adds elem, connects the current element to it with a sequence
// flow and makes it the current element.
func (b *Builder) AppendElem(elem FlowNodeInterface) *Builder {
	if b.err != nil {
		return b
	}
	from := b.cur
	b.add(elem)
	if from != "" {
		b.connect(from, elem.GetID())
	}
	b.cur = elem.GetID()
	return b
}

// Seek makes the element with the given id the current element.
func (b *Builder) Seek(id string) *Builder {
	if b.err != nil {
		return b
	}
	if _, ok := b.ptr.Element(id); !ok {
		b.err = api.NotFound("element %s not found", id)
		return b
	}
	b.cur = id
	return b
}

// Link connects two existing elements with a sequence flow.
func (b *Builder) Link(from, to string, condition *ConditionExpression) *Builder {
	if b.err != nil {
		return b
	}
	for _, id := range []string{from, to} {
		if _, ok := b.ptr.Element(id); !ok {
			b.err = api.NotFound("element %s not found", id)
			return b
		}
	}
	flow := b.connect(from, to)
	if flow != nil {
		flow.Condition = condition
	}
	return b
}

func (b *Builder) connect(from, to string) *SequenceFlow {
	flow := NewSequenceFlow("", from, to)
	b.add(flow)
	if b.err != nil {
		return nil
	}
	return flow
}

// Boundary attaches event to the activity with the given id. The current
// element becomes the boundary event.
func (b *Builder) Boundary(activityID string, event *BoundaryEvent) *Builder {
	if b.err != nil {
		return b
	}
	if _, ok := b.ptr.Element(activityID); !ok {
		b.err = api.NotFound("element %s not found", activityID)
		return b
	}
	event.AttachedToRef = activityID
	b.add(event)
	b.cur = event.GetID()
	return b
}

// Compensate adds a compensation handler and associates it with the
// compensation boundary event boundaryID.
func (b *Builder) Compensate(boundaryID string, handler ActivityInterface) *Builder {
	if b.err != nil {
		return b
	}
	elem, ok := b.ptr.Element(boundaryID)
	if !ok {
		b.err = api.NotFound("element %s not found", boundaryID)
		return b
	}
	boundary, ok := elem.(*BoundaryEvent)
	if !ok || !boundary.IsCompensation() {
		b.err = api.PreconditionFailed("%s is not a compensation boundary event", boundaryID)
		return b
	}

	handler.GetTask().IsForCompensation = true
	b.add(handler)
	b.add(NewAssociation("", boundaryID, handler.GetID(), AssociationOne))
	return b
}

// End adds an end event after the current element.
func (b *Builder) End() *Builder {
	return b.AppendElem(NewEndEvent(""))
}

// Out returns the linked definitions.
func (b *Builder) Out() (*Definitions, error) {
	if b.err != nil {
		return nil, b.err
	}
	b.d.Link()
	return b.d, nil
}
