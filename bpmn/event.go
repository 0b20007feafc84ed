package bpmn

// EventDefinitionKind identifies the trigger or result of an event.
type EventDefinitionKind int32

const (
	UnknownEventDefinition EventDefinitionKind = iota
	CompensateEventDefinition
	ErrorEventDefinition
	EscalationEventDefinition
	TimerEventDefinition
	MessageEventDefinition
	SignalEventDefinition
	ConditionalEventDefinition
	LinkEventDefinition
	CancelEventDefinition
	TerminateEventDefinition
)

type eventDefinitionInfo struct {
	name string
	tag  string
	ref  string
}

var eventDefinitionInfos = map[EventDefinitionKind]eventDefinitionInfo{
	CompensateEventDefinition:  {"Compensate", "compensateEventDefinition", "activityRef"},
	ErrorEventDefinition:       {"Error", "errorEventDefinition", "errorRef"},
	EscalationEventDefinition:  {"Escalation", "escalationEventDefinition", "escalationRef"},
	TimerEventDefinition:       {"Timer", "timerEventDefinition", ""},
	MessageEventDefinition:     {"Message", "messageEventDefinition", "messageRef"},
	SignalEventDefinition:      {"Signal", "signalEventDefinition", "signalRef"},
	ConditionalEventDefinition: {"Conditional", "conditionalEventDefinition", ""},
	LinkEventDefinition:        {"Link", "linkEventDefinition", ""},
	CancelEventDefinition:      {"Cancel", "cancelEventDefinition", ""},
	TerminateEventDefinition:   {"Terminate", "terminateEventDefinition", ""},
}

func (k EventDefinitionKind) String() string {
	if info, ok := eventDefinitionInfos[k]; ok {
		return info.name
	}
	return "Unknown"
}

func eventDefinitionKindOf(tag string) (EventDefinitionKind, bool) {
	for kind, info := range eventDefinitionInfos {
		if info.tag == tag {
			return kind, true
		}
	}
	return UnknownEventDefinition, false
}

// EventDefinition describes what triggers a catching event or what a
// throwing event produces. Ref holds the kind specific reference
// (activityRef, errorRef, messageRef, ...). Timer and conditional
// definitions keep their expression in ExpressionType and Expression.
type EventDefinition struct {
	Id             string
	Kind           EventDefinitionKind
	Ref            string
	ExpressionType string
	Expression     string
}

// EventInterface is implemented by all event kinds.
type EventInterface interface {
	FlowNodeInterface
	GetEvent() *Event
}

type Event struct {
	FlowNode
	EventDefinitions []*EventDefinition
}

func (e *Event) GetEvent() *Event { return e }

// HasDefinition reports whether any of the event definitions is of kind.
func (e *Event) HasDefinition(kind EventDefinitionKind) bool {
	for _, def := range e.EventDefinitions {
		if def != nil && def.Kind == kind {
			return true
		}
	}
	return false
}

// AddDefinition appends def, ignoring nil.
func (e *Event) AddDefinition(def *EventDefinition) {
	if def == nil {
		return
	}
	e.EventDefinitions = append(e.EventDefinitions, def)
}

var _ EventInterface = (*StartEvent)(nil)

type StartEvent struct {
	Event
	IsInterrupting bool
}

func NewStartEvent(id string) *StartEvent {
	e := &StartEvent{IsInterrupting: true}
	e.Id = id
	return e
}

func (e *StartEvent) GetKind() Kind { return StartEventKind }

var _ EventInterface = (*EndEvent)(nil)

type EndEvent struct {
	Event
}

func NewEndEvent(id string) *EndEvent {
	e := &EndEvent{}
	e.Id = id
	return e
}

func (e *EndEvent) GetKind() Kind { return EndEventKind }

var _ EventInterface = (*IntermediateCatchEvent)(nil)

type IntermediateCatchEvent struct {
	Event
}

func (e *IntermediateCatchEvent) GetKind() Kind { return IntermediateCatchEventKind }

var _ EventInterface = (*IntermediateThrowEvent)(nil)

type IntermediateThrowEvent struct {
	Event
}

func (e *IntermediateThrowEvent) GetKind() Kind { return IntermediateThrowEventKind }

var _ EventInterface = (*BoundaryEvent)(nil)

// BoundaryEvent is attached to the boundary of an activity.
type BoundaryEvent struct {
	Event
	AttachedToRef  string
	CancelActivity bool

	attachedTo FlowNodeInterface
}

func NewBoundaryEvent(id, attachedToRef string, defs ...*EventDefinition) *BoundaryEvent {
	e := &BoundaryEvent{AttachedToRef: attachedToRef, CancelActivity: true}
	e.Id = id
	for _, def := range defs {
		e.AddDefinition(def)
	}
	return e
}

func (e *BoundaryEvent) GetKind() Kind { return BoundaryEventKind }

// AttachedTo returns the resolved host activity, nil until linked.
func (e *BoundaryEvent) AttachedTo() FlowNodeInterface { return e.attachedTo }

// IsCompensation reports whether the event carries exactly one event
// definition and that definition is a compensation.
func (e *BoundaryEvent) IsCompensation() bool {
	if len(e.EventDefinitions) != 1 {
		return false
	}
	def := e.EventDefinitions[0]
	return def != nil && def.Kind == CompensateEventDefinition
}
