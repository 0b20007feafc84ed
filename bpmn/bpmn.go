package bpmn

// Kind identifies the concrete type of a model element.
type Kind int32

const (
	UnknownKind Kind = iota
	DefinitionsKind
	ProcessKind
	CollaborationKind
	ParticipantKind
	StartEventKind
	EndEventKind
	IntermediateCatchEventKind
	IntermediateThrowEventKind
	BoundaryEventKind
	TaskKind
	ServiceTaskKind
	UserTaskKind
	ScriptTaskKind
	ManualTaskKind
	ExclusiveGatewayKind
	InclusiveGatewayKind
	ParallelGatewayKind
	EventBasedGatewayKind
	DataObjectKind
	TextAnnotationKind
	SequenceFlowKind
	AssociationKind
	MessageFlowKind
)

var kindNames = map[Kind]string{
	DefinitionsKind:            "Definitions",
	ProcessKind:                "Process",
	CollaborationKind:          "Collaboration",
	ParticipantKind:            "Participant",
	StartEventKind:             "StartEvent",
	EndEventKind:               "EndEvent",
	IntermediateCatchEventKind: "IntermediateCatchEvent",
	IntermediateThrowEventKind: "IntermediateThrowEvent",
	BoundaryEventKind:          "BoundaryEvent",
	TaskKind:                   "Task",
	ServiceTaskKind:            "ServiceTask",
	UserTaskKind:               "UserTask",
	ScriptTaskKind:             "ScriptTask",
	ManualTaskKind:             "ManualTask",
	ExclusiveGatewayKind:       "ExclusiveGateway",
	InclusiveGatewayKind:       "InclusiveGateway",
	ParallelGatewayKind:        "ParallelGateway",
	EventBasedGatewayKind:      "EventBasedGateway",
	DataObjectKind:             "DataObject",
	TextAnnotationKind:         "TextAnnotation",
	SequenceFlowKind:           "SequenceFlow",
	AssociationKind:            "Association",
	MessageFlowKind:            "MessageFlow",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "Unknown"
}

// IsEvent reports whether the kind is one of the event kinds.
func (k Kind) IsEvent() bool {
	return k >= StartEventKind && k <= BoundaryEventKind
}

// IsActivity reports whether the kind is one of the task kinds.
func (k Kind) IsActivity() bool {
	return k >= TaskKind && k <= ManualTaskKind
}

func (k Kind) IsGateway() bool {
	return k >= ExclusiveGatewayKind && k <= EventBasedGatewayKind
}

func (k Kind) IsEdge() bool {
	return k >= SequenceFlowKind && k <= MessageFlowKind
}

// Element is the common behaviour of every identifiable model element.
type Element interface {
	GetKind() Kind
	GetID() string
	SetID(string)
	GetName() string
	SetName(string)
	GetDocumentation() string
	SetDocumentation(string)
}

var _ Element = (*ModelMeta)(nil)

type ModelMeta struct {
	Id            string
	Name          string
	Documentation string
}

func (m *ModelMeta) GetKind() Kind {
	return UnknownKind
}

func (m *ModelMeta) GetID() string {
	return m.Id
}

func (m *ModelMeta) SetID(id string) {
	m.Id = id
}

func (m *ModelMeta) GetName() string {
	return m.Name
}

func (m *ModelMeta) SetName(name string) {
	m.Name = name
}

func (m *ModelMeta) GetDocumentation() string {
	return m.Documentation
}

func (m *ModelMeta) SetDocumentation(documentation string) {
	m.Documentation = documentation
}
