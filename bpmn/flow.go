package bpmn

// Edge is a connection between two elements. The set of implementations is
// closed: *SequenceFlow, *Association and *MessageFlow.
type Edge interface {
	Element
	GetSourceRef() string
	SetSourceRef(string)
	GetTargetRef() string
	SetTargetRef(string)
	// Source returns the resolved source element, nil until the owning
	// definitions are linked or when the reference dangles.
	Source() Element
	// Target returns the resolved target element.
	Target() Element

	bind(source, target Element)
}

// EdgeMeta holds the fields shared by all edges.
type EdgeMeta struct {
	ModelMeta
	SourceRef string
	TargetRef string

	source Element
	target Element
}

func (e *EdgeMeta) GetSourceRef() string { return e.SourceRef }

func (e *EdgeMeta) SetSourceRef(ref string) { e.SourceRef = ref }

func (e *EdgeMeta) GetTargetRef() string { return e.TargetRef }

func (e *EdgeMeta) SetTargetRef(ref string) { e.TargetRef = ref }

func (e *EdgeMeta) Source() Element { return e.source }

func (e *EdgeMeta) Target() Element { return e.target }

func (e *EdgeMeta) bind(source, target Element) {
	e.source = source
	e.target = target
}

var _ Edge = (*SequenceFlow)(nil)

type SequenceFlow struct {
	EdgeMeta
	Condition *ConditionExpression
}

type ConditionExpression struct {
	Type  string
	Value string
}

func NewSequenceFlow(id, sourceRef, targetRef string) *SequenceFlow {
	flow := &SequenceFlow{}
	flow.Id = id
	flow.SourceRef = sourceRef
	flow.TargetRef = targetRef
	return flow
}

func (f *SequenceFlow) GetKind() Kind { return SequenceFlowKind }

// AssociationDirection is the value of the associationDirection attribute.
type AssociationDirection string

const (
	AssociationNone AssociationDirection = "None"
	AssociationOne  AssociationDirection = "One"
	AssociationBoth AssociationDirection = "Both"
)

var _ Edge = (*Association)(nil)

type Association struct {
	EdgeMeta
	Direction AssociationDirection
}

func NewAssociation(id, sourceRef, targetRef string, direction AssociationDirection) *Association {
	a := &Association{Direction: direction}
	a.Id = id
	a.SourceRef = sourceRef
	a.TargetRef = targetRef
	return a
}

func (a *Association) GetKind() Kind { return AssociationKind }

// GetDirection returns the direction, treating an unset value as None.
func (a *Association) GetDirection() AssociationDirection {
	if a.Direction == "" {
		return AssociationNone
	}
	return a.Direction
}

var _ Edge = (*MessageFlow)(nil)

type MessageFlow struct {
	EdgeMeta
	MessageRef string
}

func NewMessageFlow(id, sourceRef, targetRef string) *MessageFlow {
	f := &MessageFlow{}
	f.Id = id
	f.SourceRef = sourceRef
	f.TargetRef = targetRef
	return f
}

func (f *MessageFlow) GetKind() Kind { return MessageFlowKind }

// IsCompensationFlow reports whether edge is a one-directional association
// whose source is a compensation boundary event. Unresolved sources never
// qualify.
func IsCompensationFlow(edge Edge) bool {
	switch e := edge.(type) {
	case *Association:
		if e.GetDirection() != AssociationOne {
			return false
		}
		boundary, ok := e.Source().(*BoundaryEvent)
		if !ok || boundary == nil {
			return false
		}
		return boundary.IsCompensation()
	case *SequenceFlow, *MessageFlow:
		return false
	default:
		return false
	}
}
