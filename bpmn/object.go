package bpmn

var _ FlowNodeInterface = (*DataObject)(nil)

// DataObject takes part in the flow graph through data associations and
// compensation associations like any other flow node.
type DataObject struct {
	FlowNode
	IsCollection bool
}

func (o *DataObject) GetKind() Kind { return DataObjectKind }

var _ Element = (*TextAnnotation)(nil)

// TextAnnotation is an artifact; associations may point at it but it is not
// part of the flow graph.
type TextAnnotation struct {
	ModelMeta
	Text string
}

func (a *TextAnnotation) GetKind() Kind { return TextAnnotationKind }
