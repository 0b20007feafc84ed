package bpmn

import (
	"fmt"
	"strconv"

	"github.com/beevik/etree"
	"github.com/shopspring/decimal"
	"github.com/vine-io/bpmn/api"
	log "github.com/vine-io/vine/lib/logger"
)

var serializers = map[string]Serializer{
	getKind(new(Definitions)):            &definitionSerde{},
	getKind(new(Collaboration)):          &collaborationSerde{},
	getKind(new(Participant)):            &participantSerde{},
	getKind(new(MessageFlow)):            &messageFlowSerde{},
	getKind(new(Process)):                &processSerde{},
	getKind(new(StartEvent)):             &eventSerde{tag: "startEvent"},
	getKind(new(EndEvent)):               &eventSerde{tag: "endEvent"},
	getKind(new(IntermediateCatchEvent)): &eventSerde{tag: "intermediateCatchEvent"},
	getKind(new(IntermediateThrowEvent)): &eventSerde{tag: "intermediateThrowEvent"},
	getKind(new(BoundaryEvent)):          &eventSerde{tag: "boundaryEvent"},
	getKind(new(Task)):                   &taskSerde{tag: "task"},
	getKind(new(ServiceTask)):            &taskSerde{tag: "serviceTask"},
	getKind(new(UserTask)):               &taskSerde{tag: "userTask"},
	getKind(new(ScriptTask)):             &taskSerde{tag: "scriptTask"},
	getKind(new(ManualTask)):             &taskSerde{tag: "manualTask"},
	getKind(new(ExclusiveGateway)):       &gatewaySerde{tag: "exclusiveGateway"},
	getKind(new(InclusiveGateway)):       &gatewaySerde{tag: "inclusiveGateway"},
	getKind(new(ParallelGateway)):        &gatewaySerde{tag: "parallelGateway"},
	getKind(new(EventBasedGateway)):      &gatewaySerde{tag: "eventBasedGateway"},
	getKind(new(DataObject)):             &dataObjectSerde{},
	getKind(new(TextAnnotation)):         &textAnnotationSerde{},
	getKind(new(SequenceFlow)):           &sequenceFlowSerde{},
	getKind(new(Association)):            &associationSerde{},
	getKind(new(Diagram)):                &diagramSerde{},
	getKind(new(DiagramPlane)):           &diagramPlaneSerde{},
	getKind(new(DiagramShape)):           &diagramShapeSerde{},
	getKind(new(DiagramEdge)):            &diagramEdgeSerde{},
	getKind(new(DiagramLabel)):           &diagramLabelSerde{},
}

var deserializers = map[string]Deserializer{
	"definitions":            &definitionSerde{},
	"collaboration":          &collaborationSerde{},
	"participant":            &participantSerde{},
	"messageFlow":            &messageFlowSerde{},
	"process":                &processSerde{},
	"startEvent":             &eventSerde{tag: "startEvent"},
	"endEvent":               &eventSerde{tag: "endEvent"},
	"intermediateCatchEvent": &eventSerde{tag: "intermediateCatchEvent"},
	"intermediateThrowEvent": &eventSerde{tag: "intermediateThrowEvent"},
	"boundaryEvent":          &eventSerde{tag: "boundaryEvent"},
	"task":                   &taskSerde{tag: "task"},
	"serviceTask":            &taskSerde{tag: "serviceTask"},
	"userTask":               &taskSerde{tag: "userTask"},
	"scriptTask":             &taskSerde{tag: "scriptTask"},
	"manualTask":             &taskSerde{tag: "manualTask"},
	"exclusiveGateway":       &gatewaySerde{tag: "exclusiveGateway"},
	"inclusiveGateway":       &gatewaySerde{tag: "inclusiveGateway"},
	"parallelGateway":        &gatewaySerde{tag: "parallelGateway"},
	"eventBasedGateway":      &gatewaySerde{tag: "eventBasedGateway"},
	"dataObject":             &dataObjectSerde{},
	"textAnnotation":         &textAnnotationSerde{},
	"sequenceFlow":           &sequenceFlowSerde{},
	"association":            &associationSerde{},
	"BPMNDiagram":            &diagramSerde{},
	"BPMNPlane":              &diagramPlaneSerde{},
	"BPMNShape":              &diagramShapeSerde{},
	"BPMNEdge":               &diagramEdgeSerde{},
	"BPMNLabel":              &diagramLabelSerde{},
}

type Serializer interface {
	Serialize(element any, start *etree.Element) error
}

type Deserializer interface {
	Deserialize(start *etree.Element, options ParseOptions) (any, error)
}

type ParseOptions struct {
	// Strict makes unsupported elements an error instead of skipping them.
	Strict bool
}

type ParseOption func(options *ParseOptions)

func WithStrict() ParseOption {
	return func(options *ParseOptions) {
		options.Strict = true
	}
}

func NewParseOptions(opts ...ParseOption) ParseOptions {
	var options ParseOptions
	for _, opt := range opts {
		opt(&options)
	}
	return options
}

func Serialize(element any, start *etree.Element) error {
	kind := getKind(element)
	serializer, ok := serializers[kind]
	if !ok {
		return api.NotImplemented("%s not support to serialize", kind)
	}

	return serializer.Serialize(element, start)
}

func Deserialize(start *etree.Element, options ParseOptions) (any, error) {
	deserializer, ok := deserializers[start.Tag]
	if !ok {
		return nil, api.NotImplemented("%s not support to deserialize", start.FullTag())
	}

	return deserializer.Deserialize(start, options)
}

// deserializeChild is Deserialize for nested elements: unsupported tags are
// skipped (nil, nil) unless the options are strict.
func deserializeChild(child *etree.Element, options ParseOptions) (any, error) {
	if _, ok := deserializers[child.Tag]; !ok && !options.Strict {
		log.Debugf("skip unsupported element <%s>", child.FullTag())
		return nil, nil
	}
	return Deserialize(child, options)
}

func readMeta(start *etree.Element, elem Element) {
	if id, ok := getAttr(start.Attr, "id"); ok {
		elem.SetID(id)
	}
	if name, ok := getAttr(start.Attr, "name"); ok {
		elem.SetName(name)
	}
	if doc := start.SelectElement("documentation"); doc != nil {
		elem.SetDocumentation(doc.Text())
	}
}

func writeMeta(elem Element, start *etree.Element) {
	if elem.GetID() != "" {
		start.CreateAttr("id", elem.GetID())
	}
	if elem.GetName() != "" {
		start.CreateAttr("name", elem.GetName())
	}
	if elem.GetDocumentation() != "" {
		start.CreateElement("bpmn:documentation").SetText(elem.GetDocumentation())
	}
}

func serializeChild(element any, parent *etree.Element) error {
	child := parent.CreateElement("")
	if err := Serialize(element, child); err != nil {
		parent.RemoveChild(child)
		return err
	}
	return nil
}

type definitionSerde struct{}

func (s *definitionSerde) Serialize(element any, start *etree.Element) error {
	definitions, ok := element.(*Definitions)
	if !ok {
		return fmt.Errorf("%v is not Definitions", element)
	}

	start.Space = "bpmn"
	start.Tag = "definitions"
	start.CreateAttr("xmlns:bpmn", orDefault(definitions.Bpmn, DefaultBpmnNamespace))
	start.CreateAttr("xmlns:bpmndi", orDefault(definitions.BpmnDI, DefaultBpmnDINamespace))
	start.CreateAttr("xmlns:dc", orDefault(definitions.DC, DefaultDCNamespace))
	start.CreateAttr("xmlns:di", orDefault(definitions.DI, DefaultDINamespace))
	start.CreateAttr("xmlns:xsi", orDefault(definitions.XSI, DefaultXSINamespace))
	if definitions.Id != "" {
		start.CreateAttr("id", definitions.Id)
	}
	if definitions.TargetNamespace != "" {
		start.CreateAttr("targetNamespace", definitions.TargetNamespace)
	}
	if definitions.Exporter != "" {
		start.CreateAttr("exporter", definitions.Exporter)
	}
	if definitions.ExporterVersion != "" {
		start.CreateAttr("exporterVersion", definitions.ExporterVersion)
	}

	if definitions.Collaboration != nil {
		if err := serializeChild(definitions.Collaboration, start); err != nil {
			return err
		}
	}

	for _, p := range definitions.Processes {
		if err := serializeChild(p, start); err != nil {
			return err
		}
	}

	if definitions.Diagram != nil {
		if err := serializeChild(definitions.Diagram, start); err != nil {
			return err
		}
	}

	return nil
}

func (s *definitionSerde) Deserialize(start *etree.Element, options ParseOptions) (any, error) {
	d := NewDefinitions()
	for _, attr := range start.Attr {
		if attr.Space == "xmlns" || (attr.Space == "" && attr.Key == "xmlns") {
			switch attr.Value {
			case DefaultBpmnNamespace:
				d.Bpmn = attr.Value
			case DefaultBpmnDINamespace:
				d.BpmnDI = attr.Value
			case DefaultDCNamespace:
				d.DC = attr.Value
			case DefaultDINamespace:
				d.DI = attr.Value
			case DefaultXSINamespace:
				d.XSI = attr.Value
			}
			continue
		}

		switch attr.Key {
		case "targetNamespace":
			d.TargetNamespace = attr.Value
		case "id":
			d.Id = attr.Value
		case "exporter":
			d.Exporter = attr.Value
		case "exporterVersion":
			d.ExporterVersion = attr.Value
		}
	}

	for _, child := range start.ChildElements() {
		elem, err := deserializeChild(child, options)
		if err != nil {
			return nil, err
		}

		switch tt := elem.(type) {
		case *Process:
			if err = d.AddProcess(tt); err != nil {
				return nil, err
			}
		case *Collaboration:
			d.Collaboration = tt
		case *Diagram:
			d.Diagram = tt
		}
	}

	return d, nil
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

type collaborationSerde struct{}

func (s *collaborationSerde) Serialize(element any, start *etree.Element) error {
	c, ok := element.(*Collaboration)
	if !ok {
		return fmt.Errorf("%v is not Collaboration", element)
	}

	start.Space = "bpmn"
	start.Tag = "collaboration"
	writeMeta(c, start)
	for _, participant := range c.Participants {
		if err := serializeChild(participant, start); err != nil {
			return err
		}
	}
	for _, flow := range c.MessageFlows {
		if err := serializeChild(flow, start); err != nil {
			return err
		}
	}

	return nil
}

func (s *collaborationSerde) Deserialize(start *etree.Element, options ParseOptions) (any, error) {
	c := &Collaboration{
		Participants: []*Participant{},
		MessageFlows: []*MessageFlow{},
	}
	readMeta(start, c)

	for _, child := range start.ChildElements() {
		if child.Tag == "documentation" {
			continue
		}
		elem, err := deserializeChild(child, options)
		if err != nil {
			return nil, err
		}
		switch tt := elem.(type) {
		case *Participant:
			c.Participants = append(c.Participants, tt)
		case *MessageFlow:
			c.MessageFlows = append(c.MessageFlows, tt)
		}
	}

	return c, nil
}

type participantSerde struct{}

func (s *participantSerde) Serialize(element any, start *etree.Element) error {
	participant, ok := element.(*Participant)
	if !ok {
		return fmt.Errorf("%v is not Participant", element)
	}

	start.Space = "bpmn"
	start.Tag = "participant"
	writeMeta(participant, start)
	if participant.ProcessRef != "" {
		start.CreateAttr("processRef", participant.ProcessRef)
	}

	return nil
}

func (s *participantSerde) Deserialize(start *etree.Element, options ParseOptions) (any, error) {
	participant := &Participant{}
	readMeta(start, participant)
	participant.ProcessRef, _ = getAttr(start.Attr, "processRef")

	return participant, nil
}

type processSerde struct{}

func (s *processSerde) Serialize(element any, start *etree.Element) error {
	process, ok := element.(*Process)
	if !ok {
		return fmt.Errorf("%v is not Process", element)
	}

	start.Space = "bpmn"
	start.Tag = "process"
	writeMeta(process, start)
	if process.IsExecutable {
		start.CreateAttr("isExecutable", "true")
	} else {
		start.CreateAttr("isExecutable", "false")
	}

	var err error
	process.Range(func(elem Element) bool {
		err = serializeChild(elem, start)
		return err == nil
	})

	return err
}

func (s *processSerde) Deserialize(start *etree.Element, options ParseOptions) (any, error) {
	p := NewProcess("", "")
	readMeta(start, p)
	p.IsExecutable = getBoolAttr(start.Attr, "isExecutable", false)

	for _, child := range start.ChildElements() {
		if child.Tag == "documentation" {
			continue
		}
		elem, err := deserializeChild(child, options)
		if err != nil {
			return nil, err
		}
		v, ok := elem.(Element)
		if !ok {
			continue
		}
		if err = p.AddElement(v); err != nil {
			return nil, err
		}
	}

	return p, nil
}

// flowNodeSerde writes and reads the part of a flow node shared by all
// kinds. The incoming and outgoing references are written from the
// serialized reference lists, which are synchronized first; on read they
// are ignored because Link derives the adjacency from the edges.
type flowNodeSerde struct{}

func (s *flowNodeSerde) serialize(node FlowNodeInterface, start *etree.Element) {
	writeMeta(node, start)

	n := node.Node()
	n.SyncSerializationRefs()
	for _, flow := range n.SerializedIncoming() {
		start.CreateElement("bpmn:incoming").SetText(flow.GetID())
	}
	for _, flow := range n.SerializedOutgoing() {
		start.CreateElement("bpmn:outgoing").SetText(flow.GetID())
	}
}

func (s *flowNodeSerde) deserialize(start *etree.Element, node FlowNodeInterface, ranger func(child *etree.Element) error) error {
	readMeta(start, node)

	for _, child := range start.ChildElements() {
		switch child.Tag {
		case "documentation", "incoming", "outgoing", "extensionElements":
		default:
			if ranger != nil {
				if err := ranger(child); err != nil {
					return err
				}
			}
		}
	}

	return nil
}

type eventSerde struct {
	inner flowNodeSerde
	tag   string
}

func (s *eventSerde) Serialize(element any, start *etree.Element) error {
	event, ok := element.(EventInterface)
	if !ok {
		return fmt.Errorf("%v is not Event", element)
	}

	start.Space = "bpmn"
	start.Tag = s.tag
	switch tt := event.(type) {
	case *BoundaryEvent:
		if !tt.CancelActivity {
			start.CreateAttr("cancelActivity", "false")
		}
		if tt.AttachedToRef != "" {
			start.CreateAttr("attachedToRef", tt.AttachedToRef)
		}
	case *StartEvent:
		if !tt.IsInterrupting {
			start.CreateAttr("isInterrupting", "false")
		}
	}
	s.inner.serialize(event, start)

	for _, def := range event.GetEvent().EventDefinitions {
		if def == nil {
			continue
		}
		if err := writeEventDefinition(def, start); err != nil {
			return err
		}
	}

	return nil
}

func (s *eventSerde) Deserialize(start *etree.Element, options ParseOptions) (any, error) {
	var event EventInterface
	switch s.tag {
	case "startEvent":
		event = &StartEvent{IsInterrupting: getBoolAttr(start.Attr, "isInterrupting", true)}
	case "endEvent":
		event = &EndEvent{}
	case "intermediateCatchEvent":
		event = &IntermediateCatchEvent{}
	case "intermediateThrowEvent":
		event = &IntermediateThrowEvent{}
	case "boundaryEvent":
		boundary := &BoundaryEvent{CancelActivity: getBoolAttr(start.Attr, "cancelActivity", true)}
		boundary.AttachedToRef, _ = getAttr(start.Attr, "attachedToRef")
		event = boundary
	default:
		return nil, api.NotImplemented("%s not support to deserialize", start.FullTag())
	}

	ranger := func(child *etree.Element) error {
		kind, ok := eventDefinitionKindOf(child.Tag)
		if !ok {
			if options.Strict {
				return api.NotImplemented("%s not support to deserialize", child.FullTag())
			}
			log.Debugf("skip unsupported element <%s> in event", child.FullTag())
			return nil
		}
		event.GetEvent().AddDefinition(readEventDefinition(kind, child))
		return nil
	}

	if err := s.inner.deserialize(start, event, ranger); err != nil {
		return nil, err
	}

	return event, nil
}

func writeEventDefinition(def *EventDefinition, start *etree.Element) error {
	info, ok := eventDefinitionInfos[def.Kind]
	if !ok {
		return api.NotImplemented("event definition %s not support to serialize", def.Kind)
	}

	child := start.CreateElement("bpmn:" + info.tag)
	if def.Id != "" {
		child.CreateAttr("id", def.Id)
	}
	if info.ref != "" && def.Ref != "" {
		child.CreateAttr(info.ref, def.Ref)
	}
	if def.ExpressionType != "" {
		expr := child.CreateElement("bpmn:" + def.ExpressionType)
		expr.CreateAttr("xsi:type", "bpmn:tFormalExpression")
		expr.SetText(def.Expression)
	}

	return nil
}

func readEventDefinition(kind EventDefinitionKind, start *etree.Element) *EventDefinition {
	def := &EventDefinition{Kind: kind}
	def.Id, _ = getAttr(start.Attr, "id")
	if info := eventDefinitionInfos[kind]; info.ref != "" {
		def.Ref, _ = getAttr(start.Attr, info.ref)
	}
	if children := start.ChildElements(); len(children) > 0 {
		def.ExpressionType = children[0].Tag
		def.Expression = children[0].Text()
	}
	return def
}

type taskSerde struct {
	inner flowNodeSerde
	tag   string
}

func (s *taskSerde) Serialize(element any, start *etree.Element) error {
	activity, ok := element.(ActivityInterface)
	if !ok {
		return fmt.Errorf("%v is not Task", element)
	}

	start.Space = "bpmn"
	start.Tag = s.tag
	task := activity.GetTask()
	if task.IsForCompensation {
		start.CreateAttr("isForCompensation", "true")
	}
	if task.Default != "" {
		start.CreateAttr("default", task.Default)
	}
	switch tt := activity.(type) {
	case *ServiceTask:
		if tt.Implementation != "" {
			start.CreateAttr("implementation", tt.Implementation)
		}
	case *ScriptTask:
		if tt.ScriptFormat != "" {
			start.CreateAttr("scriptFormat", tt.ScriptFormat)
		}
	}
	s.inner.serialize(activity, start)

	if tt, ok := activity.(*ScriptTask); ok && tt.Script != "" {
		start.CreateElement("bpmn:script").SetText(tt.Script)
	}

	return nil
}

func (s *taskSerde) Deserialize(start *etree.Element, options ParseOptions) (any, error) {
	var activity ActivityInterface
	switch s.tag {
	case "task":
		activity = &Task{}
	case "serviceTask":
		task := &ServiceTask{}
		task.Implementation, _ = getAttr(start.Attr, "implementation")
		activity = task
	case "userTask":
		activity = &UserTask{}
	case "scriptTask":
		task := &ScriptTask{}
		task.ScriptFormat, _ = getAttr(start.Attr, "scriptFormat")
		activity = task
	case "manualTask":
		activity = &ManualTask{}
	default:
		return nil, api.NotImplemented("%s not support to deserialize", start.FullTag())
	}

	task := activity.GetTask()
	task.IsForCompensation = getBoolAttr(start.Attr, "isForCompensation", false)
	task.Default, _ = getAttr(start.Attr, "default")

	ranger := func(child *etree.Element) error {
		if tt, ok := activity.(*ScriptTask); ok && child.Tag == "script" {
			tt.Script = child.Text()
			return nil
		}
		log.Debugf("skip element <%s> in %s", child.FullTag(), s.tag)
		return nil
	}

	if err := s.inner.deserialize(start, activity, ranger); err != nil {
		return nil, err
	}

	return activity, nil
}

type gatewaySerde struct {
	inner flowNodeSerde
	tag   string
}

func (s *gatewaySerde) Serialize(element any, start *etree.Element) error {
	gw, ok := element.(GatewayInterface)
	if !ok {
		return fmt.Errorf("%v is not Gateway", element)
	}

	start.Space = "bpmn"
	start.Tag = s.tag
	gateway := gw.GetGateway()
	if gateway.GatewayDirection != "" {
		start.CreateAttr("gatewayDirection", gateway.GatewayDirection)
	}
	if gateway.Default != "" {
		start.CreateAttr("default", gateway.Default)
	}
	s.inner.serialize(gw, start)

	return nil
}

func (s *gatewaySerde) Deserialize(start *etree.Element, options ParseOptions) (any, error) {
	var gw GatewayInterface
	switch s.tag {
	case "exclusiveGateway":
		gw = &ExclusiveGateway{}
	case "inclusiveGateway":
		gw = &InclusiveGateway{}
	case "parallelGateway":
		gw = &ParallelGateway{}
	case "eventBasedGateway":
		gw = &EventBasedGateway{}
	default:
		return nil, api.NotImplemented("%s not support to deserialize", start.FullTag())
	}

	gateway := gw.GetGateway()
	gateway.GatewayDirection, _ = getAttr(start.Attr, "gatewayDirection")
	gateway.Default, _ = getAttr(start.Attr, "default")

	if err := s.inner.deserialize(start, gw, nil); err != nil {
		return nil, err
	}

	return gw, nil
}

type dataObjectSerde struct{ inner flowNodeSerde }

func (s *dataObjectSerde) Serialize(element any, start *etree.Element) error {
	do, ok := element.(*DataObject)
	if !ok {
		return fmt.Errorf("%v is not DataObject", element)
	}
	start.Space = "bpmn"
	start.Tag = "dataObject"
	if do.IsCollection {
		start.CreateAttr("isCollection", "true")
	}
	s.inner.serialize(do, start)

	return nil
}

func (s *dataObjectSerde) Deserialize(start *etree.Element, options ParseOptions) (any, error) {
	do := &DataObject{}
	do.IsCollection = getBoolAttr(start.Attr, "isCollection", false)
	if err := s.inner.deserialize(start, do, nil); err != nil {
		return nil, err
	}

	return do, nil
}

type textAnnotationSerde struct{}

func (s *textAnnotationSerde) Serialize(element any, start *etree.Element) error {
	annotation, ok := element.(*TextAnnotation)
	if !ok {
		return fmt.Errorf("%v is not TextAnnotation", element)
	}
	start.Space = "bpmn"
	start.Tag = "textAnnotation"
	writeMeta(annotation, start)
	if annotation.Text != "" {
		start.CreateElement("bpmn:text").SetText(annotation.Text)
	}

	return nil
}

func (s *textAnnotationSerde) Deserialize(start *etree.Element, options ParseOptions) (any, error) {
	annotation := &TextAnnotation{}
	readMeta(start, annotation)
	if text := start.SelectElement("text"); text != nil {
		annotation.Text = text.Text()
	}

	return annotation, nil
}

func writeEdge(edge Edge, start *etree.Element) {
	writeMeta(edge, start)
	if edge.GetSourceRef() != "" {
		start.CreateAttr("sourceRef", edge.GetSourceRef())
	}
	if edge.GetTargetRef() != "" {
		start.CreateAttr("targetRef", edge.GetTargetRef())
	}
}

func readEdge(start *etree.Element, edge Edge) {
	readMeta(start, edge)
	if ref, ok := getAttr(start.Attr, "sourceRef"); ok {
		edge.SetSourceRef(ref)
	}
	if ref, ok := getAttr(start.Attr, "targetRef"); ok {
		edge.SetTargetRef(ref)
	}
}

type sequenceFlowSerde struct{}

func (s *sequenceFlowSerde) Serialize(element any, start *etree.Element) error {
	flow, ok := element.(*SequenceFlow)
	if !ok {
		return fmt.Errorf("%v is not SequenceFlow", element)
	}

	start.Space = "bpmn"
	start.Tag = "sequenceFlow"
	writeEdge(flow, start)
	if condition := flow.Condition; condition != nil {
		child := start.CreateElement("bpmn:conditionExpression")
		if condition.Type != "" {
			child.CreateAttr("xsi:type", condition.Type)
		}
		child.SetText(condition.Value)
	}

	return nil
}

func (s *sequenceFlowSerde) Deserialize(start *etree.Element, options ParseOptions) (any, error) {
	flow := &SequenceFlow{}
	readEdge(start, flow)

	if child := start.SelectElement("conditionExpression"); child != nil {
		typ, _ := getAttr(child.Attr, "type")
		flow.Condition = &ConditionExpression{
			Type:  typ,
			Value: child.Text(),
		}
	}

	return flow, nil
}

type associationSerde struct{}

func (s *associationSerde) Serialize(element any, start *etree.Element) error {
	association, ok := element.(*Association)
	if !ok {
		return fmt.Errorf("%v is not Association", element)
	}

	start.Space = "bpmn"
	start.Tag = "association"
	writeEdge(association, start)
	if direction := association.GetDirection(); direction != AssociationNone {
		start.CreateAttr("associationDirection", string(direction))
	}

	return nil
}

func (s *associationSerde) Deserialize(start *etree.Element, options ParseOptions) (any, error) {
	association := &Association{Direction: AssociationNone}
	readEdge(start, association)
	if v, ok := getAttr(start.Attr, "associationDirection"); ok {
		association.Direction = AssociationDirection(v)
	}

	return association, nil
}

type messageFlowSerde struct{}

func (s *messageFlowSerde) Serialize(element any, start *etree.Element) error {
	flow, ok := element.(*MessageFlow)
	if !ok {
		return fmt.Errorf("%v is not MessageFlow", element)
	}

	start.Space = "bpmn"
	start.Tag = "messageFlow"
	writeEdge(flow, start)
	if flow.MessageRef != "" {
		start.CreateAttr("messageRef", flow.MessageRef)
	}

	return nil
}

func (s *messageFlowSerde) Deserialize(start *etree.Element, options ParseOptions) (any, error) {
	flow := &MessageFlow{}
	readEdge(start, flow)
	flow.MessageRef, _ = getAttr(start.Attr, "messageRef")

	return flow, nil
}

type diagramSerde struct{}

func (s *diagramSerde) Serialize(element any, start *etree.Element) error {
	d, ok := element.(*Diagram)
	if !ok {
		return fmt.Errorf("%v is not Diagram", element)
	}

	start.Space = "bpmndi"
	start.Tag = "BPMNDiagram"
	if d.Id != "" {
		start.CreateAttr("id", d.Id)
	}

	for _, plane := range d.Planes {
		if err := serializeChild(plane, start); err != nil {
			return err
		}
	}

	return nil
}

func (s *diagramSerde) Deserialize(start *etree.Element, options ParseOptions) (any, error) {
	d := &Diagram{}

	d.Id, _ = getAttr(start.Attr, "id")

	d.Planes = make([]*DiagramPlane, 0)
	for _, child := range start.ChildElements() {
		v, err := deserializeChild(child, options)
		if err != nil {
			return nil, err
		}
		if plane, ok := v.(*DiagramPlane); ok {
			d.Planes = append(d.Planes, plane)
		}
	}

	return d, nil
}

type diagramPlaneSerde struct{}

func (s *diagramPlaneSerde) Serialize(element any, start *etree.Element) error {
	plane, ok := element.(*DiagramPlane)
	if !ok {
		return fmt.Errorf("%v is not DiagramPlane", element)
	}

	start.Space = "bpmndi"
	start.Tag = "BPMNPlane"
	if plane.Id != "" {
		start.CreateAttr("id", plane.Id)
	}
	if plane.Element != "" {
		start.CreateAttr("bpmnElement", plane.Element)
	}

	for _, shape := range plane.Shapes {
		if err := serializeChild(shape, start); err != nil {
			return err
		}
	}

	for _, edge := range plane.Edges {
		if err := serializeChild(edge, start); err != nil {
			return err
		}
	}

	return nil
}

func (s *diagramPlaneSerde) Deserialize(start *etree.Element, options ParseOptions) (any, error) {
	plane := &DiagramPlane{}

	plane.Id, _ = getAttr(start.Attr, "id")
	plane.Element, _ = getAttr(start.Attr, "bpmnElement")

	plane.Edges = []*DiagramEdge{}
	plane.Shapes = []*DiagramShape{}
	for _, child := range start.ChildElements() {
		elem, err := deserializeChild(child, options)
		if err != nil {
			return nil, err
		}
		switch tt := elem.(type) {
		case *DiagramEdge:
			plane.Edges = append(plane.Edges, tt)
		case *DiagramShape:
			plane.Shapes = append(plane.Shapes, tt)
		}
	}

	return plane, nil
}

type diagramShapeSerde struct{}

func (s *diagramShapeSerde) Serialize(element any, start *etree.Element) error {
	shape, ok := element.(*DiagramShape)
	if !ok {
		return fmt.Errorf("%v is not DiagramShape", element)
	}

	start.Space = "bpmndi"
	start.Tag = "BPMNShape"
	if shape.Id != "" {
		start.CreateAttr("id", shape.Id)
	}
	if shape.Element != "" {
		start.CreateAttr("bpmnElement", shape.Element)
	}
	if shape.IsExpanded != nil {
		start.CreateAttr("isExpanded", strconv.FormatBool(*shape.IsExpanded))
	}
	if shape.IsHorizontal != nil {
		start.CreateAttr("isHorizontal", strconv.FormatBool(*shape.IsHorizontal))
	}

	if bounds := shape.Bounds; bounds != nil {
		writeBounds(bounds, start)
	}
	if label := shape.Label; label != nil {
		if err := serializeChild(label, start); err != nil {
			return err
		}
	}

	return nil
}

func (s *diagramShapeSerde) Deserialize(start *etree.Element, options ParseOptions) (any, error) {
	shape := &DiagramShape{}

	shape.Id, _ = getAttr(start.Attr, "id")
	shape.Element, _ = getAttr(start.Attr, "bpmnElement")
	if _, ok := getAttr(start.Attr, "isExpanded"); ok {
		v := getBoolAttr(start.Attr, "isExpanded", false)
		shape.IsExpanded = &v
	}
	if _, ok := getAttr(start.Attr, "isHorizontal"); ok {
		v := getBoolAttr(start.Attr, "isHorizontal", false)
		shape.IsHorizontal = &v
	}

	for _, child := range start.ChildElements() {
		switch child.Tag {
		case "BPMNLabel":
			v, err := new(diagramLabelSerde).Deserialize(child, options)
			if err != nil {
				return nil, err
			}
			shape.Label = v.(*DiagramLabel)
		case "Bounds":
			bounds, err := readBounds(child)
			if err != nil {
				return nil, err
			}
			shape.Bounds = bounds
		}
	}

	return shape, nil
}

type diagramEdgeSerde struct{}

func (s *diagramEdgeSerde) Serialize(element any, start *etree.Element) error {
	edge, ok := element.(*DiagramEdge)
	if !ok {
		return fmt.Errorf("%v is not DiagramEdge", element)
	}

	start.Space = "bpmndi"
	start.Tag = "BPMNEdge"
	if edge.Id != "" {
		start.CreateAttr("id", edge.Id)
	}
	if edge.Element != "" {
		start.CreateAttr("bpmnElement", edge.Element)
	}

	for _, waypoint := range edge.Waypoints {
		child := start.CreateElement("di:waypoint")
		child.CreateAttr("x", waypoint.X.String())
		child.CreateAttr("y", waypoint.Y.String())
	}
	if label := edge.Label; label != nil {
		if err := serializeChild(label, start); err != nil {
			return err
		}
	}

	return nil
}

func (s *diagramEdgeSerde) Deserialize(start *etree.Element, options ParseOptions) (any, error) {
	edge := &DiagramEdge{}

	edge.Id, _ = getAttr(start.Attr, "id")
	edge.Element, _ = getAttr(start.Attr, "bpmnElement")

	edge.Waypoints = []*DiagramWaypoint{}
	for _, child := range start.ChildElements() {
		switch child.Tag {
		case "BPMNLabel":
			v, err := new(diagramLabelSerde).Deserialize(child, options)
			if err != nil {
				return nil, err
			}
			edge.Label = v.(*DiagramLabel)
		case "waypoint":
			waypoint := &DiagramWaypoint{}
			x, _ := getAttr(child.Attr, "x")
			y, _ := getAttr(child.Attr, "y")
			var err error
			if waypoint.X, err = parseCoordinate(x); err != nil {
				return nil, api.BadRequest("waypoint of %s: %v", edge.Id, err)
			}
			if waypoint.Y, err = parseCoordinate(y); err != nil {
				return nil, api.BadRequest("waypoint of %s: %v", edge.Id, err)
			}
			edge.Waypoints = append(edge.Waypoints, waypoint)
		}
	}

	return edge, nil
}

type diagramLabelSerde struct{}

func (s *diagramLabelSerde) Serialize(element any, start *etree.Element) error {
	label, ok := element.(*DiagramLabel)
	if !ok {
		return fmt.Errorf("%v is not DiagramLabel", element)
	}

	start.Space = "bpmndi"
	start.Tag = "BPMNLabel"
	if bounds := label.Bounds; bounds != nil {
		writeBounds(bounds, start)
	}

	return nil
}

func (s *diagramLabelSerde) Deserialize(start *etree.Element, options ParseOptions) (any, error) {
	label := &DiagramLabel{}

	if child := start.SelectElement("Bounds"); child != nil {
		bounds, err := readBounds(child)
		if err != nil {
			return nil, err
		}
		label.Bounds = bounds
	}

	return label, nil
}

func writeBounds(bounds *DiagramBounds, parent *etree.Element) {
	child := parent.CreateElement("dc:Bounds")
	child.CreateAttr("x", bounds.X.String())
	child.CreateAttr("y", bounds.Y.String())
	child.CreateAttr("width", bounds.Width.String())
	child.CreateAttr("height", bounds.Height.String())
}

func readBounds(start *etree.Element) (*DiagramBounds, error) {
	bounds := &DiagramBounds{}
	targets := map[string]*decimal.Decimal{
		"x":      &bounds.X,
		"y":      &bounds.Y,
		"width":  &bounds.Width,
		"height": &bounds.Height,
	}
	for _, attr := range start.Attr {
		target, ok := targets[attr.Key]
		if !ok {
			continue
		}
		v, err := parseCoordinate(attr.Value)
		if err != nil {
			return nil, api.BadRequest("bounds %s: %v", attr.Key, err)
		}
		*target = v
	}

	return bounds, nil
}

func parseCoordinate(v string) (decimal.Decimal, error) {
	if v == "" {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(v)
}
