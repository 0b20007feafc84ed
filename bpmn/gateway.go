package bpmn

// GatewayInterface is implemented by all gateway kinds.
type GatewayInterface interface {
	FlowNodeInterface
	GetGateway() *Gateway
}

type Gateway struct {
	FlowNode
	GatewayDirection string
	// Default is the id of the default outgoing sequence flow, only
	// meaningful for exclusive and inclusive gateways.
	Default string
}

func (g *Gateway) GetGateway() *Gateway { return g }

// DefaultFlow returns the outgoing sequence flow named by Default.
func (g *Gateway) DefaultFlow() (*SequenceFlow, bool) {
	if g.Default == "" {
		return nil, false
	}
	for _, flow := range g.OutgoingSequenceFlows() {
		if flow.GetID() == g.Default {
			return flow, true
		}
	}
	return nil, false
}

var _ GatewayInterface = (*ExclusiveGateway)(nil)

type ExclusiveGateway struct {
	Gateway
}

func NewExclusiveGateway(id string) *ExclusiveGateway {
	g := &ExclusiveGateway{}
	g.Id = id
	return g
}

func (g *ExclusiveGateway) GetKind() Kind { return ExclusiveGatewayKind }

type InclusiveGateway struct {
	Gateway
}

func (g *InclusiveGateway) GetKind() Kind { return InclusiveGatewayKind }

type ParallelGateway struct {
	Gateway
}

func NewParallelGateway(id string) *ParallelGateway {
	g := &ParallelGateway{}
	g.Id = id
	return g
}

func (g *ParallelGateway) GetKind() Kind { return ParallelGatewayKind }

type EventBasedGateway struct {
	Gateway
}

func (g *EventBasedGateway) GetKind() Kind { return EventBasedGatewayKind }
