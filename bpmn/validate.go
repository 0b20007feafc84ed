package bpmn

import (
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

func (e *EventDefinition) Validate() error {
	return validation.ValidateStruct(e,
		validation.Field(&e.Kind, validation.Required, validation.Min(CompensateEventDefinition), validation.Max(TerminateEventDefinition)),
	)
}

func (e *BoundaryEvent) Validate() error {
	return validation.ValidateStruct(e,
		validation.Field(&e.Id, validation.Required),
		validation.Field(&e.AttachedToRef, validation.Required),
		validation.Field(&e.EventDefinitions),
	)
}

func (f *SequenceFlow) Validate() error {
	return validation.ValidateStruct(f,
		validation.Field(&f.Id, validation.Required),
		validation.Field(&f.SourceRef, validation.Required),
		validation.Field(&f.TargetRef, validation.Required),
	)
}

func (a *Association) Validate() error {
	return validation.ValidateStruct(a,
		validation.Field(&a.Id, validation.Required),
		validation.Field(&a.SourceRef, validation.Required),
		validation.Field(&a.TargetRef, validation.Required),
		validation.Field(&a.Direction, validation.In(AssociationNone, AssociationOne, AssociationBoth)),
	)
}

func (f *MessageFlow) Validate() error {
	return validation.ValidateStruct(f,
		validation.Field(&f.Id, validation.Required),
		validation.Field(&f.SourceRef, validation.Required),
		validation.Field(&f.TargetRef, validation.Required),
	)
}

func validateElement(elem Element) error {
	if v, ok := elem.(validation.Validatable); ok {
		return v.Validate()
	}
	return validation.Validate(elem.GetID(), validation.Required)
}

// Validate checks every element of the process. The returned
// validation.Errors is keyed by element id.
func (p *Process) Validate() error {
	errs := validation.Errors{}
	if p.Id == "" {
		errs["id"] = validation.ErrRequired
	}
	p.Range(func(elem Element) bool {
		if err := validateElement(elem); err != nil {
			errs[elem.GetID()] = err
		}
		return true
	})
	return errs.Filter()
}

// Validate checks every process and the collaboration. The returned
// validation.Errors is keyed by process id, or "collaboration".
func (d *Definitions) Validate() error {
	errs := validation.Errors{}
	for i, p := range d.Processes {
		if err := p.Validate(); err != nil {
			key := p.Id
			if key == "" {
				key = fmt.Sprintf("process[%d]", i)
			}
			errs[key] = err
		}
	}
	if c := d.Collaboration; c != nil {
		inner := validation.Errors{}
		for _, flow := range c.MessageFlows {
			if err := flow.Validate(); err != nil {
				inner[flow.Id] = err
			}
		}
		for _, participant := range c.Participants {
			if participant.Id == "" {
				inner["participant"] = validation.ErrRequired
			}
		}
		if err := inner.Filter(); err != nil {
			errs["collaboration"] = err
		}
	}
	return errs.Filter()
}
