package bpmn

import (
	"reflect"
	"strconv"

	"github.com/beevik/etree"
	"github.com/vine-io/pkg/xname"
)

// getAttr looks an attribute up by its local name, ignoring the prefix.
func getAttr(attrs []etree.Attr, name string) (string, bool) {
	for _, attr := range attrs {
		if attr.Space == "xmlns" {
			continue
		}
		if attr.Key == name {
			return attr.Value, true
		}
	}
	return "", false
}

func getBoolAttr(attrs []etree.Attr, name string, def bool) bool {
	v, ok := getAttr(attrs, name)
	if !ok {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}

func getKind(v any) string {
	typ := reflect.TypeOf(v)
	if typ.Kind() == reflect.Ptr {
		typ = typ.Elem()
	}
	return typ.Name()
}

func randName() string {
	return xname.Gen(xname.C(7), xname.Lowercase(), xname.Digit())
}

func randShapeName(kind Kind) string {
	prefix := ""
	switch {
	case kind == ProcessKind:
		prefix = "Process"
	case kind.IsEvent():
		prefix = "Event"
	case kind.IsGateway():
		prefix = "Gateway"
	case kind == SequenceFlowKind:
		prefix = "Flow"
	case kind == AssociationKind:
		prefix = "Association"
	case kind == DataObjectKind:
		prefix = "DataObject"
	default:
		prefix = "Activity"
	}

	return prefix + "_" + randName()
}
