package bpmn

import (
	"github.com/beevik/etree"
	"github.com/vine-io/bpmn/api"
)

// FromXML parses a BPMN document and links it.
func FromXML(text string, opts ...ParseOption) (*Definitions, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromString(text); err != nil {
		return nil, api.BadRequest("read bpmn xml: %v", err)
	}
	return fromDocument(doc, NewParseOptions(opts...))
}

// FromBytes is FromXML for a byte slice.
func FromBytes(data []byte, opts ...ParseOption) (*Definitions, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, api.BadRequest("read bpmn xml: %v", err)
	}
	return fromDocument(doc, NewParseOptions(opts...))
}

func fromDocument(doc *etree.Document, options ParseOptions) (*Definitions, error) {
	root := doc.Root()
	if root == nil {
		return nil, api.BadRequest("empty bpmn document")
	}
	if root.Tag != "definitions" {
		return nil, api.BadRequest("root element is <%s>, want <definitions>", root.FullTag())
	}

	v, err := Deserialize(root, options)
	if err != nil {
		return nil, err
	}
	d := v.(*Definitions)
	d.Link()

	return d, nil
}

type WriteOptions struct {
	// Indent is the number of spaces per level, 0 writes a single line.
	Indent int
}

type WriteOption func(options *WriteOptions)

func WithIndent(indent int) WriteOption {
	return func(options *WriteOptions) {
		options.Indent = indent
	}
}

func (d *Definitions) toDocument(opts ...WriteOption) (*etree.Document, error) {
	options := WriteOptions{Indent: 2}
	for _, opt := range opts {
		opt(&options)
	}

	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	root := doc.CreateElement("")
	if err := Serialize(d, root); err != nil {
		return nil, err
	}
	if options.Indent > 0 {
		doc.Indent(options.Indent)
	}

	return doc, nil
}

// WriteToBytes serializes the document. The incoming and outgoing references
// of every flow node are derived from the current adjacency.
func (d *Definitions) WriteToBytes(opts ...WriteOption) ([]byte, error) {
	doc, err := d.toDocument(opts...)
	if err != nil {
		return nil, err
	}
	return doc.WriteToBytes()
}

func (d *Definitions) WriteToString(opts ...WriteOption) (string, error) {
	doc, err := d.toDocument(opts...)
	if err != nil {
		return "", err
	}
	return doc.WriteToString()
}
