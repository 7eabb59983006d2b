// =============================================================================
// XLIFF/CSV Converter - XLIFF Writer
// =============================================================================
//
// This module serializes records into an XLIFF 1.2 document.
//
// XML STRUCTURE:
//   <?xml version="1.0" encoding="UTF-8"?>
//   <xliff version="1.2" xmlns="urn:oasis:names:tc:xliff:document:1.2" ...>
//     <file original="a.txt" source-language="en" datatype="plaintext">
//       <header/>
//       <body>
//         <trans-unit id="1">
//           <source>Hello</source>
//           <note/>                      <!-- always emitted, even if empty -->
//         </trans-unit>
//       </body>
//     </file>
//   </xliff>
//
// GROUPING:
//   Records are grouped by their File field in first-seen order. The
//   source-language of a group is taken from the FIRST record of that group;
//   later records with a different language do not change it.
//
// =============================================================================

package xliff

import (
	"bytes"
	"encoding/xml"
	"fmt"

	"github.com/ginjaninja78/XLIFF-CSV-conversion/internal/types"
)

// =============================================================================
// DOCUMENT CONSTANTS
// =============================================================================

const (
	// Version is the XLIFF version written on the root element.
	Version = "1.2"

	// Namespace is the XLIFF 1.2 default namespace.
	Namespace = "urn:oasis:names:tc:xliff:document:1.2"

	// XSINamespace is the XML Schema instance namespace.
	XSINamespace = "http://www.w3.org/2001/XMLSchema-instance"

	// SchemaLocation points the XLIFF namespace at the 1.2 strict schema.
	SchemaLocation = Namespace + " http://docs.oasis-open.org/xliff/v1.2/os/xliff-core-1.2-strict.xsd"

	// Datatype is the datatype attribute of every file group.
	Datatype = "plaintext"
)

// =============================================================================
// XML GENERATION OPTIONS
// =============================================================================

// Options contains options for XML generation.
type Options struct {
	// Indent is the string used for one level of indentation.
	// An empty string writes the document without line breaks.
	// Default: "  " (two spaces)
	Indent string
}

// DefaultOptions returns the default generation options.
func DefaultOptions() Options {
	return Options{
		Indent: "  ",
	}
}

// =============================================================================
// GROUPING
// =============================================================================

// Group is the set of records written as one <file> element.
type Group struct {
	// File is the value of the "original" attribute.
	File string

	// Language is the value of the "source-language" attribute,
	// taken from the first record of the group.
	Language string

	// Records are the group's records in input order.
	Records []types.Record
}

// GroupByFile groups records by File, preserving the first-seen order of
// files and the input order of records within each file.
func GroupByFile(records []types.Record) []Group {
	var groups []Group
	index := make(map[string]int)

	for _, record := range records {
		i, exists := index[record.File]
		if !exists {
			i = len(groups)
			index[record.File] = i
			groups = append(groups, Group{
				File:     record.File,
				Language: record.Language,
			})
		}
		groups[i].Records = append(groups[i].Records, record)
	}

	return groups
}

// =============================================================================
// XML GENERATION FUNCTIONS
// =============================================================================

// Generate creates an XLIFF document from the records using DefaultOptions.
func Generate(records []types.Record) ([]byte, error) {
	return GenerateWithOptions(records, DefaultOptions())
}

// GenerateWithOptions creates an XLIFF document with custom options.
//
// PARAMETERS:
//   - records: The records to serialize, in any order.
//   - options: The generation options.
//
// RETURNS:
//   - The complete document, starting with the XML declaration.
//   - An error if generation fails.
func GenerateWithOptions(records []types.Record, options Options) ([]byte, error) {
	var buffer bytes.Buffer

	buffer.WriteString(xml.Header)

	doc := buildDocument(GroupByFile(records))

	w := &elementWriter{buffer: &buffer, indent: options.Indent}
	w.writeElement(doc, 0)

	return buffer.Bytes(), nil
}

// =============================================================================
// XML DOCUMENT BUILDING
// =============================================================================

// xmlElement is a generic XML element.
// An element has either a text value or children, never both.
type xmlElement struct {
	name     xml.Name
	attrs    []xml.Attr
	value    string
	children []xmlElement
}

// buildDocument constructs the <xliff> root and all file groups.
func buildDocument(groups []Group) xmlElement {
	root := xmlElement{
		name: xml.Name{Local: elementXLIFF},
		attrs: []xml.Attr{
			attr("", attrVersion, Version),
			attr("", "xmlns", Namespace),
			attr("xmlns", "xsi", XSINamespace),
			attr("xsi", "schemaLocation", SchemaLocation),
		},
	}

	for _, group := range groups {
		root.children = append(root.children, buildFileElement(group))
	}

	return root
}

// buildFileElement constructs a <file> element with its header and body.
func buildFileElement(group Group) xmlElement {
	body := xmlElement{name: xml.Name{Local: elementBody}}

	for _, record := range group.Records {
		body.children = append(body.children, buildTransUnitElement(record))
	}

	return xmlElement{
		name: xml.Name{Local: elementFile},
		attrs: []xml.Attr{
			attr("", attrOriginal, group.File),
			attr("", attrSourceLanguage, group.Language),
			attr("", attrDatatype, Datatype),
		},
		children: []xmlElement{
			{name: xml.Name{Local: elementHeader}},
			body,
		},
	}
}

// buildTransUnitElement constructs a <trans-unit> for one record.
//
// STRUCTURE:
//   <trans-unit id="...">
//     <source>text</source>
//     <note>note</note>
//   </trans-unit>
func buildTransUnitElement(record types.Record) xmlElement {
	return xmlElement{
		name:  xml.Name{Local: elementTransUnit},
		attrs: []xml.Attr{attr("", attrID, record.Identifier)},
		children: []xmlElement{
			createSimpleElement(elementSource, record.Text),
			createSimpleElement(elementNote, record.Note),
		},
	}
}

// =============================================================================
// HELPER FUNCTIONS
// =============================================================================

// createSimpleElement creates a simple XML element with a text value.
func createSimpleElement(name, value string) xmlElement {
	return xmlElement{
		name:  xml.Name{Local: name},
		value: value,
	}
}

func attr(space, local, value string) xml.Attr {
	return xml.Attr{Name: xml.Name{Space: space, Local: local}, Value: value}
}

// qualifiedName renders a name as written in the document ("prefix:local").
// The Space of names built here holds a prefix, not a namespace URI.
func qualifiedName(name xml.Name) string {
	if name.Space == "" {
		return name.Local
	}
	return name.Space + ":" + name.Local
}

// elementWriter writes an element tree with optional indentation.
type elementWriter struct {
	buffer *bytes.Buffer
	indent string
}

func (w *elementWriter) newline() {
	if w.indent != "" {
		w.buffer.WriteString("\n")
	}
}

func (w *elementWriter) writeIndent(level int) {
	for i := 0; i < level; i++ {
		w.buffer.WriteString(w.indent)
	}
}

// writeElement writes an XML element to the buffer with indentation.
func (w *elementWriter) writeElement(element xmlElement, level int) {
	w.writeIndent(level)

	// Write opening tag.
	w.buffer.WriteString("<")
	w.buffer.WriteString(qualifiedName(element.name))

	// Write attributes.
	for _, a := range element.attrs {
		fmt.Fprintf(w.buffer, " %s=\"%s\"", qualifiedName(a.Name), escapeXML(a.Value, true))
	}

	// Empty elements are self-closing.
	if len(element.children) == 0 && element.value == "" {
		w.buffer.WriteString("/>")
		w.newline()
		return
	}

	w.buffer.WriteString(">")

	if element.value != "" {
		w.buffer.WriteString(escapeXML(element.value, false))
	} else {
		w.newline()

		for _, child := range element.children {
			w.writeElement(child, level+1)
		}

		w.writeIndent(level)
	}

	// Write closing tag.
	w.buffer.WriteString("</")
	w.buffer.WriteString(qualifiedName(element.name))
	w.buffer.WriteString(">")
	w.newline()
}

// escapeXML escapes special characters for XML.
//
// Carriage returns, and in attribute values also newlines and tabs, are
// written as character references so that a parser's end-of-line and
// attribute-value normalization give back the original string. Characters
// outside the XML 1.0 character range are replaced with U+FFFD.
func escapeXML(s string, attribute bool) string {
	var buffer bytes.Buffer

	for _, r := range s {
		switch {
		case r == '&':
			buffer.WriteString("&amp;")
		case r == '<':
			buffer.WriteString("&lt;")
		case r == '>':
			buffer.WriteString("&gt;")
		case r == '"':
			buffer.WriteString("&quot;")
		case r == '\'':
			buffer.WriteString("&apos;")
		case r == '\r':
			buffer.WriteString("&#xD;")
		case attribute && r == '\n':
			buffer.WriteString("&#xA;")
		case attribute && r == '\t':
			buffer.WriteString("&#x9;")
		case !isInCharacterRange(r):
			buffer.WriteRune('\uFFFD')
		default:
			buffer.WriteRune(r)
		}
	}

	return buffer.String()
}

// isInCharacterRange reports whether r may appear in an XML 1.0 document.
func isInCharacterRange(r rune) bool {
	return r == 0x09 ||
		r == 0x0A ||
		r == 0x0D ||
		r >= 0x20 && r <= 0xD7FF ||
		r >= 0xE000 && r <= 0xFFFD ||
		r >= 0x10000 && r <= 0x10FFFF
}
