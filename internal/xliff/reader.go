// =============================================================================
// XLIFF/CSV Converter - XLIFF Reader
// =============================================================================
//
// This module parses XLIFF 1.2 documents into a flat list of records.
//
// EXPECTED STRUCTURE:
//   <xliff>
//     <file original="a.txt" source-language="en">   <!-- one per group -->
//       <header/>
//       <body>
//         <trans-unit id="1">
//           <source>Hello</source>
//           <note>optional</note>
//         </trans-unit>
//         <group>                                     <!-- nesting allowed -->
//           <trans-unit id="2">...</trans-unit>
//         </group>
//       </body>
//     </file>
//   </xliff>
//
// NAMESPACES:
//   Element roles are matched on local names only, so documents using a
//   prefixed XLIFF namespace (<xlf:body>) or no namespace at all are read the
//   same way.
//
// ENCODING:
//   Documents declaring a non-UTF-8 encoding are transcoded through
//   golang.org/x/net/html/charset.
//
// =============================================================================

package xliff

import (
	"bufio"
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/ginjaninja78/XLIFF-CSV-conversion/internal/types"
	"golang.org/x/net/html/charset"
)

// =============================================================================
// ELEMENT AND ATTRIBUTE NAMES
// =============================================================================

const (
	elementXLIFF     = "xliff"
	elementFile      = "file"
	elementHeader    = "header"
	elementBody      = "body"
	elementGroup     = "group"
	elementTransUnit = "trans-unit"
	elementSource    = "source"
	elementNote      = "note"

	attrOriginal       = "original"
	attrSourceLanguage = "source-language"
	attrDatatype       = "datatype"
	attrID             = "id"
	attrVersion        = "version"
)

// utf8BOM may precede the XML declaration.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// =============================================================================
// DOCUMENT TREE
// =============================================================================

// element is a parsed markup element reduced to what the reader needs.
type element struct {
	// name is the local name (namespace stripped).
	name string

	// attrs holds attribute values keyed by local name.
	// Unqualified attributes take precedence over qualified ones.
	attrs map[string]string

	// line is the line of the start tag.
	line int

	children []*element

	// text accumulates the character data of this element and all of its
	// descendants. Only filled for elements whose text is used.
	text     strings.Builder
	keepText bool
}

// attr returns an attribute value and whether it was present.
func (e *element) attr(name string) (string, bool) {
	value, ok := e.attrs[name]
	return value, ok
}

// requireAttr returns an attribute value or a MissingAttributeError.
func (e *element) requireAttr(name string) (string, error) {
	value, ok := e.attr(name)
	if !ok {
		return "", &types.MissingAttributeError{Element: e.name, Attribute: name, Line: e.line}
	}
	return value, nil
}

func newElement(start xml.StartElement, line int, parentKeepsText bool) *element {
	el := &element{
		name:  types.LocalName(start.Name.Local),
		attrs: make(map[string]string, len(start.Attr)),
		line:  line,
	}

	// Qualified attributes first so unqualified ones overwrite them.
	for _, a := range start.Attr {
		if a.Name.Space != "" && a.Name.Space != "xmlns" {
			el.attrs[types.LocalName(a.Name.Local)] = a.Value
		}
	}
	for _, a := range start.Attr {
		if a.Name.Space == "" {
			el.attrs[types.LocalName(a.Name.Local)] = a.Value
		}
	}

	el.keepText = parentKeepsText || el.name == elementSource || el.name == elementNote
	return el
}

// =============================================================================
// PARSER FUNCTIONS
// =============================================================================

// Parse reads an XLIFF document and returns its records in document order.
//
// PARAMETERS:
//   - r: The raw markup document.
//
// RETURNS:
//   - The records, file group by file group, unit by unit.
//   - A *types.ParseError if the document is not well-formed.
//   - A *types.MissingAttributeError if a file group lacks "original" or
//     "source-language", or a trans-unit lacks "id".
func Parse(r io.Reader) ([]types.Record, error) {
	root, err := parseTree(r)
	if err != nil {
		return nil, err
	}

	return collectRecords(root)
}

// ParseBytes is Parse for an in-memory document.
func ParseBytes(data []byte) ([]types.Record, error) {
	return Parse(bytes.NewReader(data))
}

// parseTree tokenizes the whole document into an element tree.
// Any well-formedness problem becomes a *types.ParseError.
func parseTree(r io.Reader) (*element, error) {
	reader := bufio.NewReader(r)
	if prefix, _ := reader.Peek(len(utf8BOM)); bytes.Equal(prefix, utf8BOM) {
		if _, err := reader.Discard(len(utf8BOM)); err != nil {
			return nil, &types.ParseError{Err: err}
		}
	}

	decoder := xml.NewDecoder(reader)
	decoder.CharsetReader = charset.NewReaderLabel

	var root *element
	var stack []*element

	for {
		token, err := decoder.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			line, _ := decoder.InputPos()
			return nil, &types.ParseError{Line: line, Err: err}
		}

		switch t := token.(type) {
		case xml.StartElement:
			line, _ := decoder.InputPos()

			if len(stack) == 0 {
				if root != nil {
					return nil, &types.ParseError{Line: line, Msg: "junk after document element"}
				}
				root = newElement(t, line, false)
				stack = append(stack, root)
				continue
			}

			parent := stack[len(stack)-1]
			el := newElement(t, line, parent.keepText)
			parent.children = append(parent.children, el)
			stack = append(stack, el)

		case xml.EndElement:
			// The decoder rejects mismatched end tags in strict mode.
			stack = stack[:len(stack)-1]

		case xml.CharData:
			if len(stack) == 0 {
				if len(bytes.TrimSpace(t)) > 0 {
					line, _ := decoder.InputPos()
					return nil, &types.ParseError{Line: line, Msg: "text outside the document element"}
				}
				continue
			}
			for _, el := range stack {
				if el.keepText {
					el.text.Write(t)
				}
			}
		}
	}

	if root == nil {
		return nil, &types.ParseError{Msg: "no element found"}
	}

	return root, nil
}

// collectRecords walks the element tree and builds the record list.
//
// Every element child of the root is a file group. Within a group, only
// "body" children are inspected; the header is ignored.
func collectRecords(root *element) ([]types.Record, error) {
	var records []types.Record

	for _, group := range root.children {
		original, err := group.requireAttr(attrOriginal)
		if err != nil {
			return nil, err
		}

		language, err := group.requireAttr(attrSourceLanguage)
		if err != nil {
			return nil, err
		}

		for _, child := range group.children {
			if child.name != elementBody {
				continue
			}

			records, err = appendUnits(records, child, original, language)
			if err != nil {
				return nil, fmt.Errorf("file %q: %w", original, err)
			}
		}
	}

	return records, nil
}

// appendUnits appends one record per trans-unit found in container,
// descending into nested <group> elements.
func appendUnits(records []types.Record, container *element, file, language string) ([]types.Record, error) {
	for _, child := range container.children {
		switch child.name {
		case elementTransUnit:
			id, err := child.requireAttr(attrID)
			if err != nil {
				return nil, err
			}

			record := types.Record{
				Identifier: id,
				File:       file,
				Language:   language,
			}

			// A later source or note replaces an earlier one.
			for _, part := range child.children {
				switch part.name {
				case elementSource:
					record.Text = part.text.String()
				case elementNote:
					record.Note = part.text.String()
				}
			}

			records = append(records, record)

		case elementGroup:
			var err error
			records, err = appendUnits(records, child, file, language)
			if err != nil {
				return nil, err
			}
		}
	}

	return records, nil
}
