// Package xmltree decodes XML documents into a generic key-value tree.
// NCBI's E-utilities render repeated elements as a list only when more
// than one is present, so every repeated-element access must go through
// EnsureList rather than assuming either shape.
package xmltree

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Parse decodes an XML document into a generic tree keyed by element
// name. Elements with children become map[string]any, repeated sibling
// names collapse into []any in document order, attributes appear under
// "@name" keys, and character data beside attributes or children
// appears under "#text". An element holding only character data becomes
// a plain string; an empty element becomes nil.
func Parse(data []byte) (map[string]any, error) {
	dec := xml.NewDecoder(bytes.NewReader(data))

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			return nil, fmt.Errorf("xml document has no root element")
		}
		if err != nil {
			return nil, fmt.Errorf("failed to parse xml: %w", err)
		}
		start, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}
		value, err := parseElement(dec, start)
		if err != nil {
			return nil, fmt.Errorf("failed to parse xml: %w", err)
		}
		return map[string]any{start.Name.Local: value}, nil
	}
}

// parseElement consumes tokens up to the matching end element and
// returns the element's tree value.
func parseElement(dec *xml.Decoder, start xml.StartElement) (any, error) {
	var children map[string]any
	var text strings.Builder

	addChild := func(name string, value any) {
		if children == nil {
			children = make(map[string]any)
		}
		existing, ok := children[name]
		if !ok {
			children[name] = value
			return
		}
		if list, isList := existing.([]any); isList {
			children[name] = append(list, value)
			return
		}
		children[name] = []any{existing, value}
	}

	for _, attr := range start.Attr {
		addChild("@"+attr.Name.Local, attr.Value)
	}

	for {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			value, err := parseElement(dec, t)
			if err != nil {
				return nil, err
			}
			addChild(t.Name.Local, value)
		case xml.CharData:
			text.Write(t)
		case xml.EndElement:
			trimmed := strings.TrimSpace(text.String())
			if children == nil {
				if trimmed == "" {
					return nil, nil
				}
				return trimmed, nil
			}
			if trimmed != "" {
				children["#text"] = trimmed
			}
			return children, nil
		}
	}
}

// EnsureList normalizes the single-vs-list ambiguity: nil stays empty,
// a list stays itself, and any scalar or map becomes a one-element
// list. Every repeated-element field (IdList/Id, DocSum, Item, LinkSet,
// LinkSetDb, Link, DbList/DbName) must pass through here before iteration.
func EnsureList(v any) []any {
	switch t := v.(type) {
	case nil:
		return nil
	case []any:
		return t
	default:
		return []any{t}
	}
}

// Child returns the named entry of a map node, or nil when the value is
// not a map or the key is absent.
func Child(v any, key string) any {
	if m, ok := v.(map[string]any); ok {
		return m[key]
	}
	return nil
}

// Text returns the character data of a node: the node itself when it is
// a plain string, its "#text" entry when it is a map, "" otherwise.
func Text(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case map[string]any:
		if s, ok := t["#text"].(string); ok {
			return s
		}
	}
	return ""
}

// Int returns the node's character data as an integer, defaulting to 0
// when missing or malformed.
func Int(v any) int {
	n, err := strconv.Atoi(Text(v))
	if err != nil {
		return 0
	}
	return n
}
