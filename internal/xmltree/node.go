// Copyright 2026 Conductor OSS
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.

// Package xmltree parses XML parts into a namespace-free semantic tree.
//
// Element and attribute names are local names: "p:sp" and "a:off" are looked
// up as "sp" and "off". A key under a parent resolves to nothing, a text
// value, one node, or a sequence of nodes; AsArray flattens all of those to a
// slice so callers never branch on single-versus-many themselves.
package xmltree

import (
	"strings"

	"github.com/nicholasgasior/slidejson-go/units"
)

const (
	// AttrPrefix marks attribute keys in Get and in the JSON view.
	AttrPrefix = "@_"
	// TextKey addresses element text in Get and in the JSON view.
	TextKey = "#text"
)

// Attr is one attribute with its namespace prefix removed.
type Attr struct {
	Name  string
	Value string
}

// Node is one element of a parsed document. The zero value and nil are both
// valid empty nodes.
type Node struct {
	name  string
	attrs []Attr
	text  strings.Builder
	kids  []*Node
}

// Name returns the local element name. The document node has an empty name.
func (n *Node) Name() string {
	if n == nil {
		return ""
	}
	return n.name
}

// Text returns the element's own character data, trimmed.
func (n *Node) Text() string {
	if n == nil {
		return ""
	}
	return strings.TrimSpace(n.text.String())
}

// RawText returns the element's own character data as written.
func (n *Node) RawText() string {
	if n == nil {
		return ""
	}
	return n.text.String()
}

// Attrs returns the element's attributes in document order.
func (n *Node) Attrs() []Attr {
	if n == nil {
		return nil
	}
	return n.attrs
}

// Elements returns every child element in document order.
func (n *Node) Elements() []*Node {
	if n == nil {
		return nil
	}
	return n.kids
}

// Root returns the first element of a document node.
func (n *Node) Root() *Node {
	if n == nil || len(n.kids) == 0 {
		return nil
	}
	return n.kids[0]
}

// Attr looks up an attribute by local name. A leading AttrPrefix is accepted.
// When two prefixed attributes share a local name the later one wins.
func (n *Node) Attr(name string) (string, bool) {
	if n == nil {
		return "", false
	}
	name = strings.TrimPrefix(name, AttrPrefix)
	for i := len(n.attrs) - 1; i >= 0; i-- {
		if n.attrs[i].Name == name {
			return n.attrs[i].Value, true
		}
	}
	return "", false
}

// Child returns the first child element with the given local name, or nil.
func (n *Node) Child(name string) *Node {
	if n == nil {
		return nil
	}
	for _, k := range n.kids {
		if k.name == name {
			return k
		}
	}
	return nil
}

// Children returns all child elements with the given local name.
func (n *Node) Children(name string) []*Node {
	return AsArray(n.Get(name))
}

// Path follows a chain of first-child lookups and returns nil as soon as one
// step is missing.
func (n *Node) Path(names ...string) *Node {
	cur := n
	for _, name := range names {
		cur = cur.Child(name)
		if cur == nil {
			return nil
		}
	}
	return cur
}

// Get resolves a key the way the semantic mapping exposes it: "@_name" for
// attributes, "#text" for text, anything else for child elements.
func (n *Node) Get(key string) Value {
	if n == nil {
		return Value{}
	}
	switch {
	case strings.HasPrefix(key, AttrPrefix):
		if v, ok := n.Attr(key); ok {
			return Value{kind: KindText, text: v}
		}
		return Value{}
	case key == TextKey:
		if t := n.Text(); t != "" {
			return Value{kind: KindText, text: t}
		}
		return Value{}
	}
	var matched []*Node
	for _, k := range n.kids {
		if k.name == key {
			matched = append(matched, k)
		}
	}
	switch len(matched) {
	case 0:
		return Value{}
	case 1:
		return Value{kind: KindNode, nodes: matched}
	default:
		return Value{kind: KindSequence, nodes: matched}
	}
}

// String returns the attribute value, or def when it is absent.
func (n *Node) String(key, def string) string {
	if v, ok := n.Attr(key); ok {
		return v
	}
	return def
}

// Int returns the attribute parsed as an integer, or def when it is absent or
// unparsable.
func (n *Node) Int(key string, def int64) int64 {
	v, ok := n.Attr(key)
	if !ok {
		return def
	}
	return units.ParseInt(v, def)
}

// Float returns the attribute parsed as a float, or def.
func (n *Node) Float(key string, def float64) float64 {
	v, ok := n.Attr(key)
	if !ok {
		return def
	}
	return units.ParseFloat(v, def)
}

// Bool returns the attribute as a boolean ("true"/"1"/"false"/"0"), or def.
func (n *Node) Bool(key string, def bool) bool {
	v, ok := n.Attr(key)
	if !ok {
		return def
	}
	return units.ParseBool(v, def)
}

// Kind says which shape a Value has.
type Kind int

const (
	KindAbsent Kind = iota
	KindText
	KindNode
	KindSequence
)

// Value is what a key resolves to under one element.
type Value struct {
	kind  Kind
	text  string
	nodes []*Node
}

// Kind reports the shape of the value.
func (v Value) Kind() Kind { return v.kind }

// IsAbsent reports whether the key resolved to nothing.
func (v Value) IsAbsent() bool { return v.kind == KindAbsent }

// Text returns the text of a text value or of a single node.
func (v Value) Text() string {
	switch v.kind {
	case KindText:
		return v.text
	case KindNode:
		return v.nodes[0].Text()
	}
	return ""
}

// First returns the node of a single value, the first node of a sequence, or
// nil.
func (v Value) First() *Node {
	if len(v.nodes) == 0 {
		return nil
	}
	return v.nodes[0]
}

// AsArray normalizes a value to a sequence of nodes: absent and text values
// give an empty slice, a single node a slice of one.
func AsArray(v Value) []*Node {
	switch v.kind {
	case KindNode, KindSequence:
		out := make([]*Node, len(v.nodes))
		copy(out, v.nodes)
		return out
	}
	return []*Node{}
}
