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

package xmltree

import "encoding/json"

// MarshalJSON renders the subtree as the semantic mapping: attributes under
// "@_name", text under "#text", repeated children as arrays. An element with
// neither attributes nor children collapses to its text.
func (n *Node) MarshalJSON() ([]byte, error) {
	if n == nil {
		return []byte("null"), nil
	}
	return json.Marshal(n.semantic())
}

func (n *Node) semantic() any {
	text := n.Text()
	if len(n.attrs) == 0 && len(n.kids) == 0 {
		return text
	}

	m := make(map[string]any, len(n.attrs)+len(n.kids)+1)
	for _, a := range n.attrs {
		m[AttrPrefix+a.Name] = a.Value
	}

	var order []string
	grouped := make(map[string][]*Node)
	for _, k := range n.kids {
		if _, seen := grouped[k.name]; !seen {
			order = append(order, k.name)
		}
		grouped[k.name] = append(grouped[k.name], k)
	}
	for _, name := range order {
		nodes := grouped[name]
		if len(nodes) == 1 {
			m[name] = nodes[0].semantic()
			continue
		}
		seq := make([]any, len(nodes))
		for i, k := range nodes {
			seq[i] = k.semantic()
		}
		m[name] = seq
	}

	if text != "" {
		m[TextKey] = text
	}
	return m
}
