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

// Package ooxml reads OOXML packages and resolves their relationship sidecars.
package ooxml

import (
	"errors"
	"fmt"
	"path"
	"strings"

	"github.com/nicholasgasior/slidejson-go/internal/xmltree"
)

// Relationship type fragments. Types are matched by substring, so both the
// transitional and strict namespaces match.
const (
	RelTypeSlideLayout = "slideLayout"
	RelTypeSlideMaster = "slideMaster"
	RelTypeTheme       = "theme"
	RelTypeNotesSlide  = "notesSlide"
	RelTypeImage       = "image"
)

// TargetModeExternal marks relationships that point outside the package.
const TargetModeExternal = "External"

// Relationship is one row of a .rels part.
type Relationship struct {
	ID         string
	Type       string
	Target     string
	TargetMode string
}

// RelationshipMap indexes relationships by id and remembers the order they
// were declared in.
type RelationshipMap struct {
	byID  map[string]Relationship
	order []string
}

// NewRelationshipMap returns an empty map.
func NewRelationshipMap() *RelationshipMap {
	return &RelationshipMap{byID: make(map[string]Relationship)}
}

// Add stores rel. A later relationship with the same id replaces the earlier
// one but keeps its position.
func (m *RelationshipMap) Add(rel Relationship) {
	if _, ok := m.byID[rel.ID]; !ok {
		m.order = append(m.order, rel.ID)
	}
	m.byID[rel.ID] = rel
}

// Get returns the relationship with the given id.
func (m *RelationshipMap) Get(id string) (Relationship, bool) {
	if m == nil {
		return Relationship{}, false
	}
	rel, ok := m.byID[id]
	return rel, ok
}

// FirstOfType returns the first relationship, in declaration order, whose
// type contains fragment.
func (m *RelationshipMap) FirstOfType(fragment string) (Relationship, bool) {
	if m == nil {
		return Relationship{}, false
	}
	for _, id := range m.order {
		if rel := m.byID[id]; strings.Contains(rel.Type, fragment) {
			return rel, true
		}
	}
	return Relationship{}, false
}

// All returns the relationships in declaration order.
func (m *RelationshipMap) All() []Relationship {
	if m == nil {
		return nil
	}
	out := make([]Relationship, 0, len(m.order))
	for _, id := range m.order {
		out = append(out, m.byID[id])
	}
	return out
}

// Len returns the number of relationships.
func (m *RelationshipMap) Len() int {
	if m == nil {
		return 0
	}
	return len(m.order)
}

// ParseRelationships parses the contents of a .rels part. Entries without an
// Id or a Target are skipped.
func ParseRelationships(data []byte) (*RelationshipMap, error) {
	doc, err := xmltree.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("decode relationships: %w", err)
	}
	m := NewRelationshipMap()
	root := doc.Root()
	if root.Name() != "Relationships" {
		return m, nil
	}
	for _, r := range root.Children("Relationship") {
		rel := Relationship{
			ID:         r.String("Id", ""),
			Type:       r.String("Type", ""),
			Target:     r.String("Target", ""),
			TargetMode: r.String("TargetMode", ""),
		}
		if rel.ID == "" || rel.Target == "" {
			continue
		}
		m.Add(rel)
	}
	return m, nil
}

// ReadRelationships reads the sidecar of partName from pkg. A part without a
// sidecar has no relationships, which is not an error.
func ReadRelationships(pkg Package, partName string) (*RelationshipMap, error) {
	data, err := pkg.ReadEntry(RelsPathFor(partName))
	if errors.Is(err, ErrPartNotFound) {
		return NewRelationshipMap(), nil
	}
	if err != nil {
		return nil, err
	}
	return ParseRelationships(data)
}

// RelsPathFor returns the .rels path for a given part.
func RelsPathFor(partName string) string {
	dir := path.Dir(partName)
	base := path.Base(partName)
	if dir == "." {
		return "_rels/" + base + ".rels"
	}
	return dir + "/_rels/" + base + ".rels"
}

// ResolveTarget resolves a relationship target against the part that owns it.
// Absolute targets are package-root relative.
func ResolveTarget(basePath, target string) string {
	if strings.HasPrefix(target, "/") {
		return NormalizePartName(target)
	}
	return path.Join(path.Dir(basePath), target)
}

// MediaPath maps a slide-relative media target such as "../media/image1.png"
// to its part name under ppt/.
func MediaPath(target string) string {
	if strings.HasPrefix(target, "/") {
		return NormalizePartName(target)
	}
	for strings.HasPrefix(target, "../") {
		target = strings.TrimPrefix(target, "../")
	}
	return path.Join("ppt", target)
}

// BaseName returns the last element of a target path.
func BaseName(target string) string {
	if target == "" {
		return ""
	}
	return path.Base(strings.ReplaceAll(target, `\`, "/"))
}
