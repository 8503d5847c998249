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

package model

import (
	"encoding/json"
	"fmt"
)

// ElementType discriminates the Element union on the wire.
type ElementType string

const (
	ElementText  ElementType = "text"
	ElementImage ElementType = "image"
)

// Element is a TextElement or an ImageElement.
type Element interface {
	// Common returns the fields every element carries.
	Common() *ElementCommon
	isElement()
}

// Placeholder identifies the layout slot a shape fills.
type Placeholder struct {
	Type  string `json:"type,omitempty"`
	Index *int   `json:"index,omitempty"`
}

// ElementCommon holds the fields shared by all elements.
type ElementCommon struct {
	// ID is the shape's cNvPr id. Unique within one slide only.
	ID       int64       `json:"id"`
	Type     ElementType `json:"type"`
	Name     string      `json:"name"`
	Position Position    `json:"position"`
	Size     Size        `json:"size"`
	// Placeholder is set for shapes that fill a layout placeholder.
	Placeholder *Placeholder `json:"placeholder,omitempty"`
}

// Media names the files behind an image element. At least one is set; SVG is
// preferred for rendering when both are.
type Media struct {
	Image string `json:"image,omitempty"`
	SVG   string `json:"svg,omitempty"`
}

// ImageElement is a picture, or a shape filled with a picture.
type ImageElement struct {
	ElementCommon
	Transform Transform `json:"transform"`
	Media     Media     `json:"media"`
	// AltText is the shape description, when the author set one.
	AltText string `json:"altText,omitempty"`
}

// TextElement is a shape with non-empty text.
type TextElement struct {
	ElementCommon
	Content    string         `json:"content"`
	Formatting TextFormatting `json:"formatting"`
}

func (e *ImageElement) Common() *ElementCommon { return &e.ElementCommon }
func (e *TextElement) Common() *ElementCommon  { return &e.ElementCommon }

func (*ImageElement) isElement() {}
func (*TextElement) isElement()  {}

// Elements is an ordered element list that decodes back into the union.
type Elements []Element

// MarshalJSON writes an empty list as [] rather than null.
func (es Elements) MarshalJSON() ([]byte, error) {
	if es == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]Element(es))
}

func (es *Elements) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	out := make(Elements, 0, len(raw))
	for i, r := range raw {
		var head struct {
			Type ElementType `json:"type"`
		}
		if err := json.Unmarshal(r, &head); err != nil {
			return fmt.Errorf("element %d: %w", i, err)
		}
		var e Element
		switch head.Type {
		case ElementText:
			e = &TextElement{}
		case ElementImage:
			e = &ImageElement{}
		default:
			return fmt.Errorf("element %d: unknown type %q", i, head.Type)
		}
		if err := json.Unmarshal(r, e); err != nil {
			return fmt.Errorf("element %d: %w", i, err)
		}
		out = append(out, e)
	}
	*es = out
	return nil
}
