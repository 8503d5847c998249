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

package slidejson

import (
	"fmt"
	"sort"
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"golang.org/x/net/html"

	"github.com/nicholasgasior/slidejson-go/model"
)

// Outline renders a deck as Markdown: one section per slide with titles as
// headings, text and images in reading order, and speaker notes.
func Outline(deck *Deck) (string, error) {
	conv := newMarkdownConverter()

	var md strings.Builder
	for _, slide := range deck.Slides {
		fmt.Fprintf(&md, "\n\n<!-- Slide number: %d -->\n", slide.SlideNumber)

		body, err := conv.ConvertString(slideHTML(slide))
		if err != nil {
			return "", fmt.Errorf("slide %d: convert HTML to markdown: %w", slide.SlideNumber, err)
		}
		md.WriteString(body)

		if notes := strings.TrimSpace(slide.Notes); notes != "" {
			md.WriteString("\n\n### Notes:\n")
			md.WriteString(notes)
		}
	}
	return normalizeOutput(md.String()), nil
}

func newMarkdownConverter() *converter.Converter {
	return converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(
				commonmark.WithHeadingStyle("atx"),
			),
		),
	)
}

// slideHTML lays out a slide's elements top to bottom, then left to right.
func slideHTML(slide *model.SlideJSON) string {
	elements := make([]model.Element, len(slide.Elements))
	copy(elements, slide.Elements)
	sort.SliceStable(elements, func(i, j int) bool {
		a, b := elements[i].Common().Position, elements[j].Common().Position
		if a.Y != b.Y {
			return a.Y < b.Y
		}
		return a.X < b.X
	})

	var b strings.Builder
	b.WriteString("<html><body>")
	for _, el := range elements {
		switch el := el.(type) {
		case *model.TextElement:
			lines := strings.Split(el.Content, "\n")
			for i := range lines {
				lines[i] = html.EscapeString(lines[i])
			}
			text := strings.Join(lines, "<br>")
			if isTitle(el.Placeholder) {
				b.WriteString("<h1>" + text + "</h1>")
			} else {
				b.WriteString("<p>" + text + "</p>")
			}
		case *model.ImageElement:
			if el.AltText == "" {
				continue
			}
			src := el.Media.Image
			if el.Media.SVG != "" {
				src = el.Media.SVG
			}
			fmt.Fprintf(&b, `<p><img src="%s" alt="%s"></p>`,
				html.EscapeString(src), html.EscapeString(sanitizeAltText(el.AltText)))
		}
	}
	b.WriteString("</body></html>")
	return b.String()
}

func isTitle(ph *model.Placeholder) bool {
	return ph != nil && (ph.Type == "title" || ph.Type == "ctrTitle")
}

// sanitizeAltText cleans alt text for markdown image syntax.
func sanitizeAltText(s string) string {
	s = strings.NewReplacer("\n", " ", "\r", " ", "[", " ", "]", " ").Replace(s)
	return strings.Join(strings.Fields(s), " ")
}
