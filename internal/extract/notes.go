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

package extract

import (
	"strings"

	"github.com/nicholasgasior/slidejson-go/internal/xmltree"
)

// Notes returns the speaker notes of a notes slide: one line per paragraph
// of every text shape except the slide image, header, footer, date and
// number placeholders.
func Notes(notesDoc *xmltree.Node) string {
	var parts []string
	var walk func(tree *xmltree.Node)
	walk = func(tree *xmltree.Node) {
		for _, sp := range tree.Children("sp") {
			switch sp.Path("nvSpPr", "nvPr", "ph").String("type", "") {
			case "sldImg", "sldNum", "hdr", "ftr", "dt":
				continue
			}
			if text := strings.TrimSpace(paragraphText(sp.Child("txBody"))); text != "" {
				parts = append(parts, text)
			}
		}
		for _, grp := range tree.Children("grpSp") {
			walk(grp)
		}
	}
	walk(notesDoc.Path("notes", "cSld", "spTree"))
	return strings.Join(parts, "\n")
}

// paragraphText keeps the text of runs and fields as written, one line per
// paragraph.
func paragraphText(txBody *xmltree.Node) string {
	var lines []string
	for _, p := range txBody.Children("p") {
		var b strings.Builder
		for _, el := range p.Elements() {
			switch el.Name() {
			case "r", "fld":
				b.WriteString(el.Child("t").RawText())
			case "br":
				b.WriteString("\n")
			}
		}
		if line := b.String(); strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	return strings.Join(lines, "\n")
}
