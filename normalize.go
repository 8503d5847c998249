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
	"regexp"
	"strings"
	"unicode"
)

var (
	reLineEnding    = regexp.MustCompile(`\r\n?`)
	reBlankLineRuns = regexp.MustCompile(`\n{3,}`)
)

// normalizeOutput cleans rendered Markdown: LF line endings, no control
// characters or trailing spaces, at most one blank line in a row, valid UTF-8.
func normalizeOutput(s string) string {
	s = strings.ToValidUTF8(s, "")
	s = reLineEnding.ReplaceAllString(s, "\n")
	s = strings.Map(func(r rune) rune {
		if r != '\n' && r != '\t' && unicode.IsControl(r) {
			return -1
		}
		return r
	}, s)

	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}
	s = reBlankLineRuns.ReplaceAllString(strings.Join(lines, "\n"), "\n\n")
	return strings.TrimSpace(s)
}
