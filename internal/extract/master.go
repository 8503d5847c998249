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
	"encoding/json"

	"github.com/nicholasgasior/slidejson-go/internal/xmltree"
	"github.com/nicholasgasior/slidejson-go/model"
)

var colorMapKeys = []string{
	"bg1", "tx1", "bg2", "tx2",
	"accent1", "accent2", "accent3", "accent4", "accent5", "accent6",
	"hlink", "folHlink",
}

// MasterSlide extracts the colour map and text styles of a slide master.
func MasterSlide(masterDoc *xmltree.Node) *model.MasterSlide {
	root := masterDoc.Child("sldMaster")
	if root == nil {
		return nil
	}

	m := &model.MasterSlide{}
	if clrMap := root.Child("clrMap"); clrMap != nil {
		m.ColorMap = make(map[string]string)
		for _, k := range colorMapKeys {
			if v, ok := clrMap.Attr(k); ok && v != "" {
				m.ColorMap[k] = v
			}
		}
	}

	if tx := root.Child("txStyles"); tx != nil {
		m.TextStyles = &model.TextStyles{
			Title: rawJSON(tx.Child("titleStyle")),
			Body:  rawJSON(tx.Child("bodyStyle")),
			Other: rawJSON(tx.Child("otherStyle")),
		}
	}

	if m.ColorMap == nil && m.TextStyles == nil {
		return nil
	}
	return m
}

func rawJSON(n *xmltree.Node) json.RawMessage {
	if n == nil {
		return nil
	}
	b, err := json.Marshal(n)
	if err != nil {
		return nil
	}
	return b
}
