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

package ooxml

import (
	"archive/zip"
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

const slideRels = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
  <Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/slideLayout" Target="../slideLayouts/slideLayout2.xml"/>
  <Relationship Id="rId2" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/image" Target="../media/image1.png"/>
  <Relationship Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/image" Target="../media/orphan.png"/>
  <Relationship Id="rId4" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/image"/>
  <Relationship Id="rId5" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/hyperlink" Target="https://example.com" TargetMode="External"/>
</Relationships>`

var testParts = map[string]string{
	"[Content_Types].xml":                          `<Types/>`,
	"ppt/presentation.xml":                         `<presentation/>`,
	"ppt/slides/slide1.xml":                        `<sld/>`,
	"ppt/slides/_rels/slide1.xml.rels":             slideRels,
	"ppt/slideLayouts/slideLayout2.xml":            `<sldLayout/>`,
	"ppt/media/image1.png":                         "\x89PNG\r\n\x1a\n",
	"ppt/slideMasters/slideMaster1.xml":            `<sldMaster/>`,
	"ppt/slideMasters/_rels/slideMaster1.xml.rels": `<Relationships/>`,
}

// writeZipFile builds an in-memory package from parts.
func writeZipFile(t *testing.T, parts map[string]string) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	for name, content := range parts {
		f, err := w.Create(name)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := f.Write([]byte(content)); err != nil {
			t.Fatal(err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func writeDir(t *testing.T, parts map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for name, content := range parts {
		p := filepath.Join(root, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return root
}

func TestParseRelationships(t *testing.T) {
	rels, err := ParseRelationships([]byte(slideRels))
	if err != nil {
		t.Fatal(err)
	}
	if rels.Len() != 3 {
		t.Fatalf("Len = %d, want 3 (entries without Id or Target skipped)", rels.Len())
	}

	rel, ok := rels.Get("rId2")
	if !ok || rel.Target != "../media/image1.png" {
		t.Errorf("Get(rId2) = %+v, %v", rel, ok)
	}
	if _, ok := rels.Get("rId4"); ok {
		t.Error("relationship without Target kept")
	}

	layout, ok := rels.FirstOfType(RelTypeSlideLayout)
	if !ok || layout.ID != "rId1" {
		t.Errorf("FirstOfType(slideLayout) = %+v, %v", layout, ok)
	}
	if ext, _ := rels.Get("rId5"); ext.TargetMode != TargetModeExternal {
		t.Errorf("TargetMode = %q", ext.TargetMode)
	}

	ids := []string{}
	for _, r := range rels.All() {
		ids = append(ids, r.ID)
	}
	if !reflect.DeepEqual(ids, []string{"rId1", "rId2", "rId5"}) {
		t.Errorf("All order = %v", ids)
	}
}

func TestParseRelationshipsMalformed(t *testing.T) {
	if _, err := ParseRelationships([]byte(`<Relationships><Relationship`)); err == nil {
		t.Error("expected error for malformed rels")
	}
}

func TestRelationshipMapDuplicateID(t *testing.T) {
	m := NewRelationshipMap()
	m.Add(Relationship{ID: "rId1", Target: "a.xml"})
	m.Add(Relationship{ID: "rId2", Target: "b.xml"})
	m.Add(Relationship{ID: "rId1", Target: "c.xml"})
	if m.Len() != 2 {
		t.Errorf("Len = %d, want 2", m.Len())
	}
	if rel, _ := m.Get("rId1"); rel.Target != "c.xml" {
		t.Errorf("Get(rId1).Target = %q, want c.xml", rel.Target)
	}
	if all := m.All(); all[0].ID != "rId1" {
		t.Errorf("duplicate moved position: %+v", all)
	}
}

func TestReadRelationshipsMissing(t *testing.T) {
	data := writeZipFile(t, testParts)
	pkg, err := OpenZip(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatal(err)
	}
	rels, err := ReadRelationships(pkg, "ppt/slideLayouts/slideLayout2.xml")
	if err != nil {
		t.Fatalf("missing sidecar returned error: %v", err)
	}
	if rels.Len() != 0 {
		t.Errorf("Len = %d, want 0", rels.Len())
	}

	rels, err = ReadRelationships(pkg, "ppt/slides/slide1.xml")
	if err != nil || rels.Len() != 3 {
		t.Errorf("ReadRelationships(slide1) = %d rels, %v", rels.Len(), err)
	}
}

func TestPathHelpers(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{"rels for slide", RelsPathFor("ppt/slides/slide1.xml"), "ppt/slides/_rels/slide1.xml.rels"},
		{"rels for root part", RelsPathFor("presentation.xml"), "_rels/presentation.xml.rels"},
		{"relative target", ResolveTarget("ppt/slides/slide1.xml", "../slideLayouts/slideLayout2.xml"), "ppt/slideLayouts/slideLayout2.xml"},
		{"absolute target", ResolveTarget("ppt/slides/slide1.xml", "/ppt/media/image1.png"), "ppt/media/image1.png"},
		{"sibling target", ResolveTarget("ppt/slideMasters/slideMaster1.xml", "../theme/theme1.xml"), "ppt/theme/theme1.xml"},
		{"media path", MediaPath("../media/image1.png"), "ppt/media/image1.png"},
		{"media path nested", MediaPath("../../media/image1.png"), "ppt/media/image1.png"},
		{"base name", BaseName("../media/image1.png"), "image1.png"},
		{"base name empty", BaseName(""), ""},
		{"normalize", NormalizePartName(`\ppt\slides\slide1.xml`), "ppt/slides/slide1.xml"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %q, want %q", tt.got, tt.want)
			}
		})
	}
}

func TestZipAndDirPackagesAgree(t *testing.T) {
	data := writeZipFile(t, testParts)
	zp, err := OpenZip(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatal(err)
	}
	dp, err := OpenDir(writeDir(t, testParts))
	if err != nil {
		t.Fatal(err)
	}

	if !reflect.DeepEqual(zp.ListEntries(), dp.ListEntries()) {
		t.Fatalf("entries differ:\nzip: %v\ndir: %v", zp.ListEntries(), dp.ListEntries())
	}
	if len(zp.ListEntries()) != len(testParts) {
		t.Errorf("len = %d, want %d", len(zp.ListEntries()), len(testParts))
	}

	for _, name := range zp.ListEntries() {
		a, err := zp.ReadEntry(name)
		if err != nil {
			t.Fatalf("zip ReadEntry(%s): %v", name, err)
		}
		b, err := dp.ReadEntry("/" + name)
		if err != nil {
			t.Fatalf("dir ReadEntry(%s): %v", name, err)
		}
		if !bytes.Equal(a, b) {
			t.Errorf("%s: contents differ", name)
		}
	}

	for _, pkg := range []Package{zp, dp} {
		for _, name := range []string{"ppt/slides/slide9.xml", "../outside.txt"} {
			if _, err := pkg.ReadEntry(name); !errors.Is(err, ErrPartNotFound) {
				t.Errorf("%T.ReadEntry(%q) error = %v, want ErrPartNotFound", pkg, name, err)
			}
		}
	}
}

func TestOpenZipInvalid(t *testing.T) {
	if _, err := OpenZip(bytes.NewReader([]byte("not a zip")), 9); err == nil {
		t.Error("expected error")
	}
	if _, err := OpenDir(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Error("expected error for missing directory")
	}
}
