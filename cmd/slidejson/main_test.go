package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const testSlide = `<p:sld xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main" ` +
	`xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships" ` +
	`xmlns:p="http://schemas.openxmlformats.org/presentationml/2006/main"><p:cSld><p:spTree>` +
	`<p:pic><p:nvPicPr><p:cNvPr id="3" name="Picture" descr="Chart"/><p:cNvPicPr/><p:nvPr/></p:nvPicPr>` +
	`<p:blipFill><a:blip r:embed="rId2"/></p:blipFill><p:spPr/></p:pic>` +
	`<p:sp><p:nvSpPr><p:cNvPr id="2" name="Title"/><p:cNvSpPr/><p:nvPr><p:ph type="title"/></p:nvPr></p:nvSpPr><p:spPr/>` +
	`<p:txBody><a:p><a:r><a:t>Quarterly review</a:t></a:r></a:p></p:txBody></p:sp>` +
	`</p:spTree></p:cSld></p:sld>`

const testRels = `<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">` +
	`<Relationship Id="rId2" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/image" Target="../media/image1.png"/>` +
	`</Relationships>`

func writePackageDir(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	parts := map[string]string{
		"ppt/slides/slide1.xml":            testSlide,
		"ppt/slides/_rels/slide1.xml.rels": testRels,
		"ppt/media/image1.png":             "\x89PNG\r\n\x1a\n",
	}
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

func execute(t *testing.T, args ...string) error {
	t.Helper()
	cmd := newRootCmd()
	cmd.SetArgs(args)
	return cmd.Execute()
}

func TestRunJSON(t *testing.T) {
	src := writePackageDir(t)
	out := filepath.Join(t.TempDir(), "out", "deck.json")
	media := filepath.Join(t.TempDir(), "media")

	if err := execute(t, src, "-o", out, "--media-dir", media, "--log-level", "error"); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	var deck struct {
		Slides []struct {
			SlideNumber int               `json:"slideNumber"`
			Elements    []json.RawMessage `json:"elements"`
		} `json:"slides"`
	}
	if err := json.Unmarshal(data, &deck); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, data)
	}
	if len(deck.Slides) != 1 || deck.Slides[0].SlideNumber != 1 || len(deck.Slides[0].Elements) != 2 {
		t.Errorf("deck = %s", data)
	}

	if _, err := os.Stat(filepath.Join(media, "image1.png")); err != nil {
		t.Errorf("media not written: %v", err)
	}
}

func TestRunMarkdownSingleSlide(t *testing.T) {
	src := writePackageDir(t)
	out := filepath.Join(t.TempDir(), "slide.md")

	if err := execute(t, src, "--slide", "1", "--format", "markdown", "-o", out, "--log-level", "error"); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"<!-- Slide number: 1 -->", "# Quarterly review", "![Chart](image1.png)"} {
		if !strings.Contains(string(data), want) {
			t.Errorf("output missing %q:\n%s", want, data)
		}
	}
}

func TestRunErrors(t *testing.T) {
	src := writePackageDir(t)
	tests := map[string][]string{
		"bad format":    {src, "--format", "xml"},
		"bad log level": {src, "--log-level", "loud"},
		"missing slide": {src, "--slide", "9", "--log-level", "error"},
		"missing file":  {filepath.Join(src, "nope.pptx")},
		"too many args": {src, src},
	}
	for name, args := range tests {
		t.Run(name, func(t *testing.T) {
			if err := execute(t, args...); err == nil {
				t.Error("expected error")
			}
		})
	}
}
