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

// Package slidejson converts PowerPoint (.pptx) packages into a JSON slide
// model: positioned text and image elements, backgrounds, layouts, theme and
// master information, in EMU geometry.
package slidejson

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"

	"github.com/nicholasgasior/slidejson-go/internal/ooxml"
	"github.com/nicholasgasior/slidejson-go/model"
	"github.com/nicholasgasior/slidejson-go/units"
)

// Package is a readable OOXML container: a zip archive or an extracted
// directory.
type Package = ooxml.Package

// SlideJSON is the converted form of one slide.
type SlideJSON = model.SlideJSON

// Converter turns packages into slide records. It holds no per-package state
// and is safe for concurrent use.
type Converter struct {
	logger        *slog.Logger
	workers       int
	groupScaling  bool
	groupClipping bool
	slideSize     model.SlideSize
	dpi           float64
	notes         bool
}

// New creates a Converter with the given options.
func New(opts ...Option) *Converter {
	c := &Converter{
		logger:    slog.Default(),
		workers:   1,
		slideSize: model.SlideSize{Width: units.DefaultSlideWidth, Height: units.DefaultSlideHeight},
		dpi:       units.DefaultDPI,
		notes:     true,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// OpenFile opens a .pptx file, or an already extracted package directory.
func OpenFile(path string) (Package, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, &PackageOpenError{Source: path, Err: err}
	}
	if info.IsDir() {
		pkg, err := ooxml.OpenDir(path)
		if err != nil {
			return nil, &PackageOpenError{Source: path, Err: err}
		}
		return pkg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &PackageOpenError{Source: path, Err: err}
	}
	return openBytes(data, path, strings.ToLower(filepath.Ext(path)))
}

// OpenBytes opens an in-memory .pptx archive.
func OpenBytes(data []byte) (Package, error) {
	return openBytes(data, "", "")
}

func openBytes(data []byte, source, ext string) (Package, error) {
	if !isZipContainer(data) {
		return nil, &PackageOpenError{
			Source: source,
			Err:    &UnsupportedFormatError{Extension: ext, MIMEType: detectMIMEType(data, ext)},
		}
	}
	pkg, err := ooxml.OpenZip(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, &PackageOpenError{Source: source, Err: err}
	}
	return pkg, nil
}

// ConvertFile converts every slide of a .pptx file or extracted directory.
func (c *Converter) ConvertFile(ctx context.Context, path string) (*Deck, error) {
	pkg, err := OpenFile(path)
	if err != nil {
		return nil, err
	}
	return c.ConvertDeck(ctx, pkg)
}

// ConvertReader reads a whole .pptx stream and converts every slide.
func (c *Converter) ConvertReader(ctx context.Context, r io.Reader) (*Deck, error) {
	pkg, err := OpenReader(r)
	if err != nil {
		return nil, err
	}
	return c.ConvertDeck(ctx, pkg)
}

// ConvertURL fetches a .pptx over HTTP and converts every slide.
func (c *Converter) ConvertURL(ctx context.Context, url string) (*Deck, error) {
	pkg, err := OpenURL(ctx, url)
	if err != nil {
		return nil, err
	}
	return c.ConvertDeck(ctx, pkg)
}

// OpenReader reads a whole .pptx stream into memory and opens it.
func OpenReader(r io.Reader) (Package, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	return OpenBytes(data)
}

// OpenURL fetches a .pptx over HTTP and opens it.
func OpenURL(ctx context.Context, url string) (Package, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch URL: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return nil, fmt.Errorf("fetch URL: %s", resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	// Extract extension from URL path
	urlPath := strings.Split(url, "?")[0]
	return openBytes(data, url, strings.ToLower(filepath.Ext(urlPath)))
}

// isZipContainer reports whether data sniffs as a zip or a zip-based format.
func isZipContainer(data []byte) bool {
	for m := mimetype.Detect(data); m != nil; m = m.Parent() {
		if m.Is("application/zip") {
			return true
		}
	}
	return false
}

// detectMIMEType detects the MIME type from content and extension.
func detectMIMEType(data []byte, ext string) string {
	if mtype := mimetype.Detect(data); mtype.String() != "application/octet-stream" {
		return mtype.String()
	}
	return mimeFromExtension(ext)
}
