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
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"
)

// ErrPartNotFound is wrapped by ReadEntry when a package has no such part.
var ErrPartNotFound = errors.New("part not found")

// Package is read access to the parts of an OOXML package. Part names are
// package relative, use forward slashes and have no leading slash.
type Package interface {
	// ListEntries returns every part name, sorted.
	ListEntries() []string
	// ReadEntry returns the bytes of one part.
	ReadEntry(name string) ([]byte, error)
}

// NormalizePartName converts a name to package form: forward slashes, no
// leading slash, cleaned.
func NormalizePartName(name string) string {
	name = strings.ReplaceAll(name, `\`, "/")
	name = strings.TrimLeft(name, "/")
	if name == "" {
		return ""
	}
	return path.Clean(name)
}

// ZipPackage is a package held in a ZIP container.
type ZipPackage struct {
	files map[string]*zip.File
	names []string
}

// OpenZip indexes the ZIP container in r.
func OpenZip(r io.ReaderAt, size int64) (*ZipPackage, error) {
	zr, err := zip.NewReader(r, size)
	if err != nil {
		return nil, fmt.Errorf("open zip: %w", err)
	}
	p := &ZipPackage{files: make(map[string]*zip.File, len(zr.File))}
	for _, f := range zr.File {
		if f.FileInfo().IsDir() {
			continue
		}
		name := NormalizePartName(f.Name)
		if name == "" {
			continue
		}
		if _, dup := p.files[name]; !dup {
			p.names = append(p.names, name)
		}
		p.files[name] = f
	}
	sort.Strings(p.names)
	return p, nil
}

func (p *ZipPackage) ListEntries() []string {
	out := make([]string, len(p.names))
	copy(out, p.names)
	return out
}

func (p *ZipPackage) ReadEntry(name string) ([]byte, error) {
	name = NormalizePartName(name)
	f, ok := p.files[name]
	if !ok {
		return nil, fmt.Errorf("part %q: %w", name, ErrPartNotFound)
	}
	rc, err := f.Open()
	if err != nil {
		return nil, fmt.Errorf("open part %q: %w", name, err)
	}
	defer rc.Close()
	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("read part %q: %w", name, err)
	}
	return data, nil
}

// DirPackage is a package already extracted to a directory.
type DirPackage struct {
	fsys  fs.FS
	names []string
}

// OpenDir indexes the extracted package rooted at root.
func OpenDir(root string) (*DirPackage, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("open package directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("open package directory: %s is not a directory", root)
	}
	return newDirPackage(os.DirFS(root))
}

func newDirPackage(fsys fs.FS) (*DirPackage, error) {
	p := &DirPackage{fsys: fsys}
	err := fs.WalkDir(fsys, ".", func(name string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		p.names = append(p.names, name)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk package directory: %w", err)
	}
	sort.Strings(p.names)
	return p, nil
}

func (p *DirPackage) ListEntries() []string {
	out := make([]string, len(p.names))
	copy(out, p.names)
	return out
}

func (p *DirPackage) ReadEntry(name string) ([]byte, error) {
	name = NormalizePartName(name)
	if !fs.ValidPath(name) || name == "." {
		return nil, fmt.Errorf("part %q: %w", name, ErrPartNotFound)
	}
	data, err := fs.ReadFile(p.fsys, name)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("part %q: %w", name, ErrPartNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("read part %q: %w", name, err)
	}
	return data, nil
}
