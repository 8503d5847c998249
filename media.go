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
	"path"
	"sort"
	"strings"

	"github.com/gabriel-vasile/mimetype"

	"github.com/nicholasgasior/slidejson-go/internal/ooxml"
	"github.com/nicholasgasior/slidejson-go/model"
)

// mediaDir is where slide-relative "../media/x" targets live.
const mediaDir = "ppt/media"

// Media is a media file read from a package.
type Media struct {
	Name     string
	MIMEType string
	Data     []byte
}

// ReadMedia reads a file named by an element's media or a background image.
// Only the base name of filename is used, so it cannot escape the media
// directory.
func ReadMedia(pkg Package, filename string) (*Media, error) {
	name := path.Base(strings.ReplaceAll(filename, `\`, "/"))
	if name == "." || name == ".." || name == "/" {
		return nil, fmt.Errorf("media %q: %w", filename, ooxml.ErrPartNotFound)
	}

	data, err := pkg.ReadEntry(ooxml.MediaPath("../media/" + name))
	if err != nil {
		return nil, fmt.Errorf("media %q: %w", name, err)
	}
	return &Media{
		Name:     name,
		MIMEType: mediaType(data, strings.ToLower(path.Ext(name))),
		Data:     data,
	}, nil
}

// MediaNames returns the distinct media files the deck's slides reference,
// sorted by name.
func (d *Deck) MediaNames() []string {
	seen := make(map[string]bool)
	add := func(name string) {
		if name != "" && name != model.BackgroundImagePending {
			seen[name] = true
		}
	}
	for _, s := range d.Slides {
		if s.Background.Type == model.BackgroundImage {
			add(s.Background.Image)
		}
		for _, el := range s.Elements {
			if img, ok := el.(*model.ImageElement); ok {
				add(img.Media.Image)
				add(img.Media.SVG)
			}
		}
	}

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// mediaType sniffs the content, except for vector formats that sniff as
// generic XML or binary.
func mediaType(data []byte, ext string) string {
	switch ext {
	case ".svg", ".emf", ".wmf":
		return mimeFromExtension(ext)
	}
	if m := mimetype.Detect(data); m.String() != "application/octet-stream" {
		return m.String()
	}
	return mimeFromExtension(ext)
}

// mimeFromExtension returns a MIME type for package and media extensions.
func mimeFromExtension(ext string) string {
	extMap := map[string]string{
		".pptx": "application/vnd.openxmlformats-officedocument.presentationml.presentation",
		".potx": "application/vnd.openxmlformats-officedocument.presentationml.template",
		".ppsx": "application/vnd.openxmlformats-officedocument.presentationml.slideshow",
		".zip":  "application/zip",
		".png":  "image/png",
		".jpg":  "image/jpeg",
		".jpeg": "image/jpeg",
		".gif":  "image/gif",
		".bmp":  "image/bmp",
		".tif":  "image/tiff",
		".tiff": "image/tiff",
		".svg":  "image/svg+xml",
		".emf":  "image/emf",
		".wmf":  "image/wmf",
		".mp4":  "video/mp4",
		".m4a":  "audio/mp4",
		".mp3":  "audio/mpeg",
		".wav":  "audio/wav",
	}
	if m, ok := extMap[ext]; ok {
		return m
	}
	return "application/octet-stream"
}
