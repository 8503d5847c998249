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
	"errors"
	"fmt"
	"strings"

	"github.com/nicholasgasior/slidejson-go/internal/ooxml"
)

// ErrPartNotFound is wrapped by every error about a part absent from the package.
var ErrPartNotFound = ooxml.ErrPartNotFound

// UnsupportedFormatError is returned when the input is not an OOXML package.
type UnsupportedFormatError struct {
	Extension string
	MIMEType  string
}

func (e *UnsupportedFormatError) Error() string {
	parts := []string{"unsupported format"}
	if e.Extension != "" {
		parts = append(parts, fmt.Sprintf("extension=%q", e.Extension))
	}
	if e.MIMEType != "" {
		parts = append(parts, fmt.Sprintf("mime=%q", e.MIMEType))
	}
	return strings.Join(parts, " ")
}

// PackageOpenError is returned when the container cannot be read as a package.
// It is fatal for the whole operation.
type PackageOpenError struct {
	Source string
	Err    error
}

func (e *PackageOpenError) Error() string {
	if e.Source == "" {
		return fmt.Sprintf("open package: %v", e.Err)
	}
	return fmt.Sprintf("open package %s: %v", e.Source, e.Err)
}

func (e *PackageOpenError) Unwrap() error { return e.Err }

// MalformedXMLError is returned when a required part does not parse.
type MalformedXMLError struct {
	Part string
	Err  error
}

func (e *MalformedXMLError) Error() string {
	return fmt.Sprintf("malformed XML in %s: %v", e.Part, e.Err)
}

func (e *MalformedXMLError) Unwrap() error { return e.Err }

// MissingPartError is returned when a requested slide has no part.
type MissingPartError struct {
	Part        string
	SlideNumber int
}

func (e *MissingPartError) Error() string {
	return fmt.Sprintf("slide %d: missing part %s", e.SlideNumber, e.Part)
}

func (e *MissingPartError) Unwrap() error { return ErrPartNotFound }

// SlideFailure records a slide that could not be converted.
type SlideFailure struct {
	SlideNumber int
	Err         error
}

func (f SlideFailure) Error() string {
	return fmt.Sprintf("slide %d: %v", f.SlideNumber, f.Err)
}

// NoSlidesConvertedError is returned when a deck produced no slides.
type NoSlidesConvertedError struct {
	Failures []SlideFailure
}

func (e *NoSlidesConvertedError) Error() string {
	if len(e.Failures) == 0 {
		return "no slides converted"
	}
	var b strings.Builder
	b.WriteString("no slides converted after ")
	fmt.Fprintf(&b, "%d failure(s):", len(e.Failures))
	for _, f := range e.Failures {
		fmt.Fprintf(&b, "\n  slide %d: %v", f.SlideNumber, f.Err)
	}
	return b.String()
}

func (e *NoSlidesConvertedError) Unwrap() error {
	if len(e.Failures) > 0 {
		return e.Failures[len(e.Failures)-1].Err
	}
	return nil
}

// IsUnsupportedFormat reports whether the error is an UnsupportedFormatError.
func IsUnsupportedFormat(err error) bool {
	var target *UnsupportedFormatError
	return errors.As(err, &target)
}

// IsPackageOpen reports whether the error is a PackageOpenError.
func IsPackageOpen(err error) bool {
	var target *PackageOpenError
	return errors.As(err, &target)
}

// IsMalformedXML reports whether the error is a MalformedXMLError.
func IsMalformedXML(err error) bool {
	var target *MalformedXMLError
	return errors.As(err, &target)
}

// IsMissingPart reports whether the error is a MissingPartError.
func IsMissingPart(err error) bool {
	var target *MissingPartError
	return errors.As(err, &target)
}

// IsNoSlidesConverted reports whether the error is a NoSlidesConvertedError.
func IsNoSlidesConverted(err error) bool {
	var target *NoSlidesConvertedError
	return errors.As(err, &target)
}
