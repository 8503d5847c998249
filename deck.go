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
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"regexp"
	"slices"
	"strconv"

	"github.com/alitto/pond"
	"github.com/google/uuid"

	"github.com/nicholasgasior/slidejson-go/model"
)

var reSlidePart = regexp.MustCompile(`^ppt/slides/slide([1-9]\d*)\.xml$`)

// errTaskPanicked is recorded for a slide whose conversion panicked.
var errTaskPanicked = errors.New("slide conversion panicked")

// Deck is the result of converting a whole package.
type Deck struct {
	// Slides holds the converted slides in ascending slide number.
	Slides []*model.SlideJSON `json:"slides"`
	// Failures holds the slides that could not be converted.
	Failures []SlideFailure `json:"failures,omitempty"`
}

// MarshalJSON renders a failure as its slide number and error message.
func (f SlideFailure) MarshalJSON() ([]byte, error) {
	msg := ""
	if f.Err != nil {
		msg = f.Err.Error()
	}
	return json.Marshal(struct {
		SlideNumber int    `json:"slideNumber"`
		Error       string `json:"error"`
	}{f.SlideNumber, msg})
}

// SlideNumbers returns the N of every ppt/slides/slideN.xml part, ascending.
// Names with a zero-padded N are not slide parts, and each N appears once.
func SlideNumbers(pkg Package) []int {
	var nums []int
	for _, name := range pkg.ListEntries() {
		m := reSlidePart.FindStringSubmatch(name)
		if m == nil {
			continue
		}
		n, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		nums = append(nums, n)
	}
	slices.Sort(nums)
	return slices.Compact(nums)
}

// ConvertDeck converts every slide of pkg. A slide that fails is recorded in
// Deck.Failures and does not stop the others; only a deck with no converted
// slide at all is an error. Cancelling ctx stops conversion between slides.
func (c *Converter) ConvertDeck(ctx context.Context, pkg Package) (*Deck, error) {
	log := c.logger.With("run", uuid.NewString())

	nums := SlideNumbers(pkg)
	if len(nums) == 0 {
		log.Warn("package has no slides")
		return nil, &NoSlidesConvertedError{}
	}
	meta := c.presentationMetadata(pkg, log)

	results := make([]*model.SlideJSON, len(nums))
	errs := make([]error, len(nums))
	if c.workers > 1 && len(nums) > 1 {
		c.convertParallel(ctx, pkg, nums, meta, log, results, errs)
	} else {
		for i, n := range nums {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			results[i], errs[i] = c.convertRecovered(ctx, pkg, n, meta, log.With("slide", n))
		}
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	deck := &Deck{Slides: make([]*model.SlideJSON, 0, len(nums))}
	for i, n := range nums {
		if errs[i] != nil {
			log.Warn("slide conversion failed", "slide", n, "error", errs[i])
			deck.Failures = append(deck.Failures, SlideFailure{SlideNumber: n, Err: errs[i]})
			continue
		}
		deck.Slides = append(deck.Slides, results[i])
	}

	if len(deck.Slides) == 0 {
		return nil, &NoSlidesConvertedError{Failures: deck.Failures}
	}
	log.Debug("deck converted", "slides", len(deck.Slides), "failed", len(deck.Failures))
	return deck, nil
}

// convertRecovered converts one slide, turning a panic into errTaskPanicked
// the way the worker pool does.
func (c *Converter) convertRecovered(ctx context.Context, pkg Package, n int, meta *model.PresentationMetadata,
	log *slog.Logger) (slide *model.SlideJSON, err error) {
	defer func() {
		if p := recover(); p != nil {
			log.Error("slide task panicked", "panic", p)
			slide, err = nil, errTaskPanicked
		}
	}()
	return c.convertSlide(ctx, pkg, n, meta, log)
}

// convertParallel fills results and errs by slide index on a worker pool.
// Each task writes only its own index.
func (c *Converter) convertParallel(ctx context.Context, pkg Package, nums []int, meta *model.PresentationMetadata,
	log *slog.Logger, results []*model.SlideJSON, errs []error) {
	panicHandler := func(p interface{}) {
		log.Error("slide task panicked", "panic", p)
	}
	pool := pond.New(c.workers, len(nums), pond.MinWorkers(c.workers), pond.PanicHandler(panicHandler))

	done := make([]bool, len(nums))
	for i, n := range nums {
		pool.Submit(func() {
			if err := ctx.Err(); err != nil {
				errs[i], done[i] = err, true
				return
			}
			results[i], errs[i] = c.convertSlide(ctx, pkg, n, meta, log.With("slide", n))
			done[i] = true
		})
	}
	pool.StopAndWait()

	for i := range nums {
		if !done[i] {
			errs[i] = errTaskPanicked
		}
	}
}
