package slidejson

import (
	"context"
	"encoding/json"
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/nicholasgasior/slidejson-go/model"
)

func slideNumbers(deck *Deck) []int {
	var out []int
	for _, s := range deck.Slides {
		out = append(out, s.SlideNumber)
	}
	return out
}

func TestSlideNumbers(t *testing.T) {
	parts := deckParts(map[int]string{10: simpleSlide("ten"), 1: simpleSlide("one"), 3: simpleSlide("three")})
	parts["ppt/slides/slide2.xml.bak"] = "x"
	parts["ppt/slides/slideX.xml"] = "x"
	parts["ppt/notesSlides/notesSlide4.xml"] = "x"
	parts["ppt/slides/slide01.xml"] = "x"
	parts["ppt/slides/slide0.xml"] = "x"

	if got := SlideNumbers(openParts(t, parts)); !reflect.DeepEqual(got, []int{1, 3, 10}) {
		t.Errorf("SlideNumbers = %v, want [1 3 10]", got)
	}
}

func TestConvertDeckOrder(t *testing.T) {
	pkg := openParts(t, deckParts(map[int]string{
		10: simpleSlide("ten"),
		1:  simpleSlide("one"),
		3:  simpleSlide("three"),
	}))

	for _, workers := range []int{1, 4} {
		deck, err := quiet(WithWorkers(workers)).ConvertDeck(context.Background(), pkg)
		if err != nil {
			t.Fatalf("workers=%d: %v", workers, err)
		}
		if got := slideNumbers(deck); !reflect.DeepEqual(got, []int{1, 3, 10}) {
			t.Errorf("workers=%d: slide numbers = %v", workers, got)
		}
		if got := deck.Slides[2].Elements[0].(*model.TextElement).Content; got != "ten" {
			t.Errorf("workers=%d: slide 10 content = %q", workers, got)
		}
		if len(deck.Failures) != 0 {
			t.Errorf("workers=%d: failures = %v", workers, deck.Failures)
		}
	}
}

func TestConvertDeckPartialFailure(t *testing.T) {
	pkg := openParts(t, deckParts(map[int]string{
		1: simpleSlide("one"),
		2: `<p:sld ` + ns + `><p:cSld><p:spTree>`,
		3: simpleSlide("three"),
	}))

	for _, workers := range []int{1, 3} {
		deck, err := quiet(WithWorkers(workers)).ConvertDeck(context.Background(), pkg)
		if err != nil {
			t.Fatalf("workers=%d: %v", workers, err)
		}
		if got := slideNumbers(deck); !reflect.DeepEqual(got, []int{1, 3}) {
			t.Errorf("workers=%d: slide numbers = %v", workers, got)
		}
		if len(deck.Failures) != 1 || deck.Failures[0].SlideNumber != 2 || !IsMalformedXML(deck.Failures[0].Err) {
			t.Errorf("workers=%d: failures = %v", workers, deck.Failures)
		}
	}
}

func TestConvertDeckZeroPaddedNames(t *testing.T) {
	t.Run("alongside canonical name", func(t *testing.T) {
		parts := deckParts(map[int]string{1: simpleSlide("one")})
		parts["ppt/slides/slide01.xml"] = simpleSlide("padded")
		deck, err := quiet().ConvertDeck(context.Background(), openParts(t, parts))
		if err != nil {
			t.Fatal(err)
		}
		if got := slideNumbers(deck); !reflect.DeepEqual(got, []int{1}) || len(deck.Failures) != 0 {
			t.Fatalf("slides = %v, failures = %v", got, deck.Failures)
		}
		if got := deck.Slides[0].Elements[0].(*model.TextElement).Content; got != "one" {
			t.Errorf("content = %q, want the slide1.xml text", got)
		}
	})

	t.Run("only padded name", func(t *testing.T) {
		parts := deckParts(nil)
		parts["ppt/slides/slide01.xml"] = simpleSlide("padded")
		_, err := quiet().ConvertDeck(context.Background(), openParts(t, parts))
		if !IsNoSlidesConverted(err) || IsMissingPart(err) {
			t.Errorf("error = %v", err)
		}
	})
}

// panickingPackage panics when asked for one part.
type panickingPackage struct {
	Package
	part string
}

func (p panickingPackage) ReadEntry(name string) ([]byte, error) {
	if name == p.part {
		panic("reader exploded on " + name)
	}
	return p.Package.ReadEntry(name)
}

func TestConvertDeckRecoversPanics(t *testing.T) {
	pkg := panickingPackage{
		Package: openParts(t, deckParts(map[int]string{1: simpleSlide("one"), 2: simpleSlide("two"), 3: simpleSlide("three")})),
		part:    SlidePart(2),
	}

	for _, workers := range []int{1, 2} {
		deck, err := quiet(WithWorkers(workers)).ConvertDeck(context.Background(), pkg)
		if err != nil {
			t.Fatalf("workers=%d: %v", workers, err)
		}
		if got := slideNumbers(deck); !reflect.DeepEqual(got, []int{1, 3}) {
			t.Errorf("workers=%d: slide numbers = %v", workers, got)
		}
		if len(deck.Failures) != 1 || deck.Failures[0].SlideNumber != 2 || !errors.Is(deck.Failures[0].Err, errTaskPanicked) {
			t.Errorf("workers=%d: failures = %v", workers, deck.Failures)
		}
	}
}

func TestConvertDeckMetadataPerSlide(t *testing.T) {
	pkg := openParts(t, deckParts(map[int]string{1: simpleSlide("one"), 2: simpleSlide("two")}))
	deck, err := quiet().ConvertDeck(context.Background(), pkg)
	if err != nil {
		t.Fatal(err)
	}
	first, second := deck.Slides[0].PresentationMetadata, deck.Slides[1].PresentationMetadata
	if first == nil || second == nil || first == second {
		t.Fatalf("metadata = %p, %p", first, second)
	}

	first.SlideSize.Width = 1
	first.EmbeddedFonts[0].Typeface = "Changed"
	if second.SlideSize.Width != 12192000 || second.EmbeddedFonts[0].Typeface != "Roboto" {
		t.Errorf("second slide metadata changed: %+v", second)
	}
}

func TestConvertDeckNoSlides(t *testing.T) {
	t.Run("empty package", func(t *testing.T) {
		_, err := quiet().ConvertDeck(context.Background(), openParts(t, deckParts(nil)))
		if !IsNoSlidesConverted(err) {
			t.Errorf("error = %v", err)
		}
	})

	t.Run("every slide broken", func(t *testing.T) {
		pkg := openParts(t, deckParts(map[int]string{1: "<", 2: "<p:sld>"}))
		_, err := quiet().ConvertDeck(context.Background(), pkg)
		if !IsNoSlidesConverted(err) || !IsMalformedXML(err) {
			t.Fatalf("error = %v", err)
		}
		var nsc *NoSlidesConvertedError
		if !errors.As(err, &nsc) || len(nsc.Failures) != 2 {
			t.Errorf("failures = %+v", nsc)
		}
		if !strings.Contains(err.Error(), "slide 2:") {
			t.Errorf("message = %q", err.Error())
		}
	})
}

func TestConvertDeckCancelled(t *testing.T) {
	pkg := openParts(t, deckParts(map[int]string{1: simpleSlide("one"), 2: simpleSlide("two")}))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	for _, workers := range []int{1, 2} {
		if _, err := quiet(WithWorkers(workers)).ConvertDeck(ctx, pkg); !errors.Is(err, context.Canceled) {
			t.Errorf("workers=%d: error = %v, want context.Canceled", workers, err)
		}
	}
}

func TestDeckJSON(t *testing.T) {
	pkg := openParts(t, deckParts(map[int]string{1: simpleSlide("one"), 2: "<"}))
	deck, err := quiet().ConvertDeck(context.Background(), pkg)
	if err != nil {
		t.Fatal(err)
	}

	data, err := json.Marshal(deck)
	if err != nil {
		t.Fatal(err)
	}
	var got struct {
		Slides []struct {
			SlideNumber int            `json:"slideNumber"`
			Elements    model.Elements `json:"elements"`
		} `json:"slides"`
		Failures []struct {
			SlideNumber int    `json:"slideNumber"`
			Error       string `json:"error"`
		} `json:"failures"`
	}
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatal(err)
	}
	if len(got.Slides) != 1 || len(got.Slides[0].Elements) != 1 {
		t.Errorf("slides = %+v", got.Slides)
	}
	if len(got.Failures) != 1 || got.Failures[0].SlideNumber != 2 ||
		!strings.Contains(got.Failures[0].Error, "ppt/slides/slide2.xml") {
		t.Errorf("failures = %+v", got.Failures)
	}
}
