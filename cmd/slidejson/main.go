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

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	slidejson "github.com/nicholasgasior/slidejson-go"
)

var version = "dev"

type flags struct {
	output       string
	pretty       bool
	slide        int
	format       string
	mediaDir     string
	workers      int
	groupScaling bool
	logLevel     string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var f flags
	cmd := &cobra.Command{
		Use:   "slidejson [file.pptx | dir | URL]",
		Short: "Convert PowerPoint slides to JSON",
		Long: `slidejson converts the slides of a .pptx package, an extracted package
directory or a URL into positioned text and image elements with backgrounds,
layouts and theme information. Reads stdin when no source is given.`,
		Args:          cobra.MaximumNArgs(1),
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := run(cmd, args, f)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			}
			return err
		},
	}

	cmd.Flags().StringVarP(&f.output, "output", "o", "", "Output file (default: stdout)")
	cmd.Flags().BoolVar(&f.pretty, "pretty", false, "Pretty-print JSON output")
	cmd.Flags().IntVar(&f.slide, "slide", 0, "Convert only this slide number")
	cmd.Flags().StringVar(&f.format, "format", "json", "Output format: json, markdown")
	cmd.Flags().StringVar(&f.mediaDir, "media-dir", "", "Directory to copy referenced media files into")
	cmd.Flags().IntVar(&f.workers, "workers", 0, "Slides converted in parallel (default: SLIDEJSON_WORKERS)")
	cmd.Flags().BoolVar(&f.groupScaling, "group-scaling", false, "Scale group children by ext/chExt")
	cmd.Flags().StringVar(&f.logLevel, "log-level", "", "Log level: debug, info, warn, error (default: SLIDEJSON_LOG_LEVEL)")
	return cmd
}

func run(cmd *cobra.Command, args []string, f flags) error {
	cfg, err := slidejson.LoadConfig()
	if err != nil {
		return err
	}

	// Flags override the environment
	if cmd.Flags().Changed("workers") {
		cfg.Workers = f.workers
	}
	if cmd.Flags().Changed("group-scaling") {
		cfg.GroupScaling = f.groupScaling
	}
	if f.logLevel != "" {
		if err := cfg.LogLevel.UnmarshalText([]byte(f.logLevel)); err != nil {
			return fmt.Errorf("invalid log level %q: %w", f.logLevel, err)
		}
	}
	switch f.format {
	case "json", "markdown":
	default:
		return fmt.Errorf("invalid format: %s (must be json or markdown)", f.format)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))
	conv := slidejson.New(slidejson.WithConfig(cfg), slidejson.WithLogger(logger))

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	pkg, err := openSource(ctx, args)
	if err != nil {
		return err
	}

	var deck *slidejson.Deck
	if f.slide > 0 {
		slide, err := conv.ConvertSlide(ctx, pkg, f.slide)
		if err != nil {
			return err
		}
		deck = &slidejson.Deck{Slides: []*slidejson.SlideJSON{slide}}
	} else {
		deck, err = conv.ConvertDeck(ctx, pkg)
		if err != nil {
			return err
		}
	}

	if f.mediaDir != "" {
		if err := writeMedia(pkg, deck, f.mediaDir); err != nil {
			return fmt.Errorf("failed to write media: %w", err)
		}
	}

	out, err := render(deck, f)
	if err != nil {
		return err
	}

	if f.output != "" {
		if dir := filepath.Dir(f.output); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return err
			}
		}
		return os.WriteFile(f.output, out, 0o644)
	}
	_, err = os.Stdout.Write(out)
	return err
}

// openSource opens the argument as a URL, file or directory, or reads stdin.
func openSource(ctx context.Context, args []string) (slidejson.Package, error) {
	if len(args) == 0 {
		return slidejson.OpenReader(os.Stdin)
	}
	source := args[0]
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		return slidejson.OpenURL(ctx, source)
	}
	return slidejson.OpenFile(source)
}

func render(deck *slidejson.Deck, f flags) ([]byte, error) {
	if f.format == "markdown" {
		md, err := slidejson.Outline(deck)
		if err != nil {
			return nil, err
		}
		return []byte(md + "\n"), nil
	}

	var v any = deck
	if f.slide > 0 {
		v = deck.Slides[0]
	}
	var data []byte
	var err error
	if f.pretty {
		data, err = json.MarshalIndent(v, "", "  ")
	} else {
		data, err = json.Marshal(v)
	}
	if err != nil {
		return nil, fmt.Errorf("serialization failed: %w", err)
	}
	return append(data, '\n'), nil
}

func writeMedia(pkg slidejson.Package, deck *slidejson.Deck, dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	for _, name := range deck.MediaNames() {
		m, err := slidejson.ReadMedia(pkg, name)
		if err != nil {
			return err
		}
		if err := os.WriteFile(filepath.Join(dir, m.Name), m.Data, 0o644); err != nil {
			return err
		}
	}
	return nil
}
