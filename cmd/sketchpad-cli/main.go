package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/goliatone/go-sketchpad"
	"github.com/goliatone/go-sketchpad/pkg/background"
	"github.com/goliatone/go-sketchpad/pkg/config"
	"github.com/goliatone/go-sketchpad/pkg/orchestrator"
	"github.com/goliatone/go-sketchpad/pkg/render"
	"github.com/goliatone/go-sketchpad/pkg/renderers/tui"
	"github.com/goliatone/go-sketchpad/pkg/renderers/vanilla"
)

func main() {
	flag.Usage = func() {
		if _, err := fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags]\n", filepath.Base(os.Args[0])); err != nil {
			panic(err)
		}
		if _, err := fmt.Fprintf(flag.CommandLine.Output(), "\nRender, export or interactively edit a sketchpad value.\n\n"); err != nil {
			panic(err)
		}
		flag.PrintDefaults()
	}
	configPath := flag.String("config", "", "component definition (JSON, YAML or TOML)")
	valuePath := flag.String("value", "", "stored value JSON file")
	format := flag.String("format", "svg", "output format: html, svg, png, pdf or tui")
	output := flag.String("output", "", "output file (stdout if empty)")
	backgroundPath := flag.String("background", "", "background image overriding the component imageUrl")
	scale := flag.Float64("scale", 1, "PNG pixels per logical unit")
	width := flag.Int("width", 0, "drawing width when no config is given")
	height := flag.Int("height", 0, "drawing height when no config is given")
	flag.Parse()

	envCfg, err := loadEnv()
	if err != nil {
		log.Fatalf("Failed to read environment: %v", err)
	}
	logger := newLogger(envCfg.LogLevel)

	component := config.Defaults()
	if *configPath != "" {
		component, err = config.Load(*configPath)
		if err != nil {
			log.Fatalf("Failed to load component: %v", err)
		}
	} else {
		component.Width, component.Height = *width, *height
	}

	var value any
	if *valuePath != "" {
		data, err := os.ReadFile(*valuePath)
		if err != nil {
			log.Fatalf("Failed to read value: %v", err)
		}
		value = data
	}

	ctx := context.Background()
	loaderOptions := []background.LoaderOption{}
	if envCfg.AllowHTTP {
		loaderOptions = append(loaderOptions, background.WithHTTPFallback(envCfg.HTTPTimeout))
	}
	loader := sketchpad.NewLoader(loaderOptions...)

	var bg []byte
	if *backgroundPath != "" {
		doc, err := loader.Load(ctx, background.SourceFromFile(*backgroundPath))
		if err != nil {
			log.Fatalf("Failed to load background: %v", err)
		}
		bg = doc.Raw()
	}

	options := []orchestrator.Option{
		orchestrator.WithLoader(loader),
		orchestrator.WithSanitizer(envCfg.Sanitize),
		orchestrator.WithLogger(logger),
	}

	var out []byte
	switch strings.ToLower(*format) {
	case "html", tui.Name:
		registry, err := rendererRegistry(ctx, loader, component, bg, logger)
		if err != nil {
			log.Fatalf("Failed to configure renderers: %v", err)
		}
		name := vanilla.Name
		if strings.EqualFold(*format, tui.Name) {
			name = tui.Name
		}
		gen := sketchpad.NewOrchestrator(append(options, orchestrator.WithRegistry(registry))...)
		out, err = gen.Generate(ctx, orchestrator.Request{
			Component: component,
			Value:     value,
			Renderer:  name,
		})
		if err != nil {
			log.Fatalf("Failed to render component: %v", err)
		}
	default:
		gen := sketchpad.NewOrchestrator(options...)
		out, err = gen.Export(ctx, orchestrator.ExportRequest{
			Component:  component,
			Value:      value,
			Format:     orchestrator.Format(strings.ToLower(*format)),
			Background: bg,
			Scale:      *scale,
		})
		if err != nil {
			log.Fatalf("Failed to export sketch: %v", err)
		}
	}

	if *output != "" {
		if err := os.WriteFile(*output, out, 0o644); err != nil {
			log.Fatalf("Failed to write output: %v", err)
		}
		logger.Info("output written", slog.String("path", *output), slog.Int("bytes", len(out)))
		return
	}
	if _, err := os.Stdout.Write(out); err != nil {
		log.Fatalf("Failed to write output: %v", err)
	}
}

// rendererRegistry registers the HTML renderer and a terminal session that
// prompts on stderr so stdout stays clean for the result. The session is
// calibrated from the background when one is available.
func rendererRegistry(ctx context.Context, loader background.Loader, component config.Component, bg []byte, logger *slog.Logger) (*render.Registry, error) {
	if len(bg) == 0 && component.UseBackgroundDimensions() {
		if src, ok := component.BackgroundSource(); ok {
			doc, err := loader.Load(ctx, src)
			if err != nil {
				return nil, err
			}
			bg = doc.Raw()
		}
	}

	html, err := vanilla.New()
	if err != nil {
		return nil, err
	}
	session, err := tui.New(
		tui.WithPromptDriver(tui.NewSurveyDriver(os.Stderr)),
		tui.WithBackground(bg),
		tui.WithLogger(logger),
	)
	if err != nil {
		return nil, err
	}

	registry := render.NewRegistry()
	registry.MustRegister(html, session)
	return registry, nil
}

func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
}
