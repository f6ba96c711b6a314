package tui_test

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-sketchpad/pkg/config"
	"github.com/goliatone/go-sketchpad/pkg/geometry"
	"github.com/goliatone/go-sketchpad/pkg/model"
	"github.com/goliatone/go-sketchpad/pkg/render"
	"github.com/goliatone/go-sketchpad/pkg/renderers/tui"
	"github.com/goliatone/go-sketchpad/pkg/sketchpad"
)

// Menu indices for the built-in modes: pencil, line, rectangle, circle,
// then stroke, fill, width, circle size, then undo, redo, clear all, done.
const (
	menuLine     = 1
	menuCircle   = 3
	menuStroke   = 4
	menuUndo     = 8
	menuClearAll = 10
	menuDone     = 11
)

type stubDriver struct {
	inputs       []string
	selectIdx    []int
	confirm      []bool
	infoMessages []string
	menus        [][]string
	inputPos     int
	selectPos    int
	confirmPos   int
}

func (s *stubDriver) Input(_ context.Context, _ tui.InputConfig) (string, error) {
	if s.inputPos >= len(s.inputs) {
		return "", errors.New("no input scripted")
	}
	val := s.inputs[s.inputPos]
	s.inputPos++
	return val, nil
}

func (s *stubDriver) Confirm(_ context.Context, _ tui.ConfirmConfig) (bool, error) {
	if s.confirmPos >= len(s.confirm) {
		return false, errors.New("no confirm scripted")
	}
	val := s.confirm[s.confirmPos]
	s.confirmPos++
	return val, nil
}

func (s *stubDriver) Select(_ context.Context, cfg tui.SelectConfig) (int, error) {
	s.menus = append(s.menus, cfg.Options)
	if s.selectPos >= len(s.selectIdx) {
		return -1, errors.New("no select scripted")
	}
	val := s.selectIdx[s.selectPos]
	s.selectPos++
	return val, nil
}

func (s *stubDriver) Info(_ context.Context, msg string) error {
	s.infoMessages = append(s.infoMessages, msg)
	return nil
}

func sizedField(t *testing.T) model.Field {
	t.Helper()
	field, err := config.Component{Key: "plan", Width: 100, Height: 80}.Field(nil)
	if err != nil {
		t.Fatalf("field: %v", err)
	}
	return field
}

func TestRenderDrawsShapes(t *testing.T) {
	driver := &stubDriver{
		selectIdx: []int{menuLine, menuStroke, menuCircle, menuUndo, menuDone},
		inputs: []string{
			"10,10", "50 40", "",
			"#ff0000",
			"20,20", "",
		},
	}
	r, err := tui.New(tui.WithPromptDriver(driver))
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}

	out, err := r.Render(context.Background(), sizedField(t), render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	var got []sketchpad.Shape
	if err := json.Unmarshal(out, &got); err != nil {
		t.Fatalf("decode output %s: %v", out, err)
	}
	want := []sketchpad.Shape{sketchpad.NewShape("line", map[string]any{
		"x1": 10.0, "y1": 10.0, "x2": 50.0, "y2": 40.0,
		"stroke": "#333", "linewidth": 1.0,
	})}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("shapes mismatch (-want +got):\n%s", diff)
	}

	if len(driver.menus) == 0 || len(driver.menus[0]) != menuDone+1 {
		t.Fatalf("unexpected menu %v", driver.menus)
	}
	for _, label := range driver.menus[0] {
		if strings.HasPrefix(label, "Pan") {
			t.Fatalf("pan should not be offered: %v", driver.menus[0])
		}
	}
	if !strings.Contains(driver.menus[len(driver.menus)-1][menuStroke], "#ff0000") {
		t.Fatalf("expected stroke menu entry to show the new colour: %v", driver.menus[len(driver.menus)-1])
	}
	if diff := cmp.Diff([]string{"Added Line", "Added Circle"}, driver.infoMessages); diff != "" {
		t.Fatalf("info messages mismatch (-want +got):\n%s", diff)
	}
	if r.ContentType() != "application/json" {
		t.Fatalf("unexpected content type %q", r.ContentType())
	}
}

func TestRenderKeepsShapesWhenClearIsDeclined(t *testing.T) {
	driver := &stubDriver{
		selectIdx: []int{menuClearAll, menuDone},
		confirm:   []bool{false},
	}
	r, err := tui.New(tui.WithPromptDriver(driver), tui.WithOutputFormat(tui.OutputFormatPrettyText))
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}

	out, err := r.Render(context.Background(), sizedField(t), render.RenderOptions{
		Values: map[string]any{
			"plan": `[{"mode":"circle","cx":5,"cy":5,"r":10,"stroke":"#333","fill":"#ccc","linewidth":1}]`,
		},
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if got, want := string(out), "1. circle cx=5 cy=5 fill=#ccc linewidth=1 r=10 stroke=#333\n"; got != want {
		t.Fatalf("unexpected output %q, want %q", got, want)
	}
	if driver.confirmPos != 1 {
		t.Fatalf("expected confirmation prompt")
	}
}

func TestRenderPromptsForSize(t *testing.T) {
	field, err := config.Component{Key: "plan"}.Field(nil)
	if err != nil {
		t.Fatalf("field: %v", err)
	}
	driver := &stubDriver{
		selectIdx: []int{menuDone},
		inputs:    []string{"zero", "200", ""},
	}
	r, err := tui.New(tui.WithPromptDriver(driver), tui.WithOutputFormat(tui.OutputFormatSVG))
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}

	out, err := r.Render(context.Background(), field, render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(string(out), `viewBox="0 0 200 600"`) {
		t.Fatalf("expected prompted size in svg: %s", out)
	}
	if len(driver.infoMessages) != 1 {
		t.Fatalf("expected one warning for invalid size, got %v", driver.infoMessages)
	}
}

func TestRenderRejectsInvalidPoints(t *testing.T) {
	driver := &stubDriver{
		selectIdx: []int{menuCircle, menuDone},
		inputs:    []string{"", "a,b", "30,40", ""},
	}
	r, err := tui.New(tui.WithPromptDriver(driver), tui.WithTheme(tui.Theme{ErrorPrefix: "! "}))
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}

	out, err := r.Render(context.Background(), sizedField(t), render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(string(out), `"cx":30`) {
		t.Fatalf("expected circle at the valid point: %s", out)
	}
	warnings := 0
	for _, msg := range driver.infoMessages {
		if strings.HasPrefix(msg, "! ") {
			warnings++
		}
	}
	if warnings != 2 {
		t.Fatalf("expected two warnings, got %v", driver.infoMessages)
	}
}

func TestRenderAborts(t *testing.T) {
	r, err := tui.New(tui.WithPromptDriver(&stubDriver{}))
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	if _, err := r.Render(context.Background(), sizedField(t), render.RenderOptions{}); err == nil {
		t.Fatalf("expected error when the driver stops answering")
	}
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	if _, err := tui.New(tui.WithOutputFormat("xml")); err == nil {
		t.Fatalf("expected error for unknown output format")
	}
}

func TestParsePoint(t *testing.T) {
	got, err := tui.ParsePoint(" 1.5, -2 ")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if diff := cmp.Diff(geometry.Pt(1.5, -2), got); diff != "" {
		t.Fatalf("point mismatch (-want +got):\n%s", diff)
	}
	for _, raw := range []string{"", "1", "1,2,3", "x,1"} {
		if _, err := tui.ParsePoint(raw); !errors.Is(err, tui.ErrInvalidPoint) {
			t.Fatalf("expected ErrInvalidPoint for %q, got %v", raw, err)
		}
	}
}
