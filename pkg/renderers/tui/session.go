package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/goliatone/go-sketchpad/pkg/config"
	"github.com/goliatone/go-sketchpad/pkg/geometry"
	"github.com/goliatone/go-sketchpad/pkg/render"
	"github.com/goliatone/go-sketchpad/pkg/sketchpad"
	"github.com/goliatone/go-sketchpad/pkg/sketchpad/modes"
)

type entryKind int

const (
	entryMode entryKind = iota
	entryStyle
	entryAction
	entryDone
)

type menuEntry struct {
	kind  entryKind
	key   string
	label string
}

type session struct {
	driver PromptDriver
	widget *sketchpad.Widget
	t      render.Localizer
	theme  Theme
}

// calibrate sizes the drawing space from the background payload, the
// component's configured size or, failing both, prompted dimensions. The
// drawing area is stretched to the logical width so typed coordinates are
// logical coordinates.
func (s *session) calibrate(ctx context.Context, component config.Component, background []byte) error {
	var err error
	switch {
	case len(background) > 0:
		err = s.widget.SetBackgroundImage(background)
	case !component.UseBackgroundDimensions():
		err = s.widget.SetBackgroundSize(component.Width, component.Height)
	default:
		width, werr := s.promptSize(ctx, s.t.T("sketchpad.tui.width", "Drawing width"), "800")
		if werr != nil {
			return werr
		}
		height, herr := s.promptSize(ctx, s.t.T("sketchpad.tui.height", "Drawing height"), "600")
		if herr != nil {
			return herr
		}
		err = s.widget.SetBackgroundSize(width, height)
	}
	if err != nil {
		return fmt.Errorf("tui: calibrate: %w", err)
	}

	dims, _ := s.widget.Dimensions()
	s.widget.StretchDrawingArea(dims.Width, dims.Height)
	return nil
}

func (s *session) promptSize(ctx context.Context, message, fallback string) (int, error) {
	for {
		raw, err := s.driver.Input(ctx, InputConfig{
			Message:   message,
			Default:   fallback,
			Validator: validateSize,
		})
		if err != nil {
			return 0, err
		}
		if strings.TrimSpace(raw) == "" {
			raw = fallback
		}
		if err := validateSize(raw); err != nil {
			if err := s.warn(ctx, err); err != nil {
				return 0, err
			}
			continue
		}
		size, _ := strconv.Atoi(strings.TrimSpace(raw))
		return size, nil
	}
}

func validateSize(raw string) error {
	size, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || size <= 0 {
		return fmt.Errorf("size must be a positive integer")
	}
	return nil
}

func (s *session) run(ctx context.Context) error {
	last := 0
	for {
		entries := s.menu()
		labels := make([]string, len(entries))
		for idx, entry := range entries {
			labels[idx] = entry.label
		}

		idx, err := s.driver.Select(ctx, SelectConfig{
			Message:      s.t.T("sketchpad.tui.menu", "Choose a tool"),
			Options:      labels,
			DefaultIndex: last,
		})
		if err != nil {
			return err
		}
		if idx < 0 || idx >= len(entries) {
			return fmt.Errorf("tui: invalid selection %d", idx)
		}
		last = idx

		entry := entries[idx]
		switch entry.kind {
		case entryDone:
			return nil
		case entryMode:
			err = s.draw(ctx, entry)
		case entryStyle:
			err = s.setStyle(ctx, entry)
		case entryAction:
			err = s.action(ctx, entry)
		}
		if err != nil {
			return err
		}
	}
}

// menu lists drawing modes, style controls with their current values, the
// history actions and Done. Pan has no meaning without a viewport and is
// left out.
func (s *session) menu() []menuEntry {
	style := s.widget.Style()
	var entries []menuEntry
	for _, group := range s.widget.Toolbar() {
		for _, button := range group.Buttons {
			title := s.t.T(button.TitleKey, button.Title)
			switch group.Name {
			case sketchpad.GroupModes:
				if button.Key == modes.NamePan {
					continue
				}
				entries = append(entries, menuEntry{kind: entryMode, key: button.Key, label: title})
			case sketchpad.GroupStyles:
				label := fmt.Sprintf("%s (%s)", title, style.Value(button.Key))
				entries = append(entries, menuEntry{kind: entryStyle, key: button.Key, label: label})
			case sketchpad.GroupActions:
				entries = append(entries, menuEntry{kind: entryAction, key: button.Key, label: title})
			}
		}
	}
	return append(entries, menuEntry{kind: entryDone, label: s.t.T("sketchpad.tui.done", "Done")})
}

// draw collects points and replays them as one pointer gesture: down on the
// first point, a move per following point and up on the last.
func (s *session) draw(ctx context.Context, entry menuEntry) error {
	if err := s.widget.SelectMode(entry.key); err != nil {
		return fmt.Errorf("tui: %w", err)
	}

	var points []geometry.Point
	for {
		message := s.t.T("sketchpad.tui.start", "Start point (x,y)")
		if len(points) > 0 {
			message = s.t.T("sketchpad.tui.next", "Next point (x,y), empty to finish")
		}
		raw, err := s.driver.Input(ctx, InputConfig{Message: message, Validator: validatePointInput})
		if err != nil {
			return err
		}
		if strings.TrimSpace(raw) == "" {
			if len(points) > 0 {
				break
			}
			if err := s.warn(ctx, ErrInvalidPoint); err != nil {
				return err
			}
			continue
		}
		p, err := ParsePoint(raw)
		if err != nil {
			if err := s.warn(ctx, err); err != nil {
				return err
			}
			continue
		}
		points = append(points, p)
	}

	before := len(s.widget.Value())
	if err := s.gesture(points); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	if len(s.widget.Value()) > before {
		return s.info(ctx, fmt.Sprintf(s.t.T("sketchpad.tui.added", "Added %s"), entry.label))
	}
	return s.info(ctx, s.t.T("sketchpad.tui.nothingDrawn", "Nothing was drawn"))
}

func (s *session) gesture(points []geometry.Point) error {
	dims, _ := s.widget.Dimensions()
	multiplier := s.widget.Multiplier()
	event := func(p geometry.Point) sketchpad.PointerEvent {
		return sketchpad.PointerEvent{
			Kind: sketchpad.PointerMouse,
			ID:   1,
			X:    (p.X - dims.MinX) * multiplier,
			Y:    (p.Y - dims.MinY) * multiplier,
		}
	}

	if err := s.widget.PointerDown(event(points[0])); err != nil {
		return err
	}
	for _, p := range points[1:] {
		if err := s.widget.PointerMove(event(p)); err != nil {
			return err
		}
	}
	return s.widget.PointerUp(event(points[len(points)-1]))
}

func (s *session) setStyle(ctx context.Context, entry menuEntry) error {
	current := s.widget.Style()
	raw, err := s.driver.Input(ctx, InputConfig{
		Message: entry.label,
		Default: current.Value(entry.key),
		Validator: func(value string) error {
			_, err := current.With(entry.key, value)
			return err
		},
	})
	if err != nil {
		return err
	}
	if err := s.widget.SetStyle(entry.key, raw); err != nil {
		return s.warn(ctx, err)
	}
	return nil
}

func (s *session) action(ctx context.Context, entry menuEntry) error {
	switch entry.key {
	case sketchpad.ActionUndo:
		if !s.widget.CanUndo() {
			return s.info(ctx, s.t.T("sketchpad.tui.nothingToUndo", "Nothing to undo"))
		}
	case sketchpad.ActionRedo:
		if !s.widget.CanRedo() {
			return s.info(ctx, s.t.T("sketchpad.tui.nothingToRedo", "Nothing to redo"))
		}
	case sketchpad.ActionClearAll:
		count := len(s.widget.Value())
		if count == 0 {
			return nil
		}
		ok, err := s.driver.Confirm(ctx, ConfirmConfig{
			Message: fmt.Sprintf(s.t.T("sketchpad.tui.confirmClear", "Remove all %d shapes?"), count),
		})
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
	}
	if err := s.widget.Action(entry.key); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}

func (s *session) info(ctx context.Context, msg string) error {
	return s.driver.Info(ctx, s.theme.InfoPrefix+msg)
}

func (s *session) warn(ctx context.Context, err error) error {
	return s.driver.Info(ctx, s.theme.ErrorPrefix+err.Error())
}

// ParsePoint reads "x,y" (or "x y") into a point.
func ParsePoint(raw string) (geometry.Point, error) {
	parts := strings.FieldsFunc(strings.TrimSpace(raw), func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	if len(parts) != 2 {
		return geometry.Point{}, ErrInvalidPoint
	}
	x, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return geometry.Point{}, ErrInvalidPoint
	}
	y, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return geometry.Point{}, ErrInvalidPoint
	}
	return geometry.Pt(x, y), nil
}

func validatePointInput(raw string) error {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	_, err := ParsePoint(raw)
	return err
}
