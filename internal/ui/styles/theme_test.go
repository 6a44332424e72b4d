// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"strings"
	"testing"
)

func TestNewTheme(t *testing.T) {
	theme := NewTheme()
	if theme == nil {
		t.Fatal("NewTheme() returned nil")
	}

	// Styles must render without panicking and preserve content.
	out := theme.UserBubble.Render("hello")
	if !strings.Contains(out, "hello") {
		t.Errorf("UserBubble.Render() lost content: %q", out)
	}
}

func TestNewThemeWithBackground(t *testing.T) {
	dark := NewThemeWithBackground(true)
	if !dark.IsDark {
		t.Error("NewThemeWithBackground(true).IsDark = false")
	}
	if dark.Name() != "dark" {
		t.Errorf("Name() = %q, want dark", dark.Name())
	}

	light := NewThemeWithBackground(false)
	if light.IsDark {
		t.Error("NewThemeWithBackground(false).IsDark = true")
	}
	if light.Name() != "light" {
		t.Errorf("Name() = %q, want light", light.Name())
	}
}

func TestThemeResize(t *testing.T) {
	theme := NewThemeWithBackground(true)
	theme.Resize(120, 40)
	if theme.Width != 120 || theme.Height != 40 {
		t.Errorf("Resize() = %dx%d, want 120x40", theme.Width, theme.Height)
	}
}

func TestRenderError(t *testing.T) {
	out := RenderError("request failed")
	if !strings.Contains(out, StatusIndicators.Error) {
		t.Errorf("RenderError() missing shape indicator: %q", out)
	}
	if !strings.Contains(out, "request failed") {
		t.Errorf("RenderError() lost message: %q", out)
	}
}
