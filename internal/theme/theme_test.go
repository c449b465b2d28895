package theme_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/joestump/recrutas/internal/theme"
)

func TestParse(t *testing.T) {
	tests := []struct {
		input   string
		want    theme.Theme
		wantErr bool
	}{
		{"light", theme.Light, false},
		{"dark", theme.Dark, false},
		{" Dark ", "", true},
		{"LIGHT", "", true},
		{"", "", true},
		{"joe-dark", "", true},
		{"system", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := theme.Parse(tt.input)
			if tt.wantErr {
				if !errors.Is(err, theme.ErrInvalidTheme) {
					t.Fatalf("Parse(%q) err = %v, want ErrInvalidTheme", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse(%q): %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestFromStored(t *testing.T) {
	tests := []struct {
		stored string
		want   theme.Theme
		wantOK bool
	}{
		{"", "", false},
		{"dark", theme.Dark, true},
		{"light", theme.Light, true},
		{"purple", theme.Light, true},
		{"Dark", theme.Light, true},
	}
	for _, tt := range tests {
		got, ok := theme.FromStored(tt.stored)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("FromStored(%q) = (%q, %v), want (%q, %v)", tt.stored, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestToggleLabel(t *testing.T) {
	if got := theme.Dark.ToggleLabel(); got != "☀️ Light Mode" {
		t.Errorf("Dark.ToggleLabel() = %q", got)
	}
	if got := theme.Light.ToggleLabel(); got != "🌙 Dark Mode" {
		t.Errorf("Light.ToggleLabel() = %q", got)
	}
}

func TestClassList_SetIsExclusive(t *testing.T) {
	c := theme.NewClassList("base")
	c.Set(theme.Light)
	c.Set(theme.Dark)
	c.Set(theme.Dark)

	if got, want := c.String(), "base dark"; got != want {
		t.Errorf("classes = %q, want %q", got, want)
	}
	c.Set(theme.Light)
	if got, want := c.String(), "base light"; got != want {
		t.Errorf("classes = %q, want %q", got, want)
	}
}

func TestRequestSignal(t *testing.T) {
	tests := []struct {
		name    string
		hint    string
		script  string
		want    bool
		wantErr bool
	}{
		{"hint dark", "dark", "", true, false},
		{"quoted hint", `"dark"`, "", true, false},
		{"hint light", "light", "", false, false},
		{"script dark", "", "dark", true, false},
		{"hint wins over script", "light", "dark", false, false},
		{"nothing", "", "", false, true},
		{"unknown", "no-preference", "", false, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.hint != "" {
				r.Header.Set(theme.ClientHintHeader, tt.hint)
			}
			if tt.script != "" {
				r.Header.Set(theme.SchemeHeader, tt.script)
			}
			got, err := theme.RequestSignal(r).PrefersDark(context.Background())
			if tt.wantErr {
				if !errors.Is(err, theme.ErrSignalUnavailable) {
					t.Fatalf("err = %v, want ErrSignalUnavailable", err)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("PrefersDark = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAdvertiseClientHint(t *testing.T) {
	h := http.Header{}
	theme.AdvertiseClientHint(h)
	if h.Get("Accept-CH") != theme.ClientHintHeader {
		t.Errorf("Accept-CH = %q", h.Get("Accept-CH"))
	}
	if vary := h.Values("Vary"); len(vary) != 2 || vary[0] != theme.ClientHintHeader || vary[1] != theme.SchemeHeader {
		t.Errorf("Vary = %v", vary)
	}
}
