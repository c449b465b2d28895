package theme

import (
	"context"
	"errors"
	"net/http"
	"strings"
)

const (
	// ClientHintHeader carries the browser's prefers-color-scheme media
	// feature. Chromium browsers send it once the server has advertised it.
	ClientHintHeader = "Sec-CH-Prefers-Color-Scheme"

	// SchemeHeader carries the same media feature as reported by the page
	// script's matchMedia query, for browsers without client hints.
	SchemeHeader = "X-Prefers-Color-Scheme"
)

// ErrSignalUnavailable means the host environment did not report a preference.
var ErrSignalUnavailable = errors.New("system color scheme unavailable")

// SystemSignal reports whether the host environment's ambient setting favors Dark.
type SystemSignal interface {
	PrefersDark(ctx context.Context) (bool, error)
}

// SignalFunc adapts a function to SystemSignal.
type SignalFunc func(ctx context.Context) (bool, error)

func (f SignalFunc) PrefersDark(ctx context.Context) (bool, error) { return f(ctx) }

// StaticSignal always reports the same preference.
type StaticSignal bool

func (s StaticSignal) PrefersDark(context.Context) (bool, error) { return bool(s), nil }

// RequestSignal reads the color scheme the request reports: the client hint
// when present, otherwise the header set by the page script.
func RequestSignal(r *http.Request) SystemSignal {
	hint := r.Header.Get(ClientHintHeader)
	if strings.TrimSpace(hint) == "" {
		hint = r.Header.Get(SchemeHeader)
	}
	return SignalFunc(func(context.Context) (bool, error) {
		switch strings.ToLower(strings.Trim(strings.TrimSpace(hint), `"`)) {
		case "dark":
			return true, nil
		case "light":
			return false, nil
		default:
			return false, ErrSignalUnavailable
		}
	})
}

// AdvertiseClientHint asks the browser to send the color-scheme hint on
// subsequent requests, and on a retry of this one when it was missing.
func AdvertiseClientHint(h http.Header) {
	h.Set("Accept-CH", ClientHintHeader)
	h.Set("Critical-CH", ClientHintHeader)
	h.Add("Vary", ClientHintHeader)
	h.Add("Vary", SchemeHeader)
}
