package state

import (
	"encoding/json"
	"math"
	"teleprompter/layout"
	"time"
)

// SanitizeSettings builds valid Settings from arbitrary input. raw may be a
// decoded JSON object, raw JSON, or a Settings value. Any field that is
// missing, mistyped or non-finite takes its value from prev; numbers are
// clamped into range and rounded where the field is integral.
func SanitizeSettings(raw any, prev Settings) Settings {
	obj, ok := asObject(raw)
	if !ok {
		obj = map[string]any{}
	}

	return Settings{
		Mode:            modeField(obj, "mode", prev.Mode),
		FontSizePx:      intField(obj, "fontSizePx", prev.FontSizePx, MinFontSizePx, MaxFontSizePx),
		SpeedPxPerSec:   speedField(obj, "speedPxPerSec", prev.SpeedPxPerSec),
		Opacity:         floatField(obj, "opacity", prev.Opacity, MinOpacity, MaxOpacity),
		TopOffsetPx:     intField(obj, "topOffsetPx", prev.TopOffsetPx, MinTopOffsetPx, MaxTopOffsetPx),
		FloatingBounds:  sanitizeBounds(obj["floatingBounds"], prev.FloatingBounds),
		HideFromCapture: boolField(obj, "hideFromCapture", prev.HideFromCapture),
	}
}

func sanitizeBounds(raw any, prev layout.Rect) layout.Rect {
	obj, ok := asObject(raw)
	if !ok {
		obj = map[string]any{}
	}
	return layout.Rect{
		X:      intField(obj, "x", prev.X, -layout.CoordinateLimit, layout.CoordinateLimit),
		Y:      intField(obj, "y", prev.Y, -layout.CoordinateLimit, layout.CoordinateLimit),
		Width:  intField(obj, "width", prev.Width, layout.FloatingMinWidth, layout.FloatingMaxWidth),
		Height: intField(obj, "height", prev.Height, layout.FloatingMinHeight, layout.FloatingMaxHeight),
	}
}

// SanitizeScript builds a valid Script from arbitrary input, falling back to
// prev field by field. updatedAt is normalized when it parses as a date and
// set to the current time otherwise.
func SanitizeScript(raw any, prev Script) Script {
	obj, ok := asObject(raw)
	if !ok {
		obj = map[string]any{}
	}

	return Script{
		Text:         stringField(obj, "text", prev.Text),
		CursorPx:     cursorField(obj, "cursorPx", prev.CursorPx),
		LastFilePath: pathField(obj, "lastFilePath", prev.LastFilePath),
		UpdatedAt:    timeField(obj, "updatedAt"),
	}
}

// SanitizeState builds a valid AppState from arbitrary input. Input that is
// not an object yields DefaultState.
func SanitizeState(raw any) AppState {
	obj, ok := asObject(raw)
	if !ok {
		return DefaultState()
	}

	defaults := DefaultState()
	return AppState{
		Settings:       SanitizeSettings(obj["settings"], defaults.Settings),
		Script:         SanitizeScript(obj["script"], defaults.Script),
		PlaybackStatus: statusField(obj, "playbackStatus", defaults.PlaybackStatus),
	}
}

// asObject normalizes raw input to a JSON-style object.
func asObject(raw any) (map[string]any, bool) {
	switch v := raw.(type) {
	case nil:
		return nil, false
	case map[string]any:
		return v, true
	case json.RawMessage:
		return decodeObject(v)
	case []byte:
		return decodeObject(v)
	case Settings, *Settings, Script, *Script, AppState, *AppState, layout.Rect, *layout.Rect:
		data, err := json.Marshal(v)
		if err != nil {
			return nil, false
		}
		return decodeObject(data)
	default:
		return nil, false
	}
}

func decodeObject(data []byte) (map[string]any, bool) {
	var obj map[string]any
	if err := json.Unmarshal(data, &obj); err != nil || obj == nil {
		return nil, false
	}
	return obj, true
}

// number coerces numeric input to a finite float64.
func number(v any) (float64, bool) {
	var f float64
	switch n := v.(type) {
	case float64:
		f = n
	case float32:
		f = float64(n)
	case int:
		f = float64(n)
	case int8:
		f = float64(n)
	case int16:
		f = float64(n)
	case int32:
		f = float64(n)
	case int64:
		f = float64(n)
	case uint:
		f = float64(n)
	case uint8:
		f = float64(n)
	case uint16:
		f = float64(n)
	case uint32:
		f = float64(n)
	case uint64:
		f = float64(n)
	case json.Number:
		parsed, err := n.Float64()
		if err != nil {
			return 0, false
		}
		f = parsed
	default:
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

func clampFloat(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

func roundHalfUp(v float64) float64 {
	return math.Floor(v + 0.5)
}

func intField(obj map[string]any, key string, fallback, lo, hi int) int {
	f, ok := number(obj[key])
	if !ok {
		f = float64(fallback)
	}
	return int(clampFloat(roundHalfUp(clampFloat(f, float64(lo), float64(hi))), float64(lo), float64(hi)))
}

func speedField(obj map[string]any, key string, fallback int) int {
	f, ok := number(obj[key])
	if !ok {
		f = float64(fallback)
	}
	lo, hi := float64(MinSpeedPxPerSec), float64(MaxSpeedPxPerSec)
	stepped := roundHalfUp(clampFloat(f, lo, hi)/SpeedStep) * SpeedStep
	return int(clampFloat(stepped, lo, hi))
}

func floatField(obj map[string]any, key string, fallback, lo, hi float64) float64 {
	f, ok := number(obj[key])
	if !ok {
		f = fallback
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		f = lo
	}
	return clampFloat(f, lo, hi)
}

func cursorField(obj map[string]any, key string, fallback float64) float64 {
	f, ok := number(obj[key])
	if !ok {
		f = fallback
	}
	if math.IsNaN(f) || math.IsInf(f, 0) || f < 0 {
		return 0
	}
	return f
}

func boolField(obj map[string]any, key string, fallback bool) bool {
	if b, ok := obj[key].(bool); ok {
		return b
	}
	return fallback
}

func stringField(obj map[string]any, key string, fallback string) string {
	if s, ok := obj[key].(string); ok {
		return s
	}
	return fallback
}

func modeField(obj map[string]any, key string, fallback Mode) Mode {
	if s, ok := obj[key].(string); ok {
		switch m := Mode(s); m {
		case ModeTopStrip, ModeFloating:
			return m
		}
	}
	if fallback != ModeTopStrip && fallback != ModeFloating {
		return ModeTopStrip
	}
	return fallback
}

func statusField(obj map[string]any, key string, fallback PlaybackStatus) PlaybackStatus {
	if s, ok := obj[key].(string); ok {
		switch p := PlaybackStatus(s); p {
		case Stopped, Playing, Paused:
			return p
		}
	}
	return fallback
}

func pathField(obj map[string]any, key string, fallback *string) *string {
	v, present := obj[key]
	if !present {
		return clonePath(fallback)
	}
	switch p := v.(type) {
	case nil:
		return nil
	case string:
		if p == "" {
			return nil
		}
		return &p
	default:
		return clonePath(fallback)
	}
}

func clonePath(p *string) *string {
	if p == nil {
		return nil
	}
	out := *p
	return &out
}

func timeField(obj map[string]any, key string) time.Time {
	switch v := obj[key].(type) {
	case time.Time:
		if !v.IsZero() {
			return canonicalTime(v)
		}
	case string:
		if t, ok := parseTimestamp(v); ok {
			return t
		}
	default:
		if ms, ok := number(v); ok && ms >= minTimestampMillis && ms <= maxTimestampMillis {
			return canonicalTime(time.UnixMilli(int64(math.Trunc(ms))))
		}
	}
	return Now()
}

// Epoch milliseconds are accepted for years 0000 through 9999, the range
// the persisted RFC 3339 form can represent.
const (
	minTimestampMillis = -62167219200000
	maxTimestampMillis = 253402300799999
)

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

func parseTimestamp(s string) (time.Time, bool) {
	for _, format := range timestampLayouts {
		if t, err := time.Parse(format, s); err == nil && !t.IsZero() {
			return canonicalTime(t), true
		}
	}
	return time.Time{}, false
}
