package logfields

import "log/slog"

// Canonical log field name constants to avoid drift across packages.
const (
	KeyBuildID    = "build_id"
	KeyStage      = "stage"
	KeyPath       = "path"
	KeyField      = "field"
	KeyReason     = "reason"
	KeyProvider   = "provider"
	KeyPages      = "pages"
	KeyIssues     = "issues"
	KeyFormat     = "format"
	KeyAddr       = "addr"
	KeyMethod     = "method"
	KeyStatus     = "status"
	KeyLink       = "link"
	KeyDurationMS = "duration_ms"
	KeyError      = "error"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func BuildID(id string) slog.Attr { return slog.String(KeyBuildID, id) }
func Stage(s string) slog.Attr { return slog.String(KeyStage, s) }
func Path(p string) slog.Attr { return slog.String(KeyPath, p) }
func Field(p string) slog.Attr { return slog.String(KeyField, p) }
func Reason(r string) slog.Attr { return slog.String(KeyReason, r) }
func Provider(p string) slog.Attr { return slog.String(KeyProvider, p) }
func Pages(n int) slog.Attr { return slog.Int(KeyPages, n) }
func Issues(n int) slog.Attr { return slog.Int(KeyIssues, n) }
func Format(f string) slog.Attr { return slog.String(KeyFormat, f) }
func Addr(a string) slog.Attr { return slog.String(KeyAddr, a) }
func Method(m string) slog.Attr { return slog.String(KeyMethod, m) }
func Status(code int) slog.Attr { return slog.Int(KeyStatus, code) }
func Link(l string) slog.Attr { return slog.String(KeyLink, l) }
func DurationMS(ms float64) slog.Attr { return slog.Float64(KeyDurationMS, ms) }
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
