package logger

import "log/slog"

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Profile records the validator profile name under the key "profile".
func Profile(name string) slog.Attr {
	return slog.String("profile", name)
}

// Count records a number of processed items under the key "count".
func Count(n int) slog.Attr {
	return slog.Int("count", n)
}

// Invalid records how many items were rejected under the key "invalid".
func Invalid(n int) slog.Attr {
	return slog.Int("invalid", n)
}

// Constraints groups validator precision, scale and sign restriction.
func Constraints(precision, scale int, onlyPositive bool) slog.Attr {
	return slog.Group("constraints",
		slog.Int("precision", precision),
		slog.Int("scale", scale),
		slog.Bool("only_positive", onlyPositive),
	)
}
