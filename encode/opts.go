package encode

import "log/slog"

type EncodeOption func(*EncState)

func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.Color = c.Color }
}

// EncodeLogger sets where warnings about degraded output go.
func EncodeLogger(l *slog.Logger) EncodeOption {
	return func(es *EncState) { es.log = l }
}

// EncodeAnchorStart sets the first anchor label.
func EncodeAnchorStart(n int) EncodeOption {
	return func(es *EncState) { es.anchor = n - 1 }
}
