package model

// Markers prefixed to console status lines.
const (
	IconOK       = "✅"
	IconWarn     = "⚠️ "
	IconError    = "❌"
	IconInfo     = "👉"
	IconDownload = "📦"
	IconNew      = "✨"
)
