package color

// hexLabels maps the default five-color palette to render-ready hex
// strings for web maps.
var hexLabels = []string{
	"#3b82f6", // blue
	"#f59e0b", // amber
	"#10b981", // green
	"#9333ea", // purple
	"#ef4444", // red
}

// hexFallback is returned for colors outside the default palette,
// including the -1 "uncolored" sentinel.
const hexFallback = "#9ca3af" // gray

// Hex returns a render-ready hex string for a color index of the default
// palette. Indices outside [0, DefaultPalette) map to a neutral gray, so
// uncolored regions stay visible rather than invisible.
func Hex(c int) string {
	if c < 0 || c >= len(hexLabels) {
		return hexFallback
	}

	return hexLabels[c]
}
