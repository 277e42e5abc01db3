package parameter

// Colors, hex encoded
const (
	ColorSlow       = "#737373"
	ColorMedium     = "#ef4444"
	ColorFast       = "#dc2626"
	ColorConnection = "#dc2626"
)

// Palette is the default fixed palette for palette color mode
var Palette = []string{"#737373", "#ef4444", "#dc2626", "#f97316", "#a3a3a3"}

// Speed ramp cutoffs as ratio of max speed
const (
	SpeedRatioMedium = 0.3
	SpeedRatioFast   = 0.7
)

// Rendering
const (
	// ConnectionAlpha is the peak opacity of a link at zero distance
	ConnectionAlpha = 0.15

	// ConnectionLineWidth is the stroke width of links
	ConnectionLineWidth = 0.5

	// ParticleBaseAlpha is the body opacity of an unconnected particle
	ParticleBaseAlpha = 0.3

	// ParticleAlphaPerConnection is added per connection, capped at full opacity
	ParticleAlphaPerConnection = 0.1

	// GlowScale is the glow radius as a multiple of the body radius
	GlowScale = 4.0

	// GlowAlpha is the glow opacity at its centre relative to body alpha
	GlowAlpha = 0.35
)

// Terminal Presentation
const (
	// HalfBlock renders the upper pixel as foreground and the lower pixel as background
	HalfBlock = '▀'
)
