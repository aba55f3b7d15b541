package forecast

// Palette defines the background gradient and text colors for a weather
// condition + time of day. The presentation layer renders it as a vertical
// gradient behind the current conditions.
type Palette struct {
	// GradientTop is the top color stop of the background gradient.
	GradientTop string
	// GradientBottom is the bottom color stop.
	GradientBottom string
	// Accent is the highlight color (temperature, icons).
	Accent string
	// Text is the primary text color.
	Text string
}

// DefaultPalette is the fallback dark theme.
var DefaultPalette = Palette{
	GradientTop:    "#0f0f1a",
	GradientBottom: "#1a1a2e",
	Accent:         "#4fc3f7",
	Text:           "#eeeeee",
}

// palettes maps condition+time keys to curated gradients. Day palettes are
// lighter and warmer, night palettes darker and cooler.
var palettes = map[string]Palette{
	// === CLEAR ===
	"clear_dawn": {
		GradientTop:    "#2b2640",
		GradientBottom: "#e8845c",
		Accent:         "#ffb36b",
		Text:           "#fff6ec",
	},
	"clear_day": {
		GradientTop:    "#3d8bd4",
		GradientBottom: "#8ec9f0",
		Accent:         "#ffd24d",
		Text:           "#10263a",
	},
	"clear_dusk": {
		GradientTop:    "#32224e",
		GradientBottom: "#d4603c",
		Accent:         "#ff8a50",
		Text:           "#ffeede",
	},
	"clear_night": {
		GradientTop:    "#060812",
		GradientBottom: "#1a2340",
		Accent:         "#7d9bd0",
		Text:           "#dde4f0",
	},

	// === CLOUDS ===
	"clouds_dawn": {
		GradientTop:    "#3a3444",
		GradientBottom: "#b08070",
		Accent:         "#d8a080",
		Text:           "#f4eee8",
	},
	"clouds_day": {
		GradientTop:    "#7a8b9c",
		GradientBottom: "#b8c4ce",
		Accent:         "#5c7a94",
		Text:           "#1e2a34",
	},
	"clouds_dusk": {
		GradientTop:    "#38304a",
		GradientBottom: "#8a6058",
		Accent:         "#c08868",
		Text:           "#efe6e0",
	},
	"clouds_night": {
		GradientTop:    "#0c0e16",
		GradientBottom: "#222838",
		Accent:         "#68809c",
		Text:           "#d4dae4",
	},

	// === RAIN ===
	"rain_dawn": {
		GradientTop:    "#2c2c3a",
		GradientBottom: "#6a6078",
		Accent:         "#90a8c8",
		Text:           "#ececf4",
	},
	"rain_day": {
		GradientTop:    "#4a6078",
		GradientBottom: "#8698a8",
		Accent:         "#accce8",
		Text:           "#101c28",
	},
	"rain_dusk": {
		GradientTop:    "#282436",
		GradientBottom: "#584e66",
		Accent:         "#8898c0",
		Text:           "#e6e4f0",
	},
	"rain_night": {
		GradientTop:    "#080a12",
		GradientBottom: "#1c2230",
		Accent:         "#6480a8",
		Text:           "#ccd4e0",
	},

	// === STORM ===
	"storm_dawn": {
		GradientTop:    "#201c2c",
		GradientBottom: "#4c4058",
		Accent:         "#c8b060",
		Text:           "#f0ece0",
	},
	"storm_day": {
		GradientTop:    "#303c50",
		GradientBottom: "#5c6878",
		Accent:         "#e8cc60",
		Text:           "#eef0f4",
	},
	"storm_dusk": {
		GradientTop:    "#1c1828",
		GradientBottom: "#443a52",
		Accent:         "#d0b050",
		Text:           "#ece8da",
	},
	"storm_night": {
		GradientTop:    "#050610",
		GradientBottom: "#181a28",
		Accent:         "#c0a858",
		Text:           "#d8dce4",
	},

	// === SNOW ===
	"snow_dawn": {
		GradientTop:    "#3c3c50",
		GradientBottom: "#c0b0c0",
		Accent:         "#e8d0e0",
		Text:           "#fafafc",
	},
	"snow_day": {
		GradientTop:    "#a8bccc",
		GradientBottom: "#e8f0f6",
		Accent:         "#6890b0",
		Text:           "#20303c",
	},
	"snow_dusk": {
		GradientTop:    "#343048",
		GradientBottom: "#a090ac",
		Accent:         "#d0b8d0",
		Text:           "#f6f4f8",
	},
	"snow_night": {
		GradientTop:    "#0c1018",
		GradientBottom: "#2c3444",
		Accent:         "#90a8c4",
		Text:           "#e0e8f0",
	},

	// === FOG ===
	"fog_dawn": {
		GradientTop:    "#3c3840",
		GradientBottom: "#8c8088",
		Accent:         "#c0a898",
		Text:           "#f0ecec",
	},
	"fog_day": {
		GradientTop:    "#9aa2a8",
		GradientBottom: "#c8ccce",
		Accent:         "#707a80",
		Text:           "#262c30",
	},
	"fog_dusk": {
		GradientTop:    "#343038",
		GradientBottom: "#787078",
		Accent:         "#b09888",
		Text:           "#ece8e8",
	},
	"fog_night": {
		GradientTop:    "#0a0c10",
		GradientBottom: "#282c30",
		Accent:         "#808c94",
		Text:           "#d0d6da",
	},
}

// GetPalette returns the gradient palette for a condition and time of day.
// Drizzle shares the rain palettes.
func GetPalette(condition WeatherCondition, tod TimeOfDay) Palette {
	if condition == ConditionDrizzle {
		condition = ConditionRain
	}
	if p, ok := palettes[string(condition)+"_"+string(tod)]; ok {
		return p
	}
	return DefaultPalette
}
