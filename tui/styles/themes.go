package styles

// Themes holds the built-in Base16 color schemes, keyed by slug.
var Themes = map[string]Theme{
	"solarized-dark": {
		Name:   "Solarized Dark",
		Base00: "#002b36",
		Base01: "#073642",
		Base02: "#586e75",
		Base03: "#657b83",
		Base04: "#839496",
		Base05: "#93a1a1",
		Base06: "#eee8d5",
		Base07: "#fdf6e3",
		Base08: "#dc322f",
		Base09: "#cb4b16",
		Base0A: "#b58900",
		Base0B: "#859900",
		Base0C: "#2aa198",
		Base0D: "#268bd2",
		Base0E: "#6c71c4",
		Base0F: "#d33682",
	},
	"solarized-light": {
		Name:   "Solarized Light",
		Base00: "#fdf6e3",
		Base01: "#eee8d5",
		Base02: "#93a1a1",
		Base03: "#839496",
		Base04: "#657b83",
		Base05: "#586e75",
		Base06: "#073642",
		Base07: "#002b36",
		Base08: "#dc322f",
		Base09: "#cb4b16",
		Base0A: "#b58900",
		Base0B: "#859900",
		Base0C: "#2aa198",
		Base0D: "#268bd2",
		Base0E: "#6c71c4",
		Base0F: "#d33682",
	},
	"dracula": {
		Name:   "Dracula",
		Base00: "#282a36",
		Base01: "#363447",
		Base02: "#44475a",
		Base03: "#6272a4",
		Base04: "#9ea8c7",
		Base05: "#f8f8f2",
		Base06: "#f0f1f4",
		Base07: "#ffffff",
		Base08: "#ff5555",
		Base09: "#ffb86c",
		Base0A: "#f1fa8c",
		Base0B: "#50fa7b",
		Base0C: "#8be9fd",
		Base0D: "#80bfff",
		Base0E: "#ff79c6",
		Base0F: "#bd93f9",
	},
	"gruvbox-dark": {
		Name:   "Gruvbox Dark",
		Base00: "#282828",
		Base01: "#3c3836",
		Base02: "#504945",
		Base03: "#665c54",
		Base04: "#bdae93",
		Base05: "#d5c4a1",
		Base06: "#ebdbb2",
		Base07: "#fbf1c7",
		Base08: "#fb4934",
		Base09: "#fe8019",
		Base0A: "#fabd2f",
		Base0B: "#b8bb26",
		Base0C: "#8ec07c",
		Base0D: "#83a598",
		Base0E: "#d3869b",
		Base0F: "#d65d0e",
	},
	"nord": {
		Name:   "Nord",
		Base00: "#2e3440",
		Base01: "#3b4252",
		Base02: "#434c5e",
		Base03: "#4c566a",
		Base04: "#d8dee9",
		Base05: "#e5e9f0",
		Base06: "#eceff4",
		Base07: "#8fbcbb",
		Base08: "#bf616a",
		Base09: "#d08770",
		Base0A: "#ebcb8b",
		Base0B: "#a3be8c",
		Base0C: "#88c0d0",
		Base0D: "#81a1c1",
		Base0E: "#b48ead",
		Base0F: "#5e81ac",
	},
	"tokyo-night": {
		Name:   "Tokyo Night",
		Base00: "#1a1b26",
		Base01: "#16161e",
		Base02: "#2f3549",
		Base03: "#444b6a",
		Base04: "#787c99",
		Base05: "#a9b1d6",
		Base06: "#cbccd1",
		Base07: "#d5d6db",
		Base08: "#c0caf5",
		Base09: "#a9b1d6",
		Base0A: "#0db9d7",
		Base0B: "#9ece6a",
		Base0C: "#b4f9f8",
		Base0D: "#2ac3de",
		Base0E: "#bb9af7",
		Base0F: "#c0caf5",
	},
	"catppuccin-mocha": {
		Name:   "Catppuccin Mocha",
		Base00: "#1e1e2e",
		Base01: "#181825",
		Base02: "#313244",
		Base03: "#45475a",
		Base04: "#585b70",
		Base05: "#cdd6f4",
		Base06: "#f5e0dc",
		Base07: "#b4befe",
		Base08: "#f38ba8",
		Base09: "#fab387",
		Base0A: "#f9e2af",
		Base0B: "#a6e3a1",
		Base0C: "#94e2d5",
		Base0D: "#89b4fa",
		Base0E: "#cba6f7",
		Base0F: "#f2cdcd",
	},
	"monokai": {
		Name:   "Monokai",
		Base00: "#272822",
		Base01: "#383830",
		Base02: "#49483e",
		Base03: "#75715e",
		Base04: "#a59f85",
		Base05: "#f8f8f2",
		Base06: "#f5f4f1",
		Base07: "#f9f8f5",
		Base08: "#f92672",
		Base09: "#fd971f",
		Base0A: "#f4bf75",
		Base0B: "#a6e22e",
		Base0C: "#a1efe4",
		Base0D: "#66d9ef",
		Base0E: "#ae81ff",
		Base0F: "#cc6633",
	},
}
