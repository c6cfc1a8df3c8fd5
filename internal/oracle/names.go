package oracle

// NamedColor is one entry of the built-in naming table: a display name
// and its reference sRGB value.
type NamedColor struct {
	Name    string
	R, G, B uint8
}

// namedColors is the built-in naming table used by the Local oracle. It
// is a compact blend of CSS extended names and common crayon names,
// spread around the full wheel so every hue has a plausible nearest
// neighbor, plus the achromatic anchors.
var namedColors = []NamedColor{
	// Reds
	{"Red", 255, 0, 0},
	{"Crimson", 220, 20, 60},
	{"Fire Brick", 178, 34, 34},
	{"Indian Red", 205, 92, 92},
	{"Light Coral", 240, 128, 128},
	{"Salmon", 250, 128, 114},
	{"Tomato", 255, 99, 71},
	{"Maroon", 128, 0, 0},

	// Oranges and browns
	{"Orange Red", 255, 69, 0},
	{"Coral", 255, 127, 80},
	{"Dark Orange", 255, 140, 0},
	{"Orange", 255, 165, 0},
	{"Chocolate", 210, 105, 30},
	{"Peru", 205, 133, 63},
	{"Sandy Brown", 244, 164, 96},
	{"Saddle Brown", 139, 69, 19},
	{"Sienna", 160, 82, 45},

	// Yellows
	{"Gold", 255, 215, 0},
	{"Goldenrod", 218, 165, 32},
	{"Dark Goldenrod", 184, 134, 11},
	{"Yellow", 255, 255, 0},
	{"Khaki", 240, 230, 140},
	{"Dark Khaki", 189, 183, 107},
	{"Olive", 128, 128, 0},

	// Greens
	{"Yellow Green", 154, 205, 50},
	{"Chartreuse", 127, 255, 0},
	{"Lawn Green", 124, 252, 0},
	{"Green Yellow", 173, 255, 47},
	{"Olive Drab", 107, 142, 35},
	{"Dark Olive Green", 85, 107, 47},
	{"Lime", 0, 255, 0},
	{"Lime Green", 50, 205, 50},
	{"Forest Green", 34, 139, 34},
	{"Green", 0, 128, 0},
	{"Dark Green", 0, 100, 0},
	{"Sea Green", 46, 139, 87},
	{"Medium Sea Green", 60, 179, 113},
	{"Spring Green", 0, 255, 127},
	{"Medium Spring Green", 0, 250, 154},
	{"Screamin Green", 118, 255, 122},

	// Cyans
	{"Aquamarine", 127, 255, 212},
	{"Turquoise", 64, 224, 208},
	{"Medium Turquoise", 72, 209, 204},
	{"Light Sea Green", 32, 178, 170},
	{"Teal", 0, 128, 128},
	{"Dark Cyan", 0, 139, 139},
	{"Cyan", 0, 255, 255},
	{"Cadet Blue", 95, 158, 160},

	// Blues
	{"Deep Sky Blue", 0, 191, 255},
	{"Dodger Blue", 30, 144, 255},
	{"Cornflower Blue", 100, 149, 237},
	{"Steel Blue", 70, 130, 180},
	{"Royal Blue", 65, 105, 225},
	{"Blue", 0, 0, 255},
	{"Medium Blue", 0, 0, 205},
	{"Navy", 0, 0, 128},
	{"Midnight Blue", 25, 25, 112},
	{"Slate Blue", 106, 90, 205},

	// Purples
	{"Blue Violet", 138, 43, 226},
	{"Indigo", 75, 0, 130},
	{"Dark Violet", 148, 0, 211},
	{"Dark Orchid", 153, 50, 204},
	{"Medium Orchid", 186, 85, 211},
	{"Purple", 128, 0, 128},
	{"Dark Magenta", 139, 0, 139},
	{"Magenta", 255, 0, 255},
	{"Orchid", 218, 112, 214},
	{"Violet", 238, 130, 238},
	{"Plum", 221, 160, 221},

	// Pinks
	{"Medium Violet Red", 199, 21, 133},
	{"Deep Pink", 255, 20, 147},
	{"Hot Pink", 255, 105, 180},
	{"Pale Violet Red", 219, 112, 147},
	{"Pink", 255, 192, 203},
	{"Light Pink", 255, 182, 193},

	// Achromatics
	{"White", 255, 255, 255},
	{"Gainsboro", 220, 220, 220},
	{"Light Gray", 211, 211, 211},
	{"Silver", 192, 192, 192},
	{"Gray", 128, 128, 128},
	{"Dim Gray", 105, 105, 105},
	{"Dark Slate Gray", 47, 79, 79},
	{"Black", 0, 0, 0},
}
