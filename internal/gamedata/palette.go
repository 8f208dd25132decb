package gamedata

// PaletteFile represents the structure of palette.json. Every entry is a hex
// colour string.
type PaletteFile struct {
	Background    string `json:"background"`
	Text          string `json:"text"`
	Default       string `json:"default"`
	WrongLetter   string `json:"wrongLetter"`
	WrongPosition string `json:"wrongPosition"`
	Correct       string `json:"correct"`
	Win           string `json:"win"`
	Info          string `json:"info"`
	Warning       string `json:"warning"`
}

// LoadPalette loads the embedded tile palette.
func LoadPalette() (PaletteFile, error) {
	return Load[PaletteFile]("palette.json")
}

// MustLoadPalette loads the embedded tile palette, panicking on error.
func MustLoadPalette() PaletteFile {
	return MustLoad[PaletteFile]("palette.json")
}
