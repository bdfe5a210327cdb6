package mapping

// progressions holds a characteristic chord progression per mode, in roman
// numeral notation relative to the key.
var progressions = map[Scale][]string{
	Ionian:     {"I", "IV", "V", "I"},
	Aeolian:    {"i", "VI", "VII", "i"},
	Dorian:     {"i", "IV", "i", "VII"},
	Phrygian:   {"i", "II", "VII", "i"},
	Lydian:     {"I", "II", "VII", "I"},
	Mixolydian: {"I", "VII", "IV", "I"},
	Locrian:    {"i", "VII", "VI", "i"},
	WholeTone:  {"I+", "III+", "V+", "VII+"},
}

// ChordProgression returns the progression for a mode. Unknown modes fall
// back to the ionian progression.
func ChordProgression(scale Scale) []string {
	p, exists := progressions[scale]
	if !exists {
		p = progressions[Ionian]
	}
	out := make([]string, len(p))
	copy(out, p)
	return out
}
