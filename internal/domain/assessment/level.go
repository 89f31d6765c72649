package assessment

type Level string

const (
	LevelBeginner     Level = "Beginner"
	LevelIntermediate Level = "Intermediate"
	LevelAdvanced     Level = "Advanced"
)

const (
	MinLevel = 1
	MaxLevel = 10
)

// BandFor maps a 1-10 self rating onto a level band: 1-3, 4-7, 8-10.
func BandFor(level int) Level {
	switch {
	case level <= 3:
		return LevelBeginner
	case level <= 7:
		return LevelIntermediate
	default:
		return LevelAdvanced
	}
}
