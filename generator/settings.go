package generator

// Settings control population sizes, round limits and scoring weights.
// Values come from a flat string-keyed map so callers can thread
// overrides straight through from flags; unrecognized keys are ignored
// and missing keys fall back to the defaults below.
type Settings struct {
	Seed               uint64
	MovesBetweenScores int
	NumChildren        int
	NumPerGeneration   int
	MaxRounds          int
	MinRounds          int

	WeightNonSquare     int
	WeightPropFilled    int
	WeightPropIntersect int
	WeightNumCycles     int
	WeightNumIntersect  int
	WeightAvgIntersect  int
	WeightWordsPlaced   int

	moveTypes []MoveType
}

// DefaultSettings returns the settings used when no overrides are given.
func DefaultSettings() Settings {
	return NewSettings(nil)
}

// NewSettings builds Settings from override values. Any key absent from
// the map keeps its default.
func NewSettings(overrides map[string]int) Settings {
	get := func(key string, fallback int) int {
		if v, ok := overrides[key]; ok {
			return v
		}
		return fallback
	}
	return Settings{
		Seed:                uint64(get("seed", 13)),
		MovesBetweenScores:  get("moves-between-scores", 4),
		NumChildren:         get("num-children", 15),
		NumPerGeneration:    get("num-per-gen", 15),
		MaxRounds:           get("max-rounds", 20),
		MinRounds:           get("min-rounds", 10),
		WeightNonSquare:     get("weight-non-square", 2),
		WeightPropFilled:    get("weight-prop-filled", 10),
		WeightPropIntersect: get("weight-prop-intersect", 500),
		WeightNumCycles:     get("weight-num-cycles", 1000),
		WeightNumIntersect:  get("weight-num-intersect", 100),
		WeightAvgIntersect:  get("weight-avg-intersect", 100),
		WeightWordsPlaced:   get("weight-words-placed", 10),
		moveTypes:           weightedMoveTypes(3, 1),
	}
}
