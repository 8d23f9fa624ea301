package bench

// benchRNGSeed keeps every benchmark session reproducible across runs.
const benchRNGSeed = 42

// SeedCase is one categorized seed of the benchmark corpus.
type SeedCase struct {
	Seed     string `json:"seed"`
	Category string `json:"category"`
}

// Config is one engine configuration exercised per seed.
type Config struct {
	Novelty   float64 `json:"novelty"`
	Depth     int     `json:"depth"`
	Branching int     `json:"branching"`
	RNGSeed   int64   `json:"rng_seed"`
}

// Corpus returns the fixed benchmark seeds. Categories cover the theme
// rules of the Ground transform plus a mundane control.
func Corpus() []SeedCase {
	return []SeedCase{
		{Seed: "Seed Bearer", Category: "identity"},
		{Seed: "stuck in a loop again", Category: "loop"},
		{Seed: "a moment of fear before the talk", Category: "fear"},
		{Seed: "Echoholder / Zahaviel / Fang", Category: "symbolic"},
		{Seed: "I am strong and I move forward", Category: "inversion"},
		{Seed: "the mirror holds a quiet echo", Category: "reflection"},
		{Seed: "grocery list for tuesday", Category: "mundane"},
	}
}

// Configs returns the three engine configurations run for every seed.
func Configs() []Config {
	return []Config{
		{Novelty: 0.0, Depth: 4, Branching: 2, RNGSeed: benchRNGSeed},
		{Novelty: 0.2, Depth: 4, Branching: 3, RNGSeed: benchRNGSeed},
		{Novelty: 0.35, Depth: 6, Branching: 3, RNGSeed: benchRNGSeed},
	}
}
