package sortkit

// Algorithm names one of the sorters Ints can run
type Algorithm string

// Algorithms understood by Ints
const (
	AlgorithmInsertion Algorithm = "insertion"
	AlgorithmMerge     Algorithm = "merge"
	AlgorithmQuick     Algorithm = "quick"
	AlgorithmHeap      Algorithm = "heap"
	AlgorithmCounting  Algorithm = "counting"
	AlgorithmRadix     Algorithm = "radix"
	AlgorithmBucket    Algorithm = "bucket"
)

// Algorithms returns every Algorithm in a fixed order
func Algorithms() []Algorithm {
	return []Algorithm{
		AlgorithmInsertion,
		AlgorithmMerge,
		AlgorithmQuick,
		AlgorithmHeap,
		AlgorithmCounting,
		AlgorithmRadix,
		AlgorithmBucket,
	}
}

// Config holds configuration settings for Ints
type Config struct {
	Algorithm  Algorithm // sorter to run
	Descending bool      // largest value first
	MaxKey     int       // counting sort exclusive key bound, 0 to derive it from the input
	Scale      int       // radix sort base
	Digits     int       // radix sort digit count, 0 to derive it from the input
	KeyLimit   int       // largest counting table Ints allocates, for counting sort keys and radix scale
}

// DefaultConfig returns the default configuration options used if none provided
func DefaultConfig() *Config {
	return &Config{
		Algorithm:  AlgorithmMerge,
		Descending: false,
		MaxKey:     0,
		Scale:      10,
		Digits:     0,
		KeyLimit:   1 << 24,
	}
}

// mergeConfig returns a copy of c with any values not set replaced by the defaults
func mergeConfig(c *Config) *Config {
	d := DefaultConfig()
	if c == nil {
		return d
	}
	merged := *c
	if merged.Algorithm == "" {
		merged.Algorithm = d.Algorithm
	}
	if merged.MaxKey < 0 {
		merged.MaxKey = d.MaxKey
	}
	if merged.Scale <= 1 {
		merged.Scale = d.Scale
	}
	if merged.Digits < 0 {
		merged.Digits = d.Digits
	}
	if merged.KeyLimit <= 0 {
		merged.KeyLimit = d.KeyLimit
	}
	return &merged
}
