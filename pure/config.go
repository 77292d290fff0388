package pure

// Policy selects which entry a full Table evicts.
type Policy int

const (
	// EvictArbitrary drops whichever entry the trie walk reaches first.
	// No ordering is guaranteed.
	EvictArbitrary Policy = iota

	// EvictLRU drops the least recently stored or loaded entry.
	EvictLRU
)

func (p Policy) String() string {
	switch p {
	case EvictLRU:
		return "lru"
	default:
		return "arbitrary"
	}
}

type Config struct {
	MaxSize int    // default: 0 (unbounded)
	Policy  Policy // default: EvictArbitrary
}

// NewConfig normalizes the table configuration. A non-positive maxSize
// means the table is unbounded; an unknown policy falls back to
// EvictArbitrary.
func NewConfig(maxSize int, policy Policy) Config {
	if maxSize < 0 {
		maxSize = 0
	}
	if policy != EvictLRU {
		policy = EvictArbitrary
	}
	return Config{
		MaxSize: maxSize,
		Policy:  policy,
	}
}

// Bounded reports whether the table has a maximum size.
func (c Config) Bounded() bool {
	return c.MaxSize > 0
}
