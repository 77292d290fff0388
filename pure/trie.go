package pure

import (
	"slices"
	"sync"

	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru"
	"github.com/on-the-ground/funcore/internal/key"
	"github.com/on-the-ground/funcore/log"
	"go.uber.org/zap"
)

// Table is a trie keyed by argument tuples. Each argument is one level of
// the trie, so tuples of different lengths never collide.
//
// A bounded table never holds more than Config.MaxSize entries: storing a
// new tuple into a full table evicts one entry first.
type Table[O any] struct {
	ID string

	mu      sync.Mutex
	root    *node[O]
	size    int
	nextSeq uint64
	config  Config
	recency *lru.Cache // entry seq -> key path, EvictLRU only
}

type node[O any] struct {
	children map[any]*node[O]
	leaf     *entry[O]
}

type entry[O any] struct {
	seq   uint64
	value O
}

func newNode[O any]() *node[O] {
	return &node[O]{children: map[any]*node[O]{}}
}

// NewTable creates an empty table.
func NewTable[O any](config Config) *Table[O] {
	config = NewConfig(config.MaxSize, config.Policy)
	t := &Table[O]{
		ID:     uuid.New().String(),
		root:   newNode[O](),
		config: config,
	}
	if config.Bounded() && config.Policy == EvictLRU {
		// sized above MaxSize: the table evicts before the cache would
		recency, err := lru.New(config.MaxSize + 1)
		if err != nil {
			panic(err)
		}
		t.recency = recency
	}
	return t
}

// Load returns the value stored for args.
func (t *Table[O]) Load(args []any) (O, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	n := t.root
	for _, k := range key.All(args) {
		child, ok := n.children[k]
		if !ok {
			var zero O
			return zero, false
		}
		n = child
	}
	if n.leaf == nil {
		var zero O
		return zero, false
	}
	if t.recency != nil {
		t.recency.Get(n.leaf.seq)
	}
	return n.leaf.value, true
}

// Store records value for args, replacing a previous value for the same
// args. Storing a new tuple into a full table evicts one entry first.
func (t *Table[O]) Store(args []any, value O) {
	t.mu.Lock()
	defer t.mu.Unlock()

	path := key.All(args)
	if n := t.find(path); n != nil && n.leaf != nil {
		n.leaf.value = value
		if t.recency != nil {
			t.recency.Get(n.leaf.seq)
		}
		return
	}

	if t.config.Bounded() && t.size >= t.config.MaxSize {
		t.evict()
	}

	n := t.root
	for _, k := range path {
		child, ok := n.children[k]
		if !ok {
			child = newNode[O]()
			n.children[k] = child
		}
		n = child
	}
	t.nextSeq++
	n.leaf = &entry[O]{seq: t.nextSeq, value: value}
	t.size++
	if t.recency != nil {
		t.recency.Add(n.leaf.seq, path)
	}
}

// Len is the number of stored entries.
func (t *Table[O]) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.size
}

func (t *Table[O]) find(path []any) *node[O] {
	n := t.root
	for _, k := range path {
		child, ok := n.children[k]
		if !ok {
			return nil
		}
		n = child
	}
	return n
}

func (t *Table[O]) evict() {
	var path []any
	switch {
	case t.recency != nil:
		seq, raw, ok := t.recency.GetOldest()
		if !ok {
			return
		}
		t.recency.Remove(seq)
		path = raw.([]any)
	default:
		var ok bool
		if path, ok = anyLeaf(t.root, nil); !ok {
			return
		}
	}

	t.remove(path)
	log.Logger().Debug("evicted memo entry",
		zap.String("table", t.ID),
		zap.Stringer("policy", t.config.Policy),
		zap.Int("size", t.size),
	)
}

// anyLeaf returns the path of the first leaf reached. Map iteration order
// makes the choice arbitrary.
func anyLeaf[O any](n *node[O], prefix []any) ([]any, bool) {
	if n.leaf != nil {
		return prefix, true
	}
	for k, child := range n.children {
		if path, ok := anyLeaf(child, append(slices.Clip(prefix), k)); ok {
			return path, true
		}
	}
	return nil, false
}

// remove deletes the entry at path and prunes the branches left empty.
func (t *Table[O]) remove(path []any) {
	trail := make([]*node[O], 0, len(path)+1)
	n := t.root
	trail = append(trail, n)
	for _, k := range path {
		child, ok := n.children[k]
		if !ok {
			return
		}
		n = child
		trail = append(trail, n)
	}
	if n.leaf == nil {
		return
	}
	n.leaf = nil
	t.size--

	for i := len(path) - 1; i >= 0; i-- {
		child := trail[i+1]
		if child.leaf != nil || len(child.children) > 0 {
			break
		}
		delete(trail[i].children, path[i])
	}
}
