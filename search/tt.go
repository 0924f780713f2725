// Package search implements the transposition table and the
// iterative-deepening negamax search built on top of engine and eval.
package search

import "github.com/halvorsen/negafish/engine"

// Bound records what kind of score a TT entry holds, relative to the
// alpha/beta window the search ran with when the entry was stored.
type Bound uint8

const (
	BoundEmpty Bound = iota
	BoundExact
	BoundLower
	BoundUpper
)

// clusterSize is how many entries share an index; a cluster gives the
// replacement policy room to keep a deep entry even when a shallow
// probe collides with it on the same index.
const clusterSize = 4

type ttEntry struct {
	key   uint64
	score int32
	depth int16
	bound Bound
	gen   uint8
	best  engine.Move
}

func (e *ttEntry) matches(key uint64) bool { return e.bound != BoundEmpty && e.key == key }

// mateScoreCutoff is the absolute score threshold above which a value is
// considered a mate score and needs ply-relative adjustment before it is
// stored in (or read from) the table — see mate in search.go.
const mateScoreCutoff = 800000

func isMateScore(s int) bool { return s > mateScoreCutoff || s < -mateScoreCutoff }

// toTTScore converts a ply-relative mate score (computed as distance
// from the root) into the TT's position-relative form so the same entry
// is valid no matter which ply it is probed from.
func toTTScore(score, ply int) int {
	if !isMateScore(score) {
		return score
	}
	if score > 0 {
		return score + ply
	}
	return score - ply
}

// fromTTScore reverses toTTScore when an entry is read back at ply.
func fromTTScore(score, ply int) int {
	if !isMateScore(score) {
		return score
	}
	if score > 0 {
		return score - ply
	}
	return score + ply
}

func ageOf(curGen, entryGen uint8) int {
	return int(uint8(curGen - entryGen))
}

// TranspositionTable is a fixed-size, 4-way clustered hash table caching
// search results across the move tree. Entries age out by generation
// rather than being cleared between searches.
type TranspositionTable struct {
	table []ttEntry
	mask  uint64
	gen   uint8
}

// NewTranspositionTable allocates a table sized to approximately sizeMB
// megabytes, rounded down to the nearest power-of-two cluster count.
func NewTranspositionTable(sizeMB int) *TranspositionTable {
	tt := &TranspositionTable{}
	tt.Resize(sizeMB)
	return tt
}

func (tt *TranspositionTable) Resize(sizeMB int) {
	if sizeMB < 1 {
		sizeMB = 1
	}
	entrySize := uint64(24) // key(8)+score(4)+depth(2)+bound(1)+gen(1)+best(4), rounded
	bytes := uint64(sizeMB) * 1024 * 1024
	clusters := bytes / (entrySize * clusterSize)
	if clusters < 1 {
		clusters = 1
	}
	pow2 := uint64(1)
	for pow2*2 <= clusters {
		pow2 <<= 1
	}
	tt.table = make([]ttEntry, pow2*clusterSize)
	tt.mask = pow2 - 1
	tt.gen = 1
}

// NewSearch bumps the table's generation so entries from prior searches
// age out under the replacement policy instead of being wiped.
func (tt *TranspositionTable) NewSearch() {
	tt.gen++
	if tt.gen == 0 {
		tt.gen = 1
	}
}

func (tt *TranspositionTable) clusterIndex(key uint64) uint64 {
	return (key & tt.mask) * clusterSize
}

// Probe returns the entry matching key in its cluster, if any.
func (tt *TranspositionTable) Probe(key uint64) (ttEntry, bool) {
	if len(tt.table) == 0 {
		return ttEntry{}, false
	}
	base := tt.clusterIndex(key)
	for i := uint64(0); i < clusterSize; i++ {
		e := &tt.table[base+i]
		if e.matches(key) {
			return *e, true
		}
	}
	return ttEntry{}, false
}

// Store inserts a search result, preferring (in order): updating an
// existing entry for the same key, filling an empty slot, or evicting
// the cluster's lowest-value entry (victim_value = depth - 4*age).
func (tt *TranspositionTable) Store(key uint64, depth int, bound Bound, score int, best engine.Move, ply int) {
	if len(tt.table) == 0 {
		return
	}
	base := tt.clusterIndex(key)
	cluster := tt.table[base : base+clusterSize]

	for i := range cluster {
		e := &cluster[i]
		if !e.matches(key) {
			continue
		}
		stale := e.gen != tt.gen
		if stale || depth >= int(e.depth) {
			e.key = key
			e.depth = int16(depth)
			e.bound = bound
			e.score = int32(toTTScore(score, ply))
			e.best = best
			e.gen = tt.gen
		} else if e.best == engine.NoMove && best != engine.NoMove {
			e.best = best
		}
		return
	}

	for i := range cluster {
		e := &cluster[i]
		if e.bound == BoundEmpty {
			e.key = key
			e.depth = int16(depth)
			e.bound = bound
			e.score = int32(toTTScore(score, ply))
			e.best = best
			e.gen = tt.gen
			return
		}
	}

	victim := 0
	worst := 1000000
	for i := range cluster {
		age := ageOf(tt.gen, cluster[i].gen)
		value := int(cluster[i].depth) - 4*age
		if value < worst {
			worst = value
			victim = i
		}
	}
	e := &cluster[victim]
	e.key = key
	e.depth = int16(depth)
	e.bound = bound
	e.score = int32(toTTScore(score, ply))
	e.best = best
	e.gen = tt.gen
}
