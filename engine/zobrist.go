package engine

// Zobrist key tables, generated once at process start with a fixed seed
// so keys are reproducible across runs.
var zobrist struct {
	piece    [ColorArraySize][FigureArraySize][64]uint64
	castling [16]uint64
	epFile   [9]uint64
	side     uint64
}

const zobristSeed uint64 = 0x9e3779b97f4a7c15

// splitmix64 is the generator used to fill every Zobrist table. Its
// output stream is deterministic for a fixed seed, which is the whole
// point: two independent builds of the same position must hash the same.
func splitmix64(x *uint64) uint64 {
	*x += 0x9e3779b97f4a7c15
	z := *x
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}

func init() {
	x := zobristSeed
	for c := Color(0); c < ColorArraySize; c++ {
		for f := Figure(0); f < Figure(FigureArraySize); f++ {
			for sq := Square(0); sq < 64; sq++ {
				zobrist.piece[c][f][sq] = splitmix64(&x)
			}
		}
	}
	for i := range zobrist.castling {
		zobrist.castling[i] = splitmix64(&x)
	}
	for i := range zobrist.epFile {
		zobrist.epFile[i] = splitmix64(&x)
	}
	zobrist.side = splitmix64(&x)
}

func pieceKey(c Color, f Figure, sq Square) uint64 { return zobrist.piece[c][f][sq] }
func castlingKey(cr Castling) uint64               { return zobrist.castling[cr&15] }
func sideKey() uint64                              { return zobrist.side }

func epFileKey(sq Square) uint64 {
	if sq == NoSquare {
		return zobrist.epFile[8]
	}
	return zobrist.epFile[sq.File()]
}

// ComputeKey computes a position's Zobrist key from scratch. Position
// normally maintains the key incrementally in DoMove/UndoMove; this is
// used to build the initial key and to sanity-check the incremental one
// in tests.
func ComputeKey(pos *Position) uint64 {
	var k uint64
	for c := Color(0); c < ColorArraySize; c++ {
		for f := Figure(0); f < Figure(FigureArraySize); f++ {
			bb := pos.pieces[c][f]
			for bb != 0 {
				sq := bb.Pop()
				k ^= pieceKey(c, f, sq)
			}
		}
	}
	if pos.SideToMove == Black {
		k ^= sideKey()
	}
	k ^= castlingKey(pos.CastlingRights)
	k ^= epFileKey(pos.EnPassant)
	return k
}
