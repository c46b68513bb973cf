package hashing

import (
	"math/rand"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
)

// Zobrist keys, indexed by colour and kind, then by square (col*8 + row).
var (
	zobristPiece     [3][7][64]uint64
	zobristCastle    [16]uint64
	zobristEnPassant [chess.BoardSize]uint64
	zobristSide      uint64
)

func init() {
	// Fixed seed so hashes are stable between runs.
	rnd := rand.New(rand.NewSource(0xC0DE))
	for c := chess.White; c <= chess.Black; c++ {
		for k := chess.Pawn; k <= chess.King; k++ {
			for sq := 0; sq < 64; sq++ {
				zobristPiece[c][k][sq] = rnd.Uint64()
			}
		}
	}
	for cr := range zobristCastle {
		zobristCastle[cr] = rnd.Uint64()
	}
	for f := range zobristEnPassant {
		zobristEnPassant[f] = rnd.Uint64()
	}
	zobristSide = rnd.Uint64()
}

// Position returns the Zobrist hash of the engine's position: pieces, side
// to move, castling rights and any en passant target.
func Position(e *engine.Engine) uint64 {
	var key uint64

	board := e.Board()
	for col := 0; col < chess.BoardSize; col++ {
		for row := 0; row < chess.BoardSize; row++ {
			p := board.Get(chess.At(col, row))
			if p.IsEmpty() {
				continue
			}
			key ^= zobristPiece[p.Colour][p.Kind][col*chess.BoardSize+row]
		}
	}

	if e.CurrentPlayer() == chess.Black {
		key ^= zobristSide
	}
	key ^= zobristCastle[e.CastlingRights()]
	if target, ok := e.EnPassantTarget(); ok {
		key ^= zobristEnPassant[target.Col]
	}
	return key
}

// WeakHash packs the material count of each colour and kind into one value,
// four bits per piece type. Cheap to compute and used as a second check
// behind the Zobrist hash.
func WeakHash(board chess.Board) uint64 {
	var counts [3][7]uint64
	for col := 0; col < chess.BoardSize; col++ {
		for row := 0; row < chess.BoardSize; row++ {
			p := board.Get(chess.At(col, row))
			if !p.IsEmpty() {
				counts[p.Colour][p.Kind]++
			}
		}
	}

	var hash uint64
	for c := chess.White; c <= chess.Black; c++ {
		for k := chess.Pawn; k <= chess.King; k++ {
			hash = hash<<4 | counts[c][k]&0xF
		}
	}
	return hash
}
