package perft

import (
	"testing"

	"github.com/benstockil/chesscore/engine"
)

// Node counts below depth 4 are taken from the teacher's own known-good
// perft table (startpos/kiwipete/duplain), which in turn match the
// published reference counts at https://www.chessprogramming.org/Perft_Results.
func TestStartPosition(t *testing.T) {
	cases := []struct {
		depth int
		want  uint64
	}{
		{0, 1},
		{1, 20},
		{2, 400},
		{3, 8902},
	}
	for _, c := range cases {
		b := engine.Initial()
		got := Count(b, c.depth)
		if got != c.want {
			t.Errorf("depth %d: got %d nodes, want %d", c.depth, got, c.want)
		}
		if b.ToFEN() != engine.InitialFEN {
			t.Errorf("depth %d: board not restored, got FEN %q", c.depth, b.ToFEN())
		}
	}
}

func TestKiwipete(t *testing.T) {
	const fen = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"
	cases := []struct {
		depth int
		want  uint64
	}{
		{1, 48},
		{2, 2039},
		{3, 97862},
	}
	for _, c := range cases {
		b, err := engine.FromFEN(fen)
		if err != nil {
			t.Fatalf("FromFEN: %v", err)
		}
		got := Count(b, c.depth)
		if got != c.want {
			t.Errorf("depth %d: got %d nodes, want %d", c.depth, got, c.want)
		}
	}
}

func TestDuplain(t *testing.T) {
	const fen = "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1"
	cases := []struct {
		depth int
		want  uint64
	}{
		{1, 14},
		{2, 191},
		{3, 2812},
	}
	for _, c := range cases {
		b, err := engine.FromFEN(fen)
		if err != nil {
			t.Fatalf("FromFEN: %v", err)
		}
		got := Count(b, c.depth)
		if got != c.want {
			t.Errorf("depth %d: got %d nodes, want %d", c.depth, got, c.want)
		}
	}
}
