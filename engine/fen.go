// fen.go implements from_fen/to_fen (spec §6): six space-separated fields,
// ranks 8 down to 1, exactly eight ranks required. Grounded on zurichess'
// engine/convert.go ParsePiecePlacement/FormatPiecePlacement and the
// castling/en-passant field parsers alongside it.

package engine

import (
	"fmt"
	"strconv"
	"strings"
)

// InitialFEN is the standard starting position in FEN.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// FromFEN parses a FEN string into a fresh Board. On any parse error no
// partially constructed position is returned (spec §7).
func FromFEN(fen string) (*Board, error) {
	fields := strings.Fields(fen)
	if len(fields) != 6 {
		return nil, fmt.Errorf("engine: FEN must have 6 fields, got %d", len(fields))
	}

	b := NewBoard()
	if err := parsePlacement(b, fields[0]); err != nil {
		return nil, err
	}

	switch fields[1] {
	case "w":
		b.ActiveColor = White
	case "b":
		b.ActiveColor = Black
	default:
		return nil, fmt.Errorf("engine: invalid active color %q", fields[1])
	}

	rights, err := parseCastling(fields[2])
	if err != nil {
		return nil, err
	}
	b.Castling = rights

	epFile, err := parseEnPassant(fields[3])
	if err != nil {
		return nil, err
	}
	b.EnPassantFile = epFile

	halfmove, err := strconv.Atoi(fields[4])
	if err != nil {
		return nil, fmt.Errorf("engine: invalid halfmove clock %q", fields[4])
	}
	if _, err := strconv.Atoi(fields[5]); err != nil {
		return nil, fmt.Errorf("engine: invalid fullmove number %q", fields[5])
	}
	// The halfmove-clock field mirrors the engine's internal ply counter
	// directly (ToFEN's inverse); the fullmove field is derived from it
	// rather than tracked separately, per spec §6.
	b.Halfmove = halfmove

	b.seed()
	return b, nil
}

func parsePlacement(b *Board, field string) error {
	ranks := strings.Split(field, "/")
	if len(ranks) != 8 {
		return fmt.Errorf("engine: piece placement must have 8 ranks, got %d", len(ranks))
	}

	for i := 0; i < 8; i++ {
		rank := 7 - i
		rankStr := ranks[i]
		file := 0
		for j := 0; j < len(rankStr); j++ {
			ch := rankStr[j]
			if ch >= '1' && ch <= '8' {
				file += int(ch - '0')
				continue
			}
			kind, ok := symbolKind[lower(ch)]
			if !ok {
				return fmt.Errorf("engine: invalid piece letter %q", ch)
			}
			if file >= 8 {
				return fmt.Errorf("engine: rank %d overflows 8 files", rank+1)
			}
			color := Black
			if ch == upper(ch) {
				color = White
			}
			b.put(RankFile(rank, file), ColorKind(color, kind))
			file++
		}
		if file != 8 {
			return fmt.Errorf("engine: rank %d has %d files, want 8", rank+1, file)
		}
	}
	return nil
}

func lower(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}

func upper(c byte) byte {
	if c >= 'a' && c <= 'z' {
		return c - ('a' - 'A')
	}
	return c
}

func parseCastling(field string) (CastlingRights, error) {
	if field == "-" {
		return 0, nil
	}
	var rights CastlingRights
	for _, ch := range field {
		switch ch {
		case 'K':
			rights |= WhiteKingSide
		case 'Q':
			rights |= WhiteQueenSide
		case 'k':
			rights |= BlackKingSide
		case 'q':
			rights |= BlackQueenSide
		default:
			return 0, fmt.Errorf("engine: invalid castling availability %q", field)
		}
	}
	return rights, nil
}

func parseEnPassant(field string) (int, error) {
	if field == "-" {
		return -1, nil
	}
	if len(field) < 1 || field[0] < 'a' || field[0] > 'h' {
		return -1, fmt.Errorf("engine: invalid en-passant target %q", field)
	}
	return int(field[0] - 'a'), nil
}

// ToFEN emits the board in FEN, per spec §6: the halfmove-clock field is
// the engine's internal ply counter directly, and the fullmove field is
// Halfmove/2 + 1 — the fifty-move-rule clock isn't tracked separately.
func (b *Board) ToFEN() string {
	var sb strings.Builder
	sb.WriteString(formatPlacement(b))
	sb.WriteByte(' ')
	sb.WriteString(b.ActiveColor.String())
	sb.WriteByte(' ')
	sb.WriteString(formatCastling(b.Castling))
	sb.WriteByte(' ')
	sb.WriteString(formatEnPassant(b))
	sb.WriteByte(' ')

	sb.WriteString(strconv.Itoa(b.Halfmove))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(b.Halfmove/2 + 1))
	return sb.String()
}

func formatPlacement(b *Board) string {
	var sb strings.Builder
	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			p := b.Mailbox[RankFile(rank, file)]
			if p.IsEmpty() {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteByte(p.Symbol())
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}
	return sb.String()
}

func formatCastling(rights CastlingRights) string {
	if rights == 0 {
		return "-"
	}
	var sb strings.Builder
	if rights&WhiteKingSide != 0 {
		sb.WriteByte('K')
	}
	if rights&WhiteQueenSide != 0 {
		sb.WriteByte('Q')
	}
	if rights&BlackKingSide != 0 {
		sb.WriteByte('k')
	}
	if rights&BlackQueenSide != 0 {
		sb.WriteByte('q')
	}
	return sb.String()
}

func formatEnPassant(b *Board) string {
	if b.EnPassantFile < 0 {
		return "-"
	}
	rank := 5
	if b.ActiveColor == Black {
		rank = 2
	}
	return RankFile(rank, b.EnPassantFile).String()
}
