// Package fen converts between Forsyth-Edwards Notation text and the
// chesscore package's Position type. The core never parses or emits FEN
// text itself; it only consumes anything satisfying
// chesscore.PositionSource. Unlike the core's panic-on-precondition-
// violation style, a malformed FEN string is external input, so Parse
// reports an error instead of panicking.
package fen

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/corvidchess/chesscore"
)

// StartPos is the FEN string for the standard chess starting position.
const StartPos = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// Fields holds one parsed FEN record. It implements chesscore.PositionSource,
// so chesscore.NewPosition(f) builds a Position directly from it.
type Fields struct {
	mailbox        [64]chesscore.Piece
	side           chesscore.Colour
	wk, wq, bk, bq bool
	epTarget       chesscore.Square
	halfmoveClock  int
	fullmoveNumber int
}

func (f *Fields) PieceAt(sq chesscore.Square) chesscore.Piece { return f.mailbox[sq] }
func (f *Fields) SideToMove() chesscore.Colour                { return f.side }
func (f *Fields) CastlingRights() (wk, wq, bk, bq bool)       { return f.wk, f.wq, f.bk, f.bq }
func (f *Fields) EPTarget() chesscore.Square                  { return f.epTarget }
func (f *Fields) HalfmoveClock() int                          { return f.halfmoveClock }
func (f *Fields) FullmoveNumber() int                         { return f.fullmoveNumber }

// Parse parses a complete 6-field FEN string. It returns an error for any
// malformed field rather than panicking, since FEN text is untrusted input.
func Parse(s string) (*Fields, error) {
	fields := strings.Fields(s)
	if len(fields) != 6 {
		return nil, fmt.Errorf("fen: expected 6 space-separated fields, got %d", len(fields))
	}

	f := &Fields{}
	for sq := range f.mailbox {
		f.mailbox[sq] = chesscore.NoPiece
	}

	if err := parsePlacement(f, fields[0]); err != nil {
		return nil, err
	}

	switch fields[1] {
	case "w":
		f.side = chesscore.White
	case "b":
		f.side = chesscore.Black
	default:
		return nil, fmt.Errorf("fen: invalid active color %q", fields[1])
	}

	for _, c := range fields[2] {
		switch c {
		case 'K':
			f.wk = true
		case 'Q':
			f.wq = true
		case 'k':
			f.bk = true
		case 'q':
			f.bq = true
		case '-':
		default:
			return nil, fmt.Errorf("fen: invalid castling rights character %q", c)
		}
	}

	if fields[3] == "-" {
		f.epTarget = chesscore.NoSquare
	} else {
		sq, ok := squareFromString(fields[3])
		if !ok {
			return nil, fmt.Errorf("fen: invalid en passant square %q", fields[3])
		}
		f.epTarget = sq
	}

	halfmove, err := strconv.Atoi(fields[4])
	if err != nil {
		return nil, fmt.Errorf("fen: invalid halfmove clock %q: %w", fields[4], err)
	}
	f.halfmoveClock = halfmove

	fullmove, err := strconv.Atoi(fields[5])
	if err != nil {
		return nil, fmt.Errorf("fen: invalid fullmove number %q: %w", fields[5], err)
	}
	f.fullmoveNumber = fullmove

	return f, nil
}

func parsePlacement(f *Fields, placement string) error {
	ranks := strings.Split(placement, "/")
	if len(ranks) != 8 {
		return fmt.Errorf("fen: expected 8 ranks in piece placement, got %d", len(ranks))
	}

	for i, rankStr := range ranks {
		rank := 7 - i
		file := 0
		for _, c := range rankStr {
			if c >= '1' && c <= '8' {
				file += int(c - '0')
				continue
			}
			if file > 7 {
				return fmt.Errorf("fen: rank %d overflows 8 files", rank+1)
			}
			piece, ok := pieceFromSymbol(byte(c))
			if !ok {
				return fmt.Errorf("fen: invalid piece symbol %q", c)
			}
			f.mailbox[chesscore.NewSquare(rank, file)] = piece
			file++
		}
		if file != 8 {
			return fmt.Errorf("fen: rank %d does not account for all 8 files", rank+1)
		}
	}
	return nil
}

func pieceFromSymbol(c byte) (chesscore.Piece, bool) {
	for p, sym := range chesscore.PieceSymbols {
		if sym == c {
			return chesscore.Piece(p), true
		}
	}
	return chesscore.NoPiece, false
}

func squareFromString(s string) (chesscore.Square, bool) {
	for sq, str := range chesscore.SquareString {
		if str == s {
			return chesscore.Square(sq), true
		}
	}
	return chesscore.NoSquare, false
}

// Serialize renders pos as a FEN string.
func Serialize(pos *chesscore.Position) string {
	var b strings.Builder
	b.Grow(72)

	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			piece := pos.Board.PieceAt(chesscore.NewSquare(rank, file))
			if piece == chesscore.NoPiece {
				empty++
				continue
			}
			if empty > 0 {
				b.WriteByte('0' + byte(empty))
				empty = 0
			}
			b.WriteByte(chesscore.PieceSymbols[piece])
		}
		if empty > 0 {
			b.WriteByte('0' + byte(empty))
		}
		if rank > 0 {
			b.WriteByte('/')
		}
	}

	b.WriteByte(' ')
	if pos.SideToMove == chesscore.White {
		b.WriteByte('w')
	} else {
		b.WriteByte('b')
	}
	b.WriteByte(' ')

	wroteRight := false
	for _, right := range []struct {
		bit chesscore.CastlingRights
		sym byte
	}{
		{chesscore.CastleWK, 'K'},
		{chesscore.CastleWQ, 'Q'},
		{chesscore.CastleBK, 'k'},
		{chesscore.CastleBQ, 'q'},
	} {
		if pos.CastlingRights&right.bit != 0 {
			b.WriteByte(right.sym)
			wroteRight = true
		}
	}
	if !wroteRight {
		b.WriteByte('-')
	}
	b.WriteByte(' ')

	if pos.EPTarget == chesscore.NoSquare {
		b.WriteByte('-')
	} else {
		b.WriteString(chesscore.SquareString[pos.EPTarget])
	}
	b.WriteByte(' ')

	b.WriteString(strconv.Itoa(pos.HalfmoveClock))
	b.WriteByte(' ')

	fullmove := (pos.Ply-int(pos.SideToMove))/2 + 1
	b.WriteString(strconv.Itoa(fullmove))

	return b.String()
}
