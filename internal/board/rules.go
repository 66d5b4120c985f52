// File internal/board/rules.go
package board

// ---------------- helpers -----------------

func onBoard(r, c int8) bool { return r >= 0 && r < Size && c >= 0 && c < Size }

// bracket returns the length of the run of opponent discs that starts next to
// (r,c) along d and is closed by a disc of the side to move. 0 means no capture.
func (b *Board) bracket(r, c int8, d [2]int8) int8 {
	opp := Opponent(b.turn)
	rr, cc := r+d[0], c+d[1]
	var n int8
	for onBoard(rr, cc) && b.cells[rr][cc] == opp {
		n++
		rr += d[0]
		cc += d[1]
	}
	if n == 0 || !onBoard(rr, cc) || b.cells[rr][cc] != b.turn {
		return 0
	}
	return n
}

func (b *Board) isLegal(r, c int8) bool {
	if b.cells[r][c] != Empty {
		return false
	}
	for _, d := range Directions {
		if b.bracket(r, c, d) > 0 {
			return true
		}
	}
	return false
}

func (b *Board) legalMask() uint64 {
	var mask uint64
	for r := int8(0); r < Size; r++ {
		for c := int8(0); c < Size; c++ {
			if b.isLegal(r, c) {
				mask |= 1 << (uint(r)*Size + uint(c))
			}
		}
	}
	return mask
}

// ----------------- state transition ---------------------

// Apply plays m for the side to move.
//
// An illegal move forfeits the game: done is set, the opponent wins and
// nothing else changes. A side left without a legal move passes; when
// neither side can move the game ends and the disc majority wins.
func (b *Board) Apply(m Move) bool {
	me, opp := b.turn, Opponent(b.turn)
	if !b.IsLegalMove(m) {
		b.winner = opp
		b.done = true
		return false
	}

	b.cells[m.R][m.C] = me
	b.discs[me]++
	b.discs[Empty]--
	for _, d := range Directions {
		n := b.bracket(m.R, m.C, d)
		rr, cc := m.R, m.C
		for k := int8(0); k < n; k++ {
			rr += d[0]
			cc += d[1]
			b.cells[rr][cc] = me
		}
		b.discs[me] += int(n)
		b.discs[opp] -= int(n)
	}

	b.turn = opp
	b.legal = b.legalMask()
	if b.legal != 0 {
		return true
	}
	// opponent passes
	b.turn = me
	b.legal = b.legalMask()
	if b.legal != 0 {
		return true
	}

	b.done = true
	switch black, white := b.discs[Black], b.discs[White]; {
	case black == white:
		b.winner = Draw
	case black > white:
		b.winner = Black
	default:
		b.winner = White
	}
	return true
}
