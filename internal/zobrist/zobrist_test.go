package zobrist

import "testing"

func TestHashIsIncremental(t *testing.T) {
	var cells [Positions]int8
	cells[27], cells[36] = 2, 2
	cells[28], cells[35] = 1, 1
	h := Hash(&cells)

	cells[19] = 1
	cells[27] = 1
	want := Hash(&cells)
	got := Toggle(Toggle(Toggle(h, 1, 19), 2, 27), 1, 27)
	if got != want {
		t.Fatalf("incremental %x, full %x", got, want)
	}
}

func TestKeysNonZero(t *testing.T) {
	for s := range Keys {
		for i, k := range Keys[s] {
			if k == 0 {
				t.Fatalf("zero key for side %d pos %d", s+1, i)
			}
		}
	}
	if Self(1) == Self(2) {
		t.Fatalf("side keys collide")
	}
}
