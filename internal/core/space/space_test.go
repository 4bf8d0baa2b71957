package space

import (
	"encoding/json"
	"testing"
)

func TestRound(t *testing.T) {
	tests := []struct {
		in   GamePos
		want GamePos
	}{
		{GamePos{2.4, 2.6}, GamePos{2, 3}},
		{GamePos{0.5, 1.5}, GamePos{1, 2}},
		{GamePos{-0.5, -1.5}, GamePos{0, -1}},
		{GamePos{-0.6, -2.2}, GamePos{-1, -2}},
		{GamePos{3, 7}, GamePos{3, 7}},
		{GamePos{-4, -1}, GamePos{-4, -1}},
		{GamePos{0, 0}, GamePos{0, 0}},
	}

	for _, tt := range tests {
		got := tt.in.Round()
		if got != tt.want {
			t.Errorf("Round(%v): expected %v, got %v", tt.in, tt.want, got)
		}
	}
}

func TestRoundKeepsIntegers(t *testing.T) {
	for x := -20; x <= 20; x++ {
		for y := -20; y <= 20; y++ {
			p := Pos(x, y)
			if got := p.Round(); got != p {
				t.Errorf("Round(%v): expected unchanged, got %v", p, got)
			}
		}
	}
}

func TestArithmetic(t *testing.T) {
	a := Pos(3, 4)
	b := Pos(1, -2)

	if got := a.Add(b); got != Pos(4, 2) {
		t.Errorf("Expected (4, 2), got %v", got)
	}
	if got := a.Sub(b); got != Pos(2, 6) {
		t.Errorf("Expected (2, 6), got %v", got)
	}
	if got := a.Mul(2); got != Pos(6, 8) {
		t.Errorf("Expected (6, 8), got %v", got)
	}
	if got := a.Magnitude(); got != 5 {
		t.Errorf("Expected magnitude 5, got %v", got)
	}
	if got := a.LargestComponentDifference(b); got != 6 {
		t.Errorf("Expected largest difference 6, got %v", got)
	}
	if got := b.Neg(); got != Pos(-1, 2) {
		t.Errorf("Expected (-1, 2), got %v", got)
	}
	if got := (GamePos{-1.2, 3.7}).Floor(); got != Pos(-2, 3) {
		t.Errorf("Expected (-2, 3), got %v", got)
	}
}

func TestRotationCycles(t *testing.T) {
	for _, v := range Variants {
		cur := v
		for i := 0; i < len(Variants); i++ {
			cur = cur.RotateCW()
		}
		if cur != v {
			t.Errorf("Expected %v after full clockwise cycle, got %v", v, cur)
		}
		if v.RotateCW().RotateCCW() != v {
			t.Errorf("Expected ccw to undo cw for %v", v)
		}
	}

	if Center.RotateCW() != CornerTL {
		t.Errorf("Expected center to rotate to corner_tl, got %v", Center.RotateCW())
	}
	if Left.RotateCW() != Center {
		t.Errorf("Expected left to rotate to center, got %v", Left.RotateCW())
	}
	if Top.RotateCCW() != CornerTL {
		t.Errorf("Expected top to rotate ccw to corner_tl, got %v", Top.RotateCCW())
	}
}

func TestMatchVariant(t *testing.T) {
	tests := []struct {
		v        Variant
		col, row uint16
	}{
		{Top, 12, 1},
		{Bottom, 12, 3},
		{Left, 10, 2},
		{Right, 14, 2},
		{CornerBL, 10, 3},
		{CornerBR, 14, 3},
		{CornerTR, 14, 1},
		{CornerTL, 10, 1},
		{Center, 12, 2},
	}

	for _, tt := range tests {
		col, row := MatchVariant(tt.v, 10, 1)
		if col != tt.col || row != tt.row {
			t.Errorf("%v: expected (%d, %d), got (%d, %d)", tt.v, tt.col, tt.row, col, row)
		}
	}
}

func TestVariantJSON(t *testing.T) {
	data, err := json.Marshal(struct {
		V Variant `json:"v"`
	}{CornerTR})
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if string(data) != `{"v":"corner_tr"}` {
		t.Errorf("Unexpected encoding %s", data)
	}

	var back struct {
		V Variant `json:"v"`
	}
	if err := json.Unmarshal([]byte(`{"v":"bottom"}`), &back); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if back.V != Bottom {
		t.Errorf("Expected bottom, got %v", back.V)
	}

	if err := json.Unmarshal([]byte(`{"v":"sideways"}`), &back); err == nil {
		t.Error("Expected error for unknown variant name")
	}
}

func TestDirectionDelta(t *testing.T) {
	if DirUp.Delta() != Pos(0, -1) || DirRight.Delta() != Pos(1, 0) {
		t.Error("Unexpected direction deltas")
	}
	if !DirNone.Delta().IsZero() {
		t.Error("Expected zero delta for DirNone")
	}
}
