package occupant

import (
	"encoding/json"
	"errors"
	"testing"

	"chosenoffset.com/tilewalk/internal/core/space"
)

func TestToggle(t *testing.T) {
	if Blocking.Toggle() != Free || Free.Toggle() != Blocking {
		t.Error("Expected toggle to flip state")
	}
	if !Blocking.Blocks() || Free.Blocks() {
		t.Error("Unexpected Blocks result")
	}
}

func TestObstructionJSON(t *testing.T) {
	var o Obstruction
	if err := json.Unmarshal([]byte(`"free"`), &o); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if o != Free {
		t.Errorf("Expected free, got %v", o)
	}
	if err := json.Unmarshal([]byte(`"ajar"`), &o); err == nil {
		t.Error("Expected error for unknown state")
	}
}

func TestMustNotPanicsWithContentError(t *testing.T) {
	cause := errors.New("missing")
	defer func() {
		r := recover()
		ce, ok := r.(*ContentError)
		if !ok {
			t.Fatalf("Expected *ContentError panic, got %T", r)
		}
		if ce.Kind != "door" || ce.Sequence != "open" || ce.Pos != space.Pos(2, 3) {
			t.Errorf("Unexpected content error %v", ce)
		}
		if !errors.Is(ce, cause) {
			t.Error("Expected content error to wrap its cause")
		}
	}()

	MustNot(nil, "door", space.Pos(2, 3), "open")
	MustNot(cause, "door", space.Pos(2, 3), "open")
	t.Fatal("Expected panic")
}
