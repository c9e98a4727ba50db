package playerid

import (
	"strings"
	"testing"
	"time"
)

func TestNew(t *testing.T) {
	id := New()

	if len(id) != 26 {
		t.Errorf("expected 26 characters, got %d", len(id))
	}
	if err := Validate(id); err != nil {
		t.Errorf("generated id failed validation: %v", err)
	}
	if id[0] > '7' {
		t.Errorf("first character %c exceeds maximum '7'", id[0])
	}
}

func TestNewUnique(t *testing.T) {
	ids := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := New()
		if ids[id] {
			t.Errorf("duplicate id generated: %s", id)
		}
		ids[id] = true
	}
}

func TestNewTimeSorted(t *testing.T) {
	first := New()
	time.Sleep(2 * time.Millisecond)
	second := New()

	if !(first < second) {
		t.Errorf("ids not time-ordered: %s then %s", first, second)
	}
}

type fixedSource struct{ v int }

func (f fixedSource) Intn(n int) int { return f.v % n }

func TestGeneratorDeterministicTail(t *testing.T) {
	g := NewGenerator(fixedSource{v: 7})

	a := g.Generate()
	b := g.Generate()

	// The trailing characters encode only the random tail, which the fixed
	// source keeps constant; only the timestamp prefix can differ.
	if a[10:] != b[10:] {
		t.Errorf("random tails differ with a fixed source: %s vs %s", a, b)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		id      string
		wantErr bool
	}{
		{name: "valid", id: New()},
		{name: "too short", id: "abc", wantErr: true},
		{name: "too long", id: strings.Repeat("0", 27), wantErr: true},
		{name: "invalid character", id: strings.Repeat("0", 25) + "u", wantErr: true},
		{name: "overflowing first character", id: "8" + strings.Repeat("0", 25), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.id)
			if tt.wantErr && err == nil {
				t.Error("expected error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}
