package cellmodel

import "testing"

func TestNewCellWidth(t *testing.T) {
	cases := []struct {
		text string
		want int
	}{
		{"a", 1},
		{"", 0},
		{"世", 2},
		{"ab", 2},
	}
	for _, tc := range cases {
		cell := NewCell(tc.text, "")
		if cell.Width != tc.want {
			t.Errorf("NewCell(%q).Width = %d, want %d", tc.text, cell.Width, tc.want)
		}
	}
}

func TestCellCacheIntern(t *testing.T) {
	c := NewCellCache(0)
	a := c.Intern("x", "bold")
	b := c.Intern("x", "bold")
	if a != b {
		t.Errorf("expected interned cells to be equal: %+v vs %+v", a, b)
	}
	if c.Len() != 1 {
		t.Errorf("expected 1 distinct entry, got %d", c.Len())
	}
	c.Intern("y", "bold")
	if c.Len() != 2 {
		t.Errorf("expected 2 distinct entries, got %d", c.Len())
	}
}

func TestCellCacheEviction(t *testing.T) {
	c := NewCellCache(2)
	c.Intern("a", "")
	c.Intern("b", "")
	c.Intern("c", "")
	if c.Len() != 2 {
		t.Errorf("expected cache bounded to 2 entries, got %d", c.Len())
	}
	if _, ok := c.entries[cellKey{text: "a", style: ""}]; ok {
		t.Error("expected oldest entry to be evicted")
	}
}

func TestRuneWidth(t *testing.T) {
	if RuneWidth('a') != 1 {
		t.Errorf("expected width 1 for 'a'")
	}
	if RuneWidth('世') != 2 {
		t.Errorf("expected width 2 for wide rune")
	}
}
