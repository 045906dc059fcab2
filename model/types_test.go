package model

import "testing"

func TestComparePosAndNormalizeRange(t *testing.T) {
	cases := []struct {
		name string
		a, b Pos
		want int
	}{
		{"equal", Pos{1, 2}, Pos{1, 2}, 0},
		{"earlier block", Pos{0, 9}, Pos{1, 0}, -1},
		{"later offset", Pos{1, 3}, Pos{1, 2}, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ComparePos(tc.a, tc.b); got != tc.want {
				t.Fatalf("ComparePos(%v,%v)=%d, want %d", tc.a, tc.b, got, tc.want)
			}
		})
	}

	r := NormalizeRange(Range{Start: Pos{2, 0}, End: Pos{0, 1}})
	if r.Start != (Pos{0, 1}) || r.End != (Pos{2, 0}) {
		t.Fatalf("normalized=%v, want swapped", r)
	}
}

func TestClampPos_Bounds(t *testing.T) {
	lens := []int{3, 0, 5}
	blockLen := func(i int) int { return lens[i] }

	cases := []struct {
		name string
		in   Pos
		want Pos
	}{
		{"inside", Pos{0, 2}, Pos{0, 2}},
		{"offset overflow", Pos{1, 9}, Pos{1, 0}},
		{"block overflow", Pos{9, 9}, Pos{2, 5}},
		{"negative", Pos{-1, -1}, Pos{0, 0}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ClampPos(tc.in, len(lens), blockLen); got != tc.want {
				t.Fatalf("clamp(%v)=%v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestBlockText_ConcatenatesSpans(t *testing.T) {
	b := Block{Spans: []Span{{Text: "a", Marks: Bold}, {Text: "b"}, {Text: "c", Marks: Italic}}}
	if got := b.Text(); got != "abc" {
		t.Fatalf("text=%q, want %q", got, "abc")
	}
	if got := (Block{}).Text(); got != "" {
		t.Fatalf("empty block text=%q, want empty", got)
	}
}

func TestMarkHas(t *testing.T) {
	m := Bold | Code
	if !m.Has(Bold) || !m.Has(Code) {
		t.Fatalf("mark %b should contain bold and code", m)
	}
	if m.Has(Italic) {
		t.Fatalf("mark %b should not contain italic", m)
	}
	if !m.Has(Bold | Code) {
		t.Fatalf("mark %b should contain the full set", m)
	}
}
