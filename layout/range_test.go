package layout

import "testing"

func TestRangeResolve(t *testing.T) {
	tests := []struct {
		name  string
		rng   Range
		total int
		want  Range
	}{
		{
			name:  "all_untouched",
			rng:   Range{},
			total: 5,
			want:  Range{},
		},
		{
			name:  "bounded_clamps_to_keep_window_full",
			rng:   Bounded(8, 3),
			total: 5,
			want:  Bounded(2, 3),
		},
		{
			name:  "bounded_short_content_snaps_to_zero",
			rng:   Bounded(1, 10),
			total: 5,
			want:  Bounded(0, 10),
		},
		{
			name:  "capped_clamps_to_last_unit",
			rng:   Capped(9, 3),
			total: 5,
			want:  Capped(4, 3),
		},
		{
			name:  "stepped_clamps_page",
			rng:   Paged(7, 2),
			total: 5,
			want:  Paged(2, 2),
		},
		{
			name:  "stepped_negative_page_snaps_to_zero",
			rng:   Paged(-1, 2),
			total: 5,
			want:  Paged(0, 2),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rng := tt.rng
			rng.Resolve(tt.total)
			if rng != tt.want {
				t.Fatalf("resolved = %+v, want %+v", rng, tt.want)
			}
		})
	}
}

func TestRangeSpan(t *testing.T) {
	tests := []struct {
		name   string
		rng    Range
		total  int
		lo, hi int
	}{
		{"all", Range{}, 4, 0, 4},
		{"bounded_window", Bounded(1, 2), 4, 1, 3},
		{"capped_tail_partial", Capped(3, 3), 4, 3, 4},
		{"stepped_page", Paged(1, 2), 5, 2, 4},
		{"stepped_past_end", Paged(3, 2), 5, 5, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lo, hi := tt.rng.Span(tt.total)
			if lo != tt.lo || hi != tt.hi {
				t.Fatalf("span = [%d, %d), want [%d, %d)", lo, hi, tt.lo, tt.hi)
			}
		})
	}
}
