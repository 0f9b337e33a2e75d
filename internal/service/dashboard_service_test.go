package service

import "testing"

func TestRankFor(t *testing.T) {
	cases := []struct {
		completed int
		want      string
	}{
		{0, "Silver"},
		{19, "Silver"},
		{20, "Gold"},
		{49, "Gold"},
		{50, "Elite"},
		{137, "Elite"},
	}

	for _, c := range cases {
		if got := RankFor(c.completed); got != c.want {
			t.Errorf("RankFor(%d) = %q, want %q", c.completed, got, c.want)
		}
	}
}
