package engine

import "testing"

func TestLevelBoundaries(t *testing.T) {
	cases := []struct {
		exp  int
		want int
	}{
		{-50, 1},
		{0, 1},
		{99, 1},
		{100, 2},
		{399, 2},
		{400, 3},
		{899, 3},
		{900, 4},
		{1600, 5},
	}
	for _, c := range cases {
		if got := Level(c.exp); got != c.want {
			t.Errorf("Level(%d)=%d, want %d", c.exp, got, c.want)
		}
	}
}

func TestLevelMonotonic(t *testing.T) {
	prev := Level(0)
	for exp := 1; exp <= 5000; exp++ {
		cur := Level(exp)
		if cur < prev {
			t.Fatalf("Level(%d)=%d < Level(%d)=%d", exp, cur, exp-1, prev)
		}
		prev = cur
	}
}

func TestExpToNextLevel(t *testing.T) {
	cases := []struct {
		exp  int
		want int
	}{
		{0, 100},
		{50, 50},
		{99, 1},
		{100, 300},
		{400, 500},
	}
	for _, c := range cases {
		if got := ExpToNextLevel(c.exp); got != c.want {
			t.Errorf("ExpToNextLevel(%d)=%d, want %d", c.exp, got, c.want)
		}
	}
}

func TestLevelProgressBounds(t *testing.T) {
	for _, exp := range []int{-10, 0, 1, 50, 99, 100, 250, 399, 400, 401, 899, 10_000} {
		info := LevelProgress(exp)
		if info.Progress < 0 || info.Progress > 100 {
			t.Errorf("LevelProgress(%d).Progress=%f out of [0,100]", exp, info.Progress)
		}
		if info.ExpToNext <= 0 {
			t.Errorf("LevelProgress(%d).ExpToNext=%d, want positive", exp, info.ExpToNext)
		}
	}

	if got := LevelProgress(0).Progress; got != 0 {
		t.Errorf("LevelProgress(0).Progress=%f, want 0", got)
	}
	// Level band start is always 0%.
	if got := LevelProgress(100).Progress; got != 0 {
		t.Errorf("LevelProgress(100).Progress=%f, want 0", got)
	}
	// Midway through level 1 (0..99).
	if got := LevelProgress(50).Progress; got != 50 {
		t.Errorf("LevelProgress(50).Progress=%f, want 50", got)
	}
}
