package engine

import "math"

// The level curve is quadratic: level L begins at (L-1)^2 * 100 EXP.
// level(exp) = floor(sqrt(exp/100)) + 1, so 0..99 is level 1, 100..399
// level 2, 400..899 level 3, and so on.

// Level returns the level for the given cumulative EXP. Negative input is
// treated as 0.
func Level(exp int) int {
	if exp < 0 {
		exp = 0
	}
	l := int(math.Sqrt(float64(exp) / 100.0))
	// Correct any floating point drift around exact thresholds.
	for (l+1)*(l+1)*100 <= exp {
		l++
	}
	for l > 0 && l*l*100 > exp {
		l--
	}
	return l + 1
}

// ExpToNextLevel returns how much EXP is still needed to reach the next level.
func ExpToNextLevel(exp int) int {
	if exp < 0 {
		exp = 0
	}
	l := Level(exp)
	return l*l*100 - exp
}

// LevelInfo is a read-only projection of cumulative EXP.
type LevelInfo struct {
	Level     int
	EXP       int
	ExpToNext int
	// Progress is the percentage position inside the current level band,
	// clamped to [0, 100].
	Progress float64
}

func LevelProgress(exp int) LevelInfo {
	if exp < 0 {
		exp = 0
	}
	l := Level(exp)
	bandStart := (l - 1) * (l - 1) * 100
	bandEnd := l * l * 100
	progress := float64(exp-bandStart) / float64(bandEnd-bandStart) * 100
	if progress < 0 {
		progress = 0
	}
	if progress > 100 {
		progress = 100
	}
	return LevelInfo{
		Level:     l,
		EXP:       exp,
		ExpToNext: bandEnd - exp,
		Progress:  progress,
	}
}
