package engine

import "time"

// Points awarded per cleared line count, indexed by min(count, 4).
var lineClearTable = [5]int{0, 100, 300, 500, 800}

// Scoring constants.
const (
	LinesPerLevel    = 10
	ComboBonusPoints = 50
	HardDropPerCell  = 1
	SoftDropPerStep  = 1
)

// BasePoints returns the points for clearing a match of the given size
// before the cascade multiplier. Sizes below MinRun score nothing.
func BasePoints(size int) int {
	switch {
	case size < MinRun:
		return 0
	case size == 3:
		return 100
	case size == 4:
		return 250
	case size == 5:
		return 500
	default:
		return 1000 + (size-6)*200
	}
}

// MatchPoints returns the points for a match cleared at the given cascade depth.
func MatchPoints(size, depth int) int {
	return BasePoints(size) * depth
}

// LineClearPoints returns the points for clearing count rows in one pass.
func LineClearPoints(count int) int {
	if count <= 0 {
		return 0
	}
	return lineClearTable[min(count, len(lineClearTable)-1)]
}

// ComboBonus returns the bonus for reaching the given combo counter value.
// The first cascading lock in a streak earns nothing.
func ComboBonus(combo int) int {
	if combo <= 1 {
		return 0
	}
	return ComboBonusPoints * combo
}

// LevelForLines returns floor(lines/10)+1.
func LevelForLines(lines int) int {
	return lines/LinesPerLevel + 1
}

// NextLevel returns the level after reaching totalLines. Levels never decrease.
func NextLevel(current, totalLines int) int {
	return max(current, LevelForLines(totalLines))
}

// DropInterval returns how long a piece waits between automatic one-row drops.
func DropInterval(level int) time.Duration {
	level = max(level, 1)
	var ms int
	switch {
	case level <= 5:
		ms = 1000 - (level-1)*100
	case level <= 10:
		ms = 600 - (level-6)*50
	default:
		ms = max(100, 350-(level-11)*25)
	}
	return time.Duration(ms) * time.Millisecond
}
