package bot

import "github.com/vovakirdan/blockpilot/internal/core"

// Heuristic weights. Completed rows are rewarded; holes cost roughly twice
// as much per unit as stack height growth.
const (
	WeightCompleteRows      = 760
	WeightHoles             = 356
	WeightHeightDifferences = 184
	WeightTotalHeight       = 510
)

// Features are the board measurements the score is built from.
type Features struct {
	CompleteRows      int
	Holes             int
	HeightDifferences int
	TotalHeight       int
}

// Score combines the features with the fixed weights.
func (f Features) Score() int {
	return WeightCompleteRows*f.CompleteRows -
		WeightHoles*f.Holes -
		WeightHeightDifferences*f.HeightDifferences -
		WeightTotalHeight*f.TotalHeight
}

// Measure computes the features of g.
func Measure(g Grid) Features {
	width, height := g.Width(), g.Height()

	filled := make([][]bool, height)
	for y := range filled {
		filled[y] = make([]bool, width)
	}
	for x, y := range g.Occupied() {
		filled[y][x] = true
	}

	// Column height is measured from the topmost occupied cell.
	heights := make([]int, width)
	for x := range width {
		for y := range height {
			if filled[y][x] {
				heights[x] = height - y
				break
			}
		}
	}

	var f Features
	for x, h := range heights {
		f.TotalHeight += h
		if x > 0 {
			f.HeightDifferences += core.Abs(h - heights[x-1])
		}
	}

	for y := range height {
		complete := true
		for x := range width {
			if !filled[y][x] {
				complete = false
				break
			}
		}
		if complete {
			f.CompleteRows++
		}
	}

	for y := 1; y < height; y++ {
		for x := range width {
			if !filled[y][x] && filled[y-1][x] {
				f.Holes++
			}
		}
	}

	return f
}

// Evaluate scores a post-placement board. Higher is better.
func Evaluate(g Grid) int {
	return Measure(g).Score()
}
