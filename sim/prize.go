package sim

import "math"

// Prize is one sector of the prize wheel
type Prize struct {
	ID   int
	Name string
}

// Prizes is the prize wheel, in sector order starting at angle 0
var Prizes = []Prize{
	{ID: 0, Name: "NEON BLADE"},
	{ID: 1, Name: "CYBER CORE"},
	{ID: 2, Name: "PULSE ORB"},
	{ID: 3, Name: "VOID DART"},
	{ID: 4, Name: "ELECTRIC WING"},
}

// SectorIndex maps an impact angle onto one of n equal sectors
func SectorIndex(angle float64, n int) int {
	if n <= 0 {
		return 0
	}
	width := fullTurn / float64(n)
	return int(math.Floor(Wrap(angle)/width)) % n
}
