package domain

// BadgeLevel is a named tier derived from a cumulative point total.
type BadgeLevel struct {
	Title  string
	Points int
}

// BadgeLevels in ascending order of required points.
var BadgeLevels = []BadgeLevel{
	{Title: "Newbie", Points: 0},
	{Title: "Junior Fixer", Points: 15},
	{Title: "Expert Fixer", Points: 30},
	{Title: "Master Fixer", Points: 50},
}

// BadgeFor returns the highest badge title the given point total qualifies for.
func BadgeFor(points int) string {
	for i := len(BadgeLevels) - 1; i >= 0; i-- {
		if points >= BadgeLevels[i].Points {
			return BadgeLevels[i].Title
		}
	}
	return BadgeLevels[0].Title
}
