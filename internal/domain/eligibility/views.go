package eligibility

// Available keeps rows showing the green badge, in order. Crew pickers use it.
func Available(rows []ProcessedCrewMember) []ProcessedCrewMember {
	out := make([]ProcessedCrewMember, 0, len(rows))
	for _, r := range rows {
		if r.Status.Color == ColorGreen {
			out = append(out, r)
		}
	}
	return out
}

// Qualified keeps rows whose crew member is qualified for the aircraft, in order.
func Qualified(rows []ProcessedCrewMember) []ProcessedCrewMember {
	out := make([]ProcessedCrewMember, 0, len(rows))
	for _, r := range rows {
		if r.Qualified {
			out = append(out, r)
		}
	}
	return out
}

// Tally counts rows per badge color.
type Tally struct {
	Available  int
	Incomplete int
	Missing    int
	Inactive   int
}

func (t Tally) Total() int { return t.Available + t.Incomplete + t.Missing + t.Inactive }

// CountByColor tallies rows per badge color.
func CountByColor(rows []ProcessedCrewMember) Tally {
	var t Tally
	for _, r := range rows {
		switch r.Status.Color {
		case ColorGreen:
			t.Available++
		case ColorYellow:
			t.Incomplete++
		case ColorRed:
			t.Missing++
		case ColorGray:
			t.Inactive++
		}
	}
	return t
}
