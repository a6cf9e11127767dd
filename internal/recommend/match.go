package recommend

import "strings"

// Neutral is the score given when there is nothing to compare.
const Neutral = 0.5

const (
	interestBonus  = 0.1
	physicalStrong = 1.0
	physicalWeak   = 0.3
)

// synonyms pairs cross-domain terms. A pair matches when the student
// interest contains one term and the course interest contains the other,
// in either direction.
var synonyms = [][2]string{
	{"science", "science"},
	{"technology", "technology"},
	{"medicine", "healthcare"},
	{"business", "business"},
	{"engineering", "engineering"},
	{"programming", "technology"},
	{"coding", "technology"},
	{"sports", "sports"},
	{"fitness", "sports"},
	{"teaching", "education"},
	{"law", "law"},
	{"psychology", "psychology"},
}

// overlaps reports whether either lowercased string contains the other.
func overlaps(a, b string) bool {
	a, b = strings.ToLower(a), strings.ToLower(b)
	return strings.Contains(a, b) || strings.Contains(b, a)
}

func synonymous(studentInterest, courseInterest string) bool {
	s, c := strings.ToLower(studentInterest), strings.ToLower(courseInterest)
	for _, pair := range synonyms {
		if strings.Contains(s, pair[0]) && strings.Contains(c, pair[1]) {
			return true
		}
		if strings.Contains(s, pair[1]) && strings.Contains(c, pair[0]) {
			return true
		}
	}
	return false
}

// InterestMatch scores how well a student's interests cover a course's
// related interests. With no student interests the score is Neutral.
// Otherwise it is the share of course interests matched plus a 0.1
// bonus, capped at 1.
func InterestMatch(interests, related []string) float64 {
	if len(interests) == 0 {
		return Neutral
	}

	matched := 0
	for _, ci := range related {
		for _, si := range interests {
			if overlaps(ci, si) || synonymous(si, ci) {
				matched++
				break
			}
		}
	}

	return min(1, float64(matched)/float64(max(1, len(related)))+interestBonus)
}

// MatchingInterests returns, in the student's order, the interests that
// textually overlap any course interest. Synonyms are not consulted.
func MatchingInterests(interests, related []string) []string {
	var out []string
	for _, si := range interests {
		for _, ci := range related {
			if overlaps(si, ci) {
				out = append(out, si)
				break
			}
		}
	}
	return out
}

// PhysicalMatch scores a free-text talent description against a course's
// physical requirements. It is Neutral when either side is empty, 1 when
// any requirement and the talents overlap textually, and 0.3 otherwise.
func PhysicalMatch(talents string, requirements []string) float64 {
	if talents == "" || len(requirements) == 0 {
		return Neutral
	}
	for _, req := range requirements {
		if overlaps(req, talents) {
			return physicalStrong
		}
	}
	return physicalWeak
}
