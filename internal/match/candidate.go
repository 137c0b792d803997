package match

import (
	"sort"
)

// MinSuggestionScore is the similarity below which a name is not worth
// suggesting.
const MinSuggestionScore = 0.5

// Candidate is a known name scored against a query.
type Candidate struct {
	Name  string
	Score float64
}

// CandidateList is a list of candidates, best first once ranked.
type CandidateList []Candidate

// Rank scores every known name against name. Candidates are sorted by
// descending score, ties broken by name.
func Rank(name string, known []string) CandidateList {
	query := NormalizeFrame(name)

	candidates := make(CandidateList, 0, len(known))
	for _, k := range known {
		candidates = append(candidates, Candidate{
			Name:  k,
			Score: Similarity(query, NormalizeFrame(k)),
		})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].Score != candidates[j].Score {
			return candidates[i].Score > candidates[j].Score
		}

		return candidates[i].Name < candidates[j].Name
	})

	return candidates
}

// Above returns the leading candidates scoring at least threshold.
func (cl CandidateList) Above(threshold float64) CandidateList {
	for i, c := range cl {
		if c.Score < threshold {
			return cl[:i]
		}
	}

	return cl
}

// Names returns the candidate names in order.
func (cl CandidateList) Names() []string {
	names := make([]string, len(cl))
	for i, c := range cl {
		names[i] = c.Name
	}

	return names
}

// Suggest returns up to limit known names close enough to name to be
// offered as corrections. An exact match is never suggested.
func Suggest(name string, known []string, limit int) []string {
	ranked := Rank(name, known).Above(MinSuggestionScore)

	out := make([]string, 0, min(limit, len(ranked)))
	for _, c := range ranked {
		if len(out) == limit {
			break
		}

		if c.Name == name {
			continue
		}

		out = append(out, c.Name)
	}

	return out
}
