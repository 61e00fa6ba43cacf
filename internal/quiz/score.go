package quiz

import "math"

// AnswerSet maps question ids to the selected option values. Single-choice
// answers are one-element slices; the engine does not care which.
type AnswerSet map[string][]string

// ScoreVector holds the accumulated score for every category. All four
// categories are always present, zero included.
type ScoreVector map[Category]int

// SecondaryRecommendation is a non-primary category that still collected
// points, ranked for display as a percentage of the top score.
type SecondaryRecommendation struct {
	Category Category
	Score    int
	Percent  int
}

// Result is the outcome of scoring one complete AnswerSet.
type Result struct {
	Primary   Category
	Profile   SolutionProfile
	Scores    ScoreVector
	Secondary []SecondaryRecommendation
}

// Score accumulates option weights over the answer set and derives the
// recommendation. It is pure and deterministic: the same answers always
// produce the same vector and the same primary category.
//
// Unknown question ids and unknown option values are skipped silently so a
// stale client catalog cannot fail a submission. Enforcing that required
// questions are answered is the caller's job, not the engine's.
func Score(answers AnswerSet) Result {
	scores := ScoreVector{}
	for _, c := range Categories {
		scores[c] = 0
	}

	for questionID, selections := range answers {
		question := FindQuestion(questionID)
		if question == nil {
			continue
		}
		for _, value := range selections {
			option := question.findOption(value)
			if option == nil {
				continue
			}
			for category, weight := range option.Weight {
				if _, ok := scores[category]; ok {
					scores[category] += weight
				}
			}
		}
	}

	// Ties, including the all-zero vector, resolve to the first category in
	// the fixed enumeration order.
	primary := Categories[0]
	for _, c := range Categories[1:] {
		if scores[c] > scores[primary] {
			primary = c
		}
	}

	maxScore := scores[primary]
	var secondary []SecondaryRecommendation
	for _, c := range Categories {
		if c == primary || scores[c] == 0 {
			continue
		}
		secondary = append(secondary, SecondaryRecommendation{
			Category: c,
			Score:    scores[c],
			Percent:  int(math.Round(float64(scores[c]) / float64(maxScore) * 100)),
		})
	}
	// Descending by score; insertion order already follows the fixed
	// enumeration, which keeps equal scores stable.
	for i := 1; i < len(secondary); i++ {
		for j := i; j > 0 && secondary[j].Score > secondary[j-1].Score; j-- {
			secondary[j], secondary[j-1] = secondary[j-1], secondary[j]
		}
	}

	return Result{
		Primary:   primary,
		Profile:   Solutions[primary],
		Scores:    scores,
		Secondary: secondary,
	}
}

// Total returns the mass of the vector: the sum of every category's score.
func (v ScoreVector) Total() int {
	total := 0
	for _, s := range v {
		total += s
	}
	return total
}
