package quiz

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScoreAccumulatesWeights(t *testing.T) {
	answers := AnswerSet{
		"business_type": {"comercio"},
		"main_goal":     {"ventas_online"},
	}

	result := Score(answers)

	assert.Equal(t, CategoryEcommerce, result.Primary)
	assert.Equal(t, 1, result.Scores[CategoryLanding])
	assert.Equal(t, 6, result.Scores[CategoryEcommerce])
	assert.Equal(t, 0, result.Scores[CategorySistema])
	assert.Equal(t, 0, result.Scores[CategoryChatbot])
}

func TestScoreIsDeterministic(t *testing.T) {
	answers := AnswerSet{
		"business_type":   {"servicios"},
		"main_goal":       {"automatizar"},
		"secondary_goals": {"leads", "reservas"},
		"budget":          {"medio"},
	}

	first := Score(answers)
	for i := 0; i < 10; i++ {
		again := Score(answers)
		assert.Equal(t, first.Primary, again.Primary)
		assert.Equal(t, first.Scores, again.Scores)
		assert.Equal(t, first.Secondary, again.Secondary)
	}
}

func TestScoreMassEqualsSumOfSelectedWeights(t *testing.T) {
	answers := AnswerSet{
		"business_type": {"comercio"},
		"main_goal":     {"ventas_online"},
	}

	result := Score(answers)

	expected := 0
	for questionID, selections := range answers {
		question := FindQuestion(questionID)
		require.NotNil(t, question)
		for _, value := range selections {
			option := question.findOption(value)
			require.NotNil(t, option)
			for _, w := range option.Weight {
				expected += w
			}
		}
	}
	assert.Equal(t, expected, result.Scores.Total())
}

func TestScoreAllCategoriesAlwaysPresent(t *testing.T) {
	result := Score(AnswerSet{})

	require.Len(t, result.Scores, len(Categories))
	for _, c := range Categories {
		_, ok := result.Scores[c]
		assert.True(t, ok, "category %s missing from score vector", c)
	}
}

func TestScoreEmptyAnswersDefaultsToLanding(t *testing.T) {
	result := Score(AnswerSet{})

	assert.Equal(t, CategoryLanding, result.Primary)
	assert.Equal(t, 0, result.Scores.Total())
	assert.Empty(t, result.Secondary)
	assert.Equal(t, Solutions[CategoryLanding], result.Profile)
}

func TestScoreTieResolvesByCategoryOrder(t *testing.T) {
	// urgency carries no weights, so the vector stays all-zero and every
	// category ties. The first category in the fixed order must win.
	result := Score(AnswerSet{"urgency": {"urgente"}})

	assert.Equal(t, Categories[0], result.Primary)
	assert.Equal(t, CategoryLanding, result.Primary)
}

func TestScoreSkipsUnknownQuestionsAndOptions(t *testing.T) {
	clean := Score(AnswerSet{"business_type": {"comercio"}})
	noisy := Score(AnswerSet{
		"business_type":    {"comercio", "no_such_option"},
		"no_such_question": {"whatever"},
	})

	assert.Equal(t, clean.Scores, noisy.Scores)
	assert.Equal(t, clean.Primary, noisy.Primary)
}

func TestScoreMultipleChoiceAccumulatesEverySelection(t *testing.T) {
	one := Score(AnswerSet{"secondary_goals": {"leads"}})
	two := Score(AnswerSet{"secondary_goals": {"leads", "reservas"}})

	assert.Greater(t, two.Scores.Total(), one.Scores.Total())
}

func TestScoreSecondaryRankedDescendingWithoutZeroes(t *testing.T) {
	answers := AnswerSet{
		"business_type": {"comercio"},
		"main_goal":     {"ventas_online"},
		"need_system":   {"inventario"},
	}

	result := Score(answers)

	require.NotEmpty(t, result.Secondary)
	maxScore := result.Scores[result.Primary]
	for i, s := range result.Secondary {
		assert.NotEqual(t, result.Primary, s.Category)
		assert.Greater(t, s.Score, 0)
		assert.LessOrEqual(t, s.Percent, 100)
		if i > 0 {
			assert.LessOrEqual(t, s.Score, result.Secondary[i-1].Score)
		}
		assert.Equal(t, int(float64(s.Score)/float64(maxScore)*100+0.5), s.Percent)
	}
}

func TestFindQuestionUnknownID(t *testing.T) {
	assert.Nil(t, FindQuestion("does_not_exist"))
}

func TestCatalogEveryWeightTargetsKnownCategory(t *testing.T) {
	known := map[Category]bool{}
	for _, c := range Categories {
		known[c] = true
	}
	for _, q := range Questions {
		for _, opt := range q.Options {
			for category := range opt.Weight {
				assert.True(t, known[category], "question %s option %s references unknown category %s", q.ID, opt.Value, category)
			}
		}
	}
}

func TestCatalogEveryCategoryHasSolutionProfile(t *testing.T) {
	for _, c := range Categories {
		profile, ok := Solutions[c]
		assert.True(t, ok, "missing solution profile for %s", c)
		assert.NotEmpty(t, profile.Name)
		assert.NotEmpty(t, profile.Plans)
	}
}
