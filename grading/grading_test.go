package grading_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"testprep-server/grading"
	"testprep-server/models"
)

func strPtr(s string) *string { return &s }

func testKey() []models.AnswerKeyEntry {
	return []models.AnswerKeyEntry{
		{QuestionNumber: 1, CorrectOption: "B", Domain: "(6.EE)"},
		{QuestionNumber: 2, CorrectOption: "A", Domain: "(6.NS)"},
		{QuestionNumber: 3, CorrectOption: "D", Domain: "(6.EE)"},
		{QuestionNumber: 4, CorrectOption: "C"},
	}
}

func TestCorrectSingleRightAnswer(t *testing.T) {
	result, err := grading.Correct(testKey(), []models.UserAnswer{
		{QuestionID: 1, SelectedOption: strPtr("B")},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, result.Score)
	assert.Equal(t, 1, result.TotalPossible)
	assert.Equal(t, 100, result.Percentage)
	require.Len(t, result.CorrectedAnswers, 1)
	assert.True(t, result.CorrectedAnswers[0].IsCorrect)
	assert.Equal(t, 1, result.CorrectedAnswers[0].PointsEarned)
	assert.Equal(t, "B", result.CorrectedAnswers[0].CorrectAnswer)
	assert.Equal(t, "(6.EE)", result.CorrectedAnswers[0].Domain)
}

func TestCorrectSingleWrongAnswer(t *testing.T) {
	result, err := grading.Correct(testKey(), []models.UserAnswer{
		{QuestionID: 1, SelectedOption: strPtr("A")},
	})
	require.NoError(t, err)
	assert.Equal(t, 0, result.Score)
	assert.Equal(t, 1, result.TotalPossible)
	assert.Equal(t, 0, result.Percentage)
	assert.False(t, result.CorrectedAnswers[0].IsCorrect)
	assert.Equal(t, 0, result.CorrectedAnswers[0].PointsEarned)
}

func TestNilSelectionIsNeverCorrect(t *testing.T) {
	result, err := grading.Correct(testKey(), []models.UserAnswer{
		{QuestionID: 1, SelectedOption: nil},
	})
	require.NoError(t, err)
	assert.False(t, result.CorrectedAnswers[0].IsCorrect)
	assert.Equal(t, 0, result.Score)
}

func TestMissingKeyEntryFailsWholeBatch(t *testing.T) {
	_, err := grading.Correct(testKey(), []models.UserAnswer{
		{QuestionID: 1, SelectedOption: strPtr("B")},
		{QuestionID: 99, SelectedOption: strPtr("A")},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "question 99")
}

func TestScoreConservationAndCompleteness(t *testing.T) {
	answers := []models.UserAnswer{
		{QuestionID: 1, SelectedOption: strPtr("B")},
		{QuestionID: 2, SelectedOption: strPtr("C")},
		{QuestionID: 3, SelectedOption: strPtr("D")},
		{QuestionID: 4, SelectedOption: nil},
	}
	result, err := grading.Correct(testKey(), answers)
	require.NoError(t, err)

	assert.Len(t, result.CorrectedAnswers, len(answers))
	correctCount := 0
	for _, ca := range result.CorrectedAnswers {
		if ca.IsCorrect {
			correctCount++
		}
	}
	assert.Equal(t, result.Score, correctCount)
	assert.LessOrEqual(t, result.Score, result.TotalPossible)
	assert.Equal(t, 2, result.Score)
	assert.Equal(t, 50, result.Percentage)
}

func TestCorrectIsDeterministic(t *testing.T) {
	answers := []models.UserAnswer{
		{QuestionID: 1, SelectedOption: strPtr("B")},
		{QuestionID: 2, SelectedOption: strPtr("A")},
	}
	first, err := grading.Correct(testKey(), answers)
	require.NoError(t, err)
	second, err := grading.Correct(testKey(), answers)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestEmptyBatchHasDefinedResult(t *testing.T) {
	result, err := grading.Correct(testKey(), nil)
	require.NoError(t, err)
	assert.Equal(t, 0, result.Score)
	assert.Equal(t, 0, result.TotalPossible)
	assert.Equal(t, 0, result.Percentage)
	assert.Empty(t, result.CorrectedAnswers)
}

func TestPercentageRounding(t *testing.T) {
	assert.Equal(t, 67, grading.Percentage(2, 3))
	assert.Equal(t, 33, grading.Percentage(1, 3))
	assert.Equal(t, 50, grading.Percentage(1, 2))
	assert.Equal(t, 0, grading.Percentage(0, 0))
}
