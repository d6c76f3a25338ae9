package grading

import (
	"fmt"
	"math"

	"testprep-server/models"
)

// Correct grades a batch of answers against the given key. The key is passed
// in rather than loaded here, so the engine stays a pure function.
//
// Grading is all-or-nothing: if any submitted question id has no key entry,
// the whole batch fails and no partial result is returned.
func Correct(key []models.AnswerKeyEntry, answers []models.UserAnswer) (models.CorrectionResult, error) {
	byNumber := make(map[int]models.AnswerKeyEntry, len(key))
	for _, entry := range key {
		byNumber[entry.QuestionNumber] = entry
	}

	corrected := make([]models.CorrectedAnswer, 0, len(answers))
	score := 0
	for _, ans := range answers {
		entry, ok := byNumber[ans.QuestionID]
		if !ok {
			return models.CorrectionResult{}, fmt.Errorf("answer key has no entry for question %d", ans.QuestionID)
		}
		// Strict string equality; a nil selection never matches.
		isCorrect := ans.SelectedOption != nil && *ans.SelectedOption == entry.CorrectOption
		points := 0
		if isCorrect {
			points = 1
			score++
		}
		corrected = append(corrected, models.CorrectedAnswer{
			QuestionID:     ans.QuestionID,
			SelectedOption: ans.SelectedOption,
			CorrectAnswer:  entry.CorrectOption,
			IsCorrect:      isCorrect,
			PointsEarned:   points,
			Domain:         entry.Domain,
		})
	}

	return models.CorrectionResult{
		CorrectedAnswers: corrected,
		Score:            score,
		TotalPossible:    len(corrected),
		Percentage:       Percentage(score, len(corrected)),
	}, nil
}

// Percentage returns round(correct/total*100), with 0 for an empty total so
// an empty batch has a defined result instead of a division by zero.
func Percentage(correct, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(correct) / float64(total) * 100))
}
