package models

// AnswerKeyEntry is one row of the answer key: the authoritative mapping from
// a question number to its correct option and topical domain.
type AnswerKeyEntry struct {
	QuestionNumber int    `json:"question_number"`
	CorrectOption  string `json:"correct_option"`
	Domain         string `json:"domain,omitempty"` // empty when the key row has no domain
}

// UserAnswer is a single submitted answer. SelectedOption is a pointer so a
// skipped question (null in the JSON payload) is distinguishable from an
// empty string.
type UserAnswer struct {
	QuestionID     int     `json:"questionId"`
	SelectedOption *string `json:"selectedOption"`
}

// CorrectedAnswer is a UserAnswer after grading.
type CorrectedAnswer struct {
	QuestionID     int     `json:"questionId"`
	SelectedOption *string `json:"selectedOption"`
	CorrectAnswer  string  `json:"correctAnswer"`
	IsCorrect      bool    `json:"isCorrect"`
	PointsEarned   int     `json:"pointsEarned"` // 0 or 1
	Domain         string  `json:"domain,omitempty"`
}

// CorrectionResult is the full outcome of grading one submission.
type CorrectionResult struct {
	CorrectedAnswers []CorrectedAnswer `json:"correctedAnswers"`
	Score            int               `json:"score"`
	TotalPossible    int               `json:"totalPossible"`
	Percentage       int               `json:"percentage"`
}

// TestDetails is client-supplied metadata echoed into the report header and
// used to pick grade-appropriate study tips and a grade color.
type TestDetails struct {
	Subject string `json:"subject"`
	Grade   string `json:"grade"`
	Domain  string `json:"domain"`
}

// PdfData is the input to report generation. The answers are trusted as
// already corrected; the renderer does not re-check them against the key.
type PdfData struct {
	Answers     []CorrectedAnswer `json:"answers"`
	TestDetails TestDetails       `json:"testDetails"`
}

// DomainPerformance aggregates correctness for one domain. Domain holds the
// shortened display label for charts (e.g. "EE"); FullDomain retains the
// original string (e.g. "(6.EE)") for tip lookups.
type DomainPerformance struct {
	Domain     string `json:"domain"`
	FullDomain string `json:"fullDomain"`
	Correct    int    `json:"correct"`
	Total      int    `json:"total"`
	Percentage int    `json:"percentage"`
}
