package answerkey

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"testprep-server/models"
)

// Expected header columns in the answer-key CSV. Domain is optional.
const (
	colQuestionNumber = "Question Number"
	colKey            = "Key"
	colDomain         = "Domain"
)

// CSVSource reads the answer key from a CSV file with columns
// "Question Number,Key,Domain". The path is injected, never resolved
// relative to the package.
type CSVSource struct {
	Path string
}

// NewCSVSource returns a Source backed by the CSV file at path.
func NewCSVSource(path string) *CSVSource {
	return &CSVSource{Path: path}
}

// Load reads and parses the whole key file.
func (s *CSVSource) Load(_ context.Context) ([]models.AnswerKeyEntry, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open answer key %s: %w", s.Path, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1 // rows may omit the Domain column
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read answer key %s: %w", s.Path, err)
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("answer key %s has no data rows", s.Path)
	}

	qIdx, keyIdx, domainIdx, err := headerIndices(rows[0])
	if err != nil {
		return nil, fmt.Errorf("answer key %s: %w", s.Path, err)
	}

	entries := make([]models.AnswerKeyEntry, 0, len(rows)-1)
	for i, row := range rows[1:] {
		lineNum := i + 2 // 1-based, after header
		if qIdx >= len(row) || keyIdx >= len(row) {
			return nil, fmt.Errorf("answer key %s line %d: too few columns", s.Path, lineNum)
		}
		num, err := strconv.Atoi(strings.TrimSpace(row[qIdx]))
		if err != nil {
			return nil, fmt.Errorf("answer key %s line %d: invalid question number %q", s.Path, lineNum, row[qIdx])
		}
		entry := models.AnswerKeyEntry{
			QuestionNumber: num,
			CorrectOption:  strings.TrimSpace(row[keyIdx]),
		}
		if domainIdx >= 0 && domainIdx < len(row) {
			entry.Domain = strings.TrimSpace(row[domainIdx])
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// headerIndices maps the expected column names to their positions. The
// Domain column may be absent (-1).
func headerIndices(header []string) (qIdx, keyIdx, domainIdx int, err error) {
	qIdx, keyIdx, domainIdx = -1, -1, -1
	for i, name := range header {
		switch strings.TrimSpace(name) {
		case colQuestionNumber:
			qIdx = i
		case colKey:
			keyIdx = i
		case colDomain:
			domainIdx = i
		}
	}
	if qIdx < 0 || keyIdx < 0 {
		return 0, 0, 0, fmt.Errorf("header must contain %q and %q columns", colQuestionNumber, colKey)
	}
	return qIdx, keyIdx, domainIdx, nil
}
