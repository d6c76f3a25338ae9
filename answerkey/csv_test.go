package answerkey_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"testprep-server/answerkey"
	"testprep-server/models"
)

func TestCSVSourceLoad(t *testing.T) {
	src := answerkey.NewCSVSource(filepath.Join("testdata", "answer_key.csv"))
	entries, err := src.Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []models.AnswerKeyEntry{
		{QuestionNumber: 1, CorrectOption: "B", Domain: "(6.EE)"},
		{QuestionNumber: 2, CorrectOption: "A", Domain: "(6.NS)"},
		{QuestionNumber: 3, CorrectOption: "D"},
		{QuestionNumber: 4, CorrectOption: "C", Domain: "(6.RP)"},
	}, entries)
}

func TestCSVSourceMissingFile(t *testing.T) {
	src := answerkey.NewCSVSource(filepath.Join("testdata", "does_not_exist.csv"))
	_, err := src.Load(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open answer key")
}

func TestCSVSourceBadHeader(t *testing.T) {
	src := answerkey.NewCSVSource(filepath.Join("testdata", "bad_header.csv"))
	_, err := src.Load(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "header must contain")
}

func TestCSVSourceBadQuestionNumber(t *testing.T) {
	src := answerkey.NewCSVSource(filepath.Join("testdata", "bad_number.csv"))
	_, err := src.Load(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid question number")
}

func TestCSVSourceRereadsEveryCall(t *testing.T) {
	src := answerkey.NewCSVSource(filepath.Join("testdata", "answer_key.csv"))
	first, err := src.Load(context.Background())
	require.NoError(t, err)
	second, err := src.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
