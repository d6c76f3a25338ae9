package answerkey

import (
	"context"

	"testprep-server/models"
)

// Source loads the answer key. Implementations read fresh on every call; the
// grading path deliberately carries no cache, so a key update on disk or in
// the database takes effect on the next request.
type Source interface {
	Load(ctx context.Context) ([]models.AnswerKeyEntry, error)
}
