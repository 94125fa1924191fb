package score

// ScoreError is a custom error type for score-related errors
type ScoreError string

// Error implements the error interface
func (e ScoreError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrGameNotFinished ScoreError = "game is not finished"
	ErrNoWinner        ScoreError = "finished game has no winner"
	ErrNilGame         ScoreError = "game cannot be nil"
	ErrNilConfig       ScoreError = "config cannot be nil"
	ErrNilScoreRepo    ScoreError = "score repository cannot be nil"
	ErrNilUserRepo     ScoreError = "user repository cannot be nil"
	ErrNilClock        ScoreError = "clock cannot be nil"
)
