package constants

// Board sizing for the trivia game.
const (
	TriviaCategoryCount      = 5
	TriviaQuestionsPerColumn = 5

	// TriviaBonusCategory is drawn from separately and never appears on
	// the board itself.
	TriviaBonusCategory = "Bonus"
)
