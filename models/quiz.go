package models

// QuizAnswer is the selected point value for one question.
type QuizAnswer struct {
	QuestionIndex int `json:"question"`
	PointValue    int `json:"points"`
}

// QuizResult is the skin phototype derived from a quiz score.
type QuizResult struct {
	Score       int    `json:"score"`
	SkinType    string `json:"skin_type"`
	Title       string `json:"title"`
	Description string `json:"description"`
	ColorClass  string `json:"color_class"`
}

// QuizState is what the quiz panel shows: current selections and, once scored, the result.
type QuizState struct {
	Answers []QuizAnswer `json:"answers"`
	Result  *QuizResult  `json:"result,omitempty"`
}
