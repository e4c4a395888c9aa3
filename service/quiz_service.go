package services

import (
	"fmt"
	"log"
	"sort"
	"sync"

	"uv-dashboard/models"
)

const QUIZ_QUESTIONS = 3

// Phototypes by minimum score, checked highest first.
var skinTypes = []struct {
	minScore    int
	skinType    string
	description string
	colorClass  string
}{
	{10, "I", "Very fair skin, always burns, never tans", "from-pink-200 to-pink-100"},
	{7, "II", "Fair skin, burns easily, tans minimally", "from-pink-300 to-pink-100"},
	{5, "III", "Medium skin, sometimes burns, gradually tans", "from-yellow-600 to-yellow-400"},
	{3, "IV", "Olive skin, rarely burns, tans easily", "from-yellow-800 to-yellow-600"},
	{1, "V", "Brown skin, very rarely burns, tans darkly", "from-brown-600 to-brown-400"},
}

var skinTypeVI = models.QuizResult{
	SkinType:    "VI",
	Description: "Dark brown or black skin, never burns",
	ColorClass:  "from-gray-900 to-gray-800",
}

// ScoreSkinType maps a quiz score to a skin phototype.
func ScoreSkinType(score int) models.QuizResult {
	result := skinTypeVI
	for _, st := range skinTypes {
		if score >= st.minScore {
			result = models.QuizResult{SkinType: st.skinType, Description: st.description, ColorClass: st.colorClass}
			break
		}
	}
	result.Score = score
	result.Title = "Skin Type " + result.SkinType
	return result
}

// QuizService holds the single quiz session of the dashboard.
type QuizService struct {
	mu         sync.Mutex
	selections map[int]int
	result     *models.QuizResult
}

func NewQuizService() *QuizService {
	return &QuizService{selections: make(map[int]int)}
}

// Select records points for a question, replacing any earlier answer to it.
func (qs *QuizService) Select(question, points int) error {
	if question < 0 || question >= QUIZ_QUESTIONS {
		return fmt.Errorf("%w: %d", ErrInvalidQuestion, question)
	}
	qs.mu.Lock()
	defer qs.mu.Unlock()
	qs.selections[question] = points
	return nil
}

// Submit scores the quiz once every question has an answer.
func (qs *QuizService) Submit() (*models.QuizResult, error) {
	qs.mu.Lock()
	defer qs.mu.Unlock()

	if len(qs.selections) < QUIZ_QUESTIONS {
		return nil, ErrIncompleteQuiz
	}
	score := 0
	for _, points := range qs.selections {
		score += points
	}
	result := ScoreSkinType(score)
	qs.result = &result
	log.Printf("[QuizService] Score %d -> %s", score, result.Title)

	out := result
	return &out, nil
}

// Retake clears every selection and hides the result.
func (qs *QuizService) Retake() {
	qs.mu.Lock()
	defer qs.mu.Unlock()
	qs.selections = make(map[int]int)
	qs.result = nil
}

// State returns the selections ordered by question and the visible result.
func (qs *QuizService) State() models.QuizState {
	qs.mu.Lock()
	defer qs.mu.Unlock()

	state := models.QuizState{Answers: make([]models.QuizAnswer, 0, len(qs.selections))}
	for q, p := range qs.selections {
		state.Answers = append(state.Answers, models.QuizAnswer{QuestionIndex: q, PointValue: p})
	}
	sort.Slice(state.Answers, func(i, j int) bool {
		return state.Answers[i].QuestionIndex < state.Answers[j].QuestionIndex
	})
	if qs.result != nil {
		r := *qs.result
		state.Result = &r
	}
	return state
}
