package service

import "github.com/google/uuid"

// Quiz is the loaded quiz document. It is not modified after loading.
type Quiz struct {
	Title        string
	Description  string
	PassingScore int
	Grading      GradingTable
	Questions    []QuizQuestion
}

type QuizQuestion struct {
	ID          string
	Section     string
	Question    string
	Options     []string
	Correct     int
	Explanation string
}

// CorrectOption returns the text of the correct option.
func (q QuizQuestion) CorrectOption() string {
	return q.Options[q.Correct]
}

type UserAnswer struct {
	QuestionID string
	Choice     int
	IsCorrect  bool
}

type SessionConfig struct {
	ShowExplanations bool
	ShuffleQuestions bool
}

// QuizSession holds one run: the questions in presentation order and the
// answers recorded so far, one per presented question.
type QuizSession struct {
	ID        uuid.UUID
	Config    SessionConfig
	Questions []QuizQuestion
	Answers   []UserAnswer
}

// NewQuizSession prepares a session over the quiz questions, shuffling a
// copy of them when the config asks for it.
func NewQuizSession(quiz *Quiz, cfg SessionConfig) *QuizSession {
	questions := quiz.Questions
	if cfg.ShuffleQuestions {
		questions = ShuffleQuestions(questions)
	} else {
		questions = append([]QuizQuestion(nil), questions...)
	}

	return &QuizSession{
		ID:        uuid.New(),
		Config:    cfg,
		Questions: questions,
		Answers:   make([]UserAnswer, 0, len(questions)),
	}
}

// CurrentQuestion is the index of the next question to be answered.
func (s *QuizSession) CurrentQuestion() int {
	return len(s.Answers)
}

// Finished reports whether every question has an answer.
func (s *QuizSession) Finished() bool {
	return len(s.Answers) >= len(s.Questions)
}

// Answer records the choice for the current question and returns the
// resulting answer.
func (s *QuizSession) Answer(choice int) UserAnswer {
	question := s.Questions[s.CurrentQuestion()]
	answer := UserAnswer{
		QuestionID: question.ID,
		Choice:     choice,
		IsCorrect:  choice == question.Correct,
	}
	s.Answers = append(s.Answers, answer)
	return answer
}

// Score counts the correct answers.
func (s *QuizSession) Score() int {
	score := 0
	for _, a := range s.Answers {
		if a.IsCorrect {
			score++
		}
	}
	return score
}
