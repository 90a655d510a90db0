package service

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
)

type quizDocument struct {
	Quiz *rawQuiz `json:"quiz"`
}

type rawQuiz struct {
	Title        *string        `json:"title"`
	Description  *string        `json:"description"`
	PassingScore *int           `json:"passingScore"`
	Grading      *rawGrading    `json:"grading"`
	Questions    []*rawQuestion `json:"questions"`
}

type rawGrading struct {
	Excellent *rawTier `json:"excellent"`
	VeryGood  *rawTier `json:"veryGood"`
	Good      *rawTier `json:"good"`
	Fair      *rawTier `json:"fair"`
	Poor      *rawTier `json:"poor"`
}

type rawTier struct {
	Min     *int    `json:"min"`
	Message *string `json:"message"`
}

type rawQuestion struct {
	ID            *string  `json:"id"`
	Section       *string  `json:"section"`
	Question      *string  `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer *int     `json:"correctAnswer"`
	Explanation   *string  `json:"explanation"`
}

// ParseQuiz reads and validates the quiz document at filename.
func ParseQuiz(filename string) (*Quiz, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrQuizNotFound, filename)
		}
		return nil, fmt.Errorf("failed to read quiz file: %w", err)
	}

	return DecodeQuiz(bytes.NewReader(data))
}

// DecodeQuiz decodes a quiz document from r.
func DecodeQuiz(r io.Reader) (*Quiz, error) {
	var doc quizDocument
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, &ParseError{Reason: "malformed JSON", Err: err}
	}
	if doc.Quiz == nil {
		return nil, missingField("quiz")
	}

	return doc.Quiz.toQuiz()
}

func (rq *rawQuiz) toQuiz() (*Quiz, error) {
	if rq.Title == nil {
		return nil, missingField("quiz.title")
	}
	if rq.Description == nil {
		return nil, missingField("quiz.description")
	}
	if rq.PassingScore == nil {
		return nil, missingField("quiz.passingScore")
	}

	grading, err := rq.Grading.toTable()
	if err != nil {
		return nil, err
	}

	if len(rq.Questions) == 0 {
		return nil, invalidField("quiz.questions", "no questions found")
	}

	questions := make([]QuizQuestion, 0, len(rq.Questions))
	seen := make(map[string]bool, len(rq.Questions))
	for i, raw := range rq.Questions {
		field := fmt.Sprintf("quiz.questions[%d]", i)
		question, err := raw.toQuestion(field)
		if err != nil {
			return nil, err
		}
		if seen[question.ID] {
			return nil, invalidField(field+".id", "duplicate id %q", question.ID)
		}
		seen[question.ID] = true
		questions = append(questions, question)
	}

	return &Quiz{
		Title:        *rq.Title,
		Description:  *rq.Description,
		PassingScore: *rq.PassingScore,
		Grading:      grading,
		Questions:    questions,
	}, nil
}

func (rg *rawGrading) toTable() (GradingTable, error) {
	if rg == nil {
		return nil, missingField("quiz.grading")
	}

	tiers := map[string]*rawTier{
		TierExcellent: rg.Excellent,
		TierVeryGood:  rg.VeryGood,
		TierGood:      rg.Good,
		TierFair:      rg.Fair,
		TierPoor:      rg.Poor,
	}

	table := make(GradingTable, 0, len(TierOrder))
	for _, name := range TierOrder {
		field := "quiz.grading." + name
		raw := tiers[name]
		if raw == nil {
			return nil, missingField(field)
		}
		if raw.Message == nil {
			return nil, missingField(field + ".message")
		}

		tier := Tier{Name: name, Message: *raw.Message}
		switch {
		case raw.Min != nil:
			tier.Min = *raw.Min
		case name != TierPoor:
			return nil, missingField(field + ".min")
		}
		table = append(table, tier)
	}

	return table, nil
}

func (rq *rawQuestion) toQuestion(field string) (QuizQuestion, error) {
	if rq == nil {
		return QuizQuestion{}, missingField(field)
	}

	required := []struct {
		name  string
		value *string
	}{
		{"id", rq.ID},
		{"section", rq.Section},
		{"question", rq.Question},
		{"explanation", rq.Explanation},
	}
	for _, r := range required {
		if r.value == nil {
			return QuizQuestion{}, missingField(field + "." + r.name)
		}
	}

	if strings.TrimSpace(*rq.ID) == "" {
		return QuizQuestion{}, invalidField(field+".id", "id cannot be empty")
	}
	if len(rq.Options) < 2 {
		return QuizQuestion{}, invalidField(field+".options", "need at least 2 options, got %d", len(rq.Options))
	}
	if len(rq.Options) > 26 {
		return QuizQuestion{}, invalidField(field+".options", "at most 26 options are supported, got %d", len(rq.Options))
	}
	if rq.CorrectAnswer == nil {
		return QuizQuestion{}, missingField(field + ".correctAnswer")
	}
	if *rq.CorrectAnswer < 0 || *rq.CorrectAnswer >= len(rq.Options) {
		return QuizQuestion{}, invalidField(field+".correctAnswer", "index %d out of range for %d options", *rq.CorrectAnswer, len(rq.Options))
	}

	return QuizQuestion{
		ID:          *rq.ID,
		Section:     *rq.Section,
		Question:    *rq.Question,
		Options:     append([]string(nil), rq.Options...),
		Correct:     *rq.CorrectAnswer,
		Explanation: *rq.Explanation,
	}, nil
}

// LoadQuiz parses the quiz file and reports the number of loaded questions
// to w.
func LoadQuiz(filename string, w io.Writer) (*Quiz, error) {
	quiz, err := ParseQuiz(filename)
	if err != nil {
		return nil, err
	}

	fmt.Fprintf(w, "✓ Quiz data loaded successfully: %d questions\n", len(quiz.Questions))
	return quiz, nil
}
