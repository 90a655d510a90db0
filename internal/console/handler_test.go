package console

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/PoluyanbIch/GoQuiz/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testQuestion struct {
	ID            string   `json:"id"`
	Section       string   `json:"section"`
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correctAnswer"`
	Explanation   string   `json:"explanation"`
}

func writeQuiz(t *testing.T, passingScore int, questions []testQuestion) string {
	t.Helper()

	tier := func(minScore int, message string) map[string]any {
		return map[string]any{"min": minScore, "message": message}
	}
	doc := map[string]any{
		"quiz": map[string]any{
			"title":        "Agile Quiz",
			"description":  "Test your Agile knowledge.",
			"passingScore": passingScore,
			"grading": map[string]any{
				"excellent": tier(2, "Outstanding"),
				"veryGood":  tier(1, "Very good"),
				"good":      tier(1, "Good"),
				"fair":      tier(0, "Fair"),
				"poor":      tier(0, "Poor"),
			},
			"questions": questions,
		},
	}

	data, err := json.Marshal(doc)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "quiz.json")
	require.NoError(t, os.WriteFile(path, data, 0644))
	return path
}

func twoQuestions() []testQuestion {
	return []testQuestion{
		{ID: "q1", Section: "Scrum", Question: "Who owns the backlog?", Options: []string{"Product Owner", "Scrum Master"}, CorrectAnswer: 0, Explanation: "The PO owns it."},
		{ID: "q2", Section: "Principles", Question: "Working software over?", Options: []string{"Tools", "Documentation", "Contracts"}, CorrectAnswer: 1, Explanation: "Comprehensive documentation."},
	}
}

func runApp(t *testing.T, path, input string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	app := NewApp(New(strings.NewReader(input), &out), path, log.New(io.Discard, "", 0))
	err := app.Run()
	return out.String(), err
}

func TestRunWithExplanations(t *testing.T) {
	path := writeQuiz(t, 1, twoQuestions())

	out, err := runApp(t, path, "y\nn\n\na\na\n")
	require.NoError(t, err)

	assert.Contains(t, out, "✓ Quiz data loaded successfully: 2 questions")
	assert.Contains(t, out, "           Agile Quiz")
	assert.Contains(t, out, "Passing Score: 1/2")
	assert.NotContains(t, out, "Questions shuffled!")
	assert.Contains(t, out, "Question 1/2\nSection: Scrum\n")
	assert.Contains(t, out, "a) Product Owner\nb) Scrum Master\n")
	assert.Contains(t, out, "Your answer (a-c): ")
	assert.Contains(t, out, "✓ CORRECT!")
	assert.Contains(t, out, "✗ INCORRECT\nCorrect answer: b) Documentation\n")
	assert.Contains(t, out, "Explanation: Comprehensive documentation.")
	assert.Contains(t, out, "Progress: 2/2 questions completed")

	assert.Contains(t, out, "Score: 1/2 (50.0%)")
	assert.Contains(t, out, "Grade: Very good")
	assert.Contains(t, out, "Result: PASSED ✓")
	assert.Contains(t, out, "  Scrum: 1/1 (100.0%)\n  Principles: 0/1 (0.0%)\n")
	assert.NotContains(t, out, "Review of Incorrect Answers:")
	assert.Contains(t, out, "- Practice PERT and project cost exercises.")
	assert.NotContains(t, out, "Excellent work!")

	// Scrum comes first in the breakdown
	assert.Less(t, strings.Index(out, "  Scrum:"), strings.Index(out, "  Principles:"))
}

func TestRunRejectsInvalidChoices(t *testing.T) {
	path := writeQuiz(t, 2, twoQuestions())

	out, err := runApp(t, path, "no\nNO\n\nz\nA\n\nab\na\nb\n")
	require.NoError(t, err)

	assert.Equal(t, 4, strings.Count(out, "Invalid input. Please enter a letter from 'a' to 'b'"))
	assert.Equal(t, 0, strings.Count(out, "from 'a' to 'c'"))
	assert.Contains(t, out, "Score: 2/2 (100.0%)")
	assert.Contains(t, out, "Grade: Outstanding")
	assert.Contains(t, out, "- Excellent work! Maintain your knowledge with occasional reviews.")
	assert.NotContains(t, out, "✓ CORRECT!")
}

func TestRunRecoversFromOverlongAnswer(t *testing.T) {
	path := writeQuiz(t, 1, twoQuestions())

	out, err := runApp(t, path, "y\nn\n\n"+strings.Repeat("x", 70000)+"\na\na\n")
	require.NoError(t, err)

	assert.Equal(t, 1, strings.Count(out, "Invalid input. Please enter a letter from 'a' to 'b'"))
	assert.Contains(t, out, "QUIZ COMPLETED")
	assert.Contains(t, out, "Score: 1/2 (50.0%)")
}

func TestRunReviewsMissedQuestions(t *testing.T) {
	path := writeQuiz(t, 2, twoQuestions())

	out, err := runApp(t, path, "n\nn\n\nb\nb\n")
	require.NoError(t, err)

	assert.Contains(t, out, "Score: 1/2 (50.0%)")
	assert.Contains(t, out, "Result: FAILED ✗")
	assert.Contains(t, out, "Review of Incorrect Answers:\nQ1: Who owns the backlog?\n   Correct: Product Owner\n   Explanation: The PO owns it.\n")
	assert.NotContains(t, out, "Q2:")
}

func TestRunShuffleAnswersEveryQuestion(t *testing.T) {
	questions := make([]testQuestion, 12)
	for i := range questions {
		questions[i] = testQuestion{
			ID:          fmt.Sprintf("q%d", i+1),
			Section:     "Scrum",
			Question:    fmt.Sprintf("Question number %d", i+1),
			Options:     []string{"yes", "no"},
			Explanation: "because",
		}
	}
	path := writeQuiz(t, 12, questions)

	input := "n\nYes\n\n" + strings.Repeat("a\n", len(questions))
	out, err := runApp(t, path, input)
	require.NoError(t, err)

	assert.Contains(t, out, "Questions shuffled!")
	for i := range questions {
		assert.Equal(t, 1, strings.Count(out, fmt.Sprintf("Question number %d\n", i+1)))
	}
	assert.Contains(t, out, "Progress: 10/12 questions completed")
	assert.NotContains(t, out, "Progress: 11/12")
	assert.Contains(t, out, "Progress: 12/12 questions completed")
	assert.Contains(t, out, "Score: 12/12 (100.0%)")
	assert.Contains(t, out, "  Scrum: 12/12 (100.0%)")
}

func TestRunRoundsPercentageTiesUp(t *testing.T) {
	questions := make([]testQuestion, 16)
	for i := range questions {
		questions[i] = testQuestion{
			ID:          fmt.Sprintf("q%d", i+1),
			Section:     "PERT",
			Question:    fmt.Sprintf("Estimate %d", i+1),
			Options:     []string{"right", "wrong"},
			Explanation: "because",
		}
	}
	path := writeQuiz(t, 8, questions)

	input := "n\nn\n\na\n" + strings.Repeat("b\n", 15)
	out, err := runApp(t, path, input)
	require.NoError(t, err)

	assert.Contains(t, out, "Score: 1/16 (6.3%)")
	assert.Contains(t, out, "  PERT: 1/16 (6.3%)")
}

func TestRunMissingQuizFile(t *testing.T) {
	out, err := runApp(t, filepath.Join(t.TempDir(), "agile_quiz.json"), "y\ny\n\n")

	assert.ErrorIs(t, err, service.ErrQuizNotFound)
	assert.NotContains(t, out, "Question 1")
	assert.NotContains(t, out, "Score:")
}

func TestRunMalformedQuizFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quiz.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"quiz": {"title": "x"}}`), 0644))

	out, err := runApp(t, path, "")

	var parseErr *service.ParseError
	assert.ErrorAs(t, err, &parseErr)
	assert.Empty(t, out)
}

func TestRunInputClosed(t *testing.T) {
	path := writeQuiz(t, 1, twoQuestions())

	out, err := runApp(t, path, "y\nn\n\na\n")

	assert.ErrorIs(t, err, ErrInputClosed)
	assert.NotContains(t, out, "QUIZ COMPLETED")
}

func TestRunLogsSession(t *testing.T) {
	path := writeQuiz(t, 1, twoQuestions())

	var out, logs bytes.Buffer
	app := NewApp(New(strings.NewReader("y\nn\n\na\nb\n"), &out), path, log.New(&logs, "", 0))
	require.NoError(t, app.Run())

	assert.Contains(t, logs.String(), "started: 2 questions, explanations=true, shuffle=false")
	assert.Contains(t, logs.String(), "question q2 answered b, correct=true")
	assert.Contains(t, logs.String(), "finished: 2/2")
	assert.NotContains(t, out.String(), "started:")
}

func TestParseChoice(t *testing.T) {
	testCases := []struct {
		input  string
		choice int
		ok     bool
	}{
		{"a", 0, true},
		{"b", 1, true},
		{"d", 3, true},
		{" c ", 2, true},
		{"e", 0, false},
		{"A", 0, false},
		{"", 0, false},
		{"ab", 0, false},
		{"1", 0, false},
		{"é", 0, false},
	}

	for _, tc := range testCases {
		t.Run(fmt.Sprintf("%q", tc.input), func(t *testing.T) {
			choice, ok := ParseChoice(tc.input, 4)
			assert.Equal(t, tc.ok, ok)
			if tc.ok {
				assert.Equal(t, tc.choice, choice)
			}
		})
	}
}

func TestIsYes(t *testing.T) {
	for _, reply := range []string{"y", "Y", "yes", "YES", " Yes "} {
		assert.True(t, IsYes(reply), reply)
	}
	for _, reply := range []string{"", "n", "no", "yep", "ye"} {
		assert.False(t, IsYes(reply), reply)
	}
}
