package service

import "github.com/shopspring/decimal"

type SectionStat struct {
	Section string
	Correct int
	Total   int
}

func (s SectionStat) Percentage() float64 {
	return percentage(s.Correct, s.Total)
}

// MissedQuestion is a wrongly answered question; Number is its 1-based
// position in the session.
type MissedQuestion struct {
	Number   int
	Question QuizQuestion
	Answer   UserAnswer
}

type Results struct {
	Correct    int
	Total      int
	Percentage float64
	Grade      Tier
	Passed     bool
	Sections   []SectionStat
	Missed     []MissedQuestion
}

// Perfect reports whether every question was answered correctly.
func (r Results) Perfect() bool {
	return r.Correct == r.Total
}

// Evaluate scores a finished session against the quiz grading rules.
func Evaluate(quiz *Quiz, session *QuizSession) Results {
	correct := session.Score()
	total := len(session.Questions)

	return Results{
		Correct:    correct,
		Total:      total,
		Percentage: percentage(correct, total),
		Grade:      quiz.Grading.Grade(correct),
		Passed:     correct >= quiz.PassingScore,
		Sections:   SectionBreakdown(session.Questions, session.Answers),
		Missed:     MissedQuestions(session.Questions, session.Answers),
	}
}

// SectionBreakdown groups answers by section, keeping the order in which
// sections first appear.
func SectionBreakdown(questions []QuizQuestion, answers []UserAnswer) []SectionStat {
	var stats []SectionStat
	index := make(map[string]int)

	for i, q := range questions {
		if i >= len(answers) {
			break
		}
		pos, ok := index[q.Section]
		if !ok {
			pos = len(stats)
			index[q.Section] = pos
			stats = append(stats, SectionStat{Section: q.Section})
		}
		stats[pos].Total++
		if answers[i].IsCorrect {
			stats[pos].Correct++
		}
	}

	return stats
}

// MissedQuestions lists the wrongly answered questions in session order.
func MissedQuestions(questions []QuizQuestion, answers []UserAnswer) []MissedQuestion {
	var missed []MissedQuestion
	for i, a := range answers {
		if a.IsCorrect || i >= len(questions) {
			continue
		}
		missed = append(missed, MissedQuestion{Number: i + 1, Question: questions[i], Answer: a})
	}
	return missed
}

func percentage(correct, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(correct) / float64(total) * 100
}

// FormatPercentage renders a percentage with one decimal, rounding ties
// away from zero on the shortest decimal form of v (6.25 -> "6.3").
func FormatPercentage(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(1)
}
