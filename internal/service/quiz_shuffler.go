package service

import (
	"math/rand"
	"time"
)

// ShuffleQuestions returns the questions in random order. The input slice
// is left untouched.
func ShuffleQuestions(questions []QuizQuestion) []QuizQuestion {
	return ShuffleQuestionsWith(questions, rand.New(rand.NewSource(time.Now().UnixNano())))
}

// ShuffleQuestionsWith shuffles a copy of questions with r (Fisher-Yates).
func ShuffleQuestionsWith(questions []QuizQuestion, r *rand.Rand) []QuizQuestion {
	shuffled := make([]QuizQuestion, len(questions))
	copy(shuffled, questions)

	for i := len(shuffled) - 1; i > 0; i-- {
		j := r.Intn(i + 1)
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	}

	return shuffled
}
