package console

import (
	"fmt"
	"log"
	"strings"

	"github.com/PoluyanbIch/GoQuiz/internal/service"
)

const (
	wideRule   = 60
	headerRule = 50
	resultRule = 30

	progressEvery = 10
)

type App struct {
	console  *Console
	logger   *log.Logger
	quizFile string
}

func NewApp(console *Console, quizFile string, logger *log.Logger) *App {
	return &App{
		console:  console,
		logger:   logger,
		quizFile: quizFile,
	}
}

// Run loads the quiz, asks for the session preferences, presents every
// question and prints the report. A load error aborts before any question
// is shown.
func (a *App) Run() error {
	quiz, err := service.LoadQuiz(a.quizFile, a.console.Writer())
	if err != nil {
		return err
	}

	a.sendWelcome(quiz)

	cfg, err := a.configure()
	if err != nil {
		return err
	}

	session := service.NewQuizSession(quiz, cfg)
	a.logger.Printf("session %s started: %d questions, explanations=%t, shuffle=%t",
		session.ID, len(session.Questions), cfg.ShowExplanations, cfg.ShuffleQuestions)

	if err := a.startQuiz(session); err != nil {
		return err
	}

	a.finishQuiz(quiz, session)
	a.logger.Printf("session %s finished: %d/%d", session.ID, session.Score(), len(session.Questions))
	return nil
}

func (a *App) sendWelcome(quiz *service.Quiz) {
	a.console.Println("\n" + rule("=", wideRule))
	a.console.Println("           " + quiz.Title)
	a.console.Println(rule("=", wideRule))
	a.console.Println(quiz.Description)
	a.console.Printf("\nTotal Questions: %d\n", len(quiz.Questions))
	a.console.Printf("Passing Score: %d/%d\n", quiz.PassingScore, len(quiz.Questions))
	a.console.Println(rule("=", wideRule))
}

func (a *App) configure() (service.SessionConfig, error) {
	var cfg service.SessionConfig

	answer, err := a.console.Prompt("\nDo you want to see explanations after each question? (y/n): ")
	if err != nil {
		return cfg, err
	}
	cfg.ShowExplanations = IsYes(answer)

	answer, err = a.console.Prompt("\nDo you want to shuffle questions? (y/n): ")
	if err != nil {
		return cfg, err
	}
	cfg.ShuffleQuestions = IsYes(answer)
	if cfg.ShuffleQuestions {
		a.console.Println("Questions shuffled!")
	}

	a.console.Println("\nPress Enter to start the quiz...")
	if _, err := a.console.ReadLine(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// IsYes reports whether the reply is an affirmative "y" or "yes", ignoring
// case and surrounding spaces.
func IsYes(reply string) bool {
	reply = strings.ToLower(strings.TrimSpace(reply))
	return reply == "y" || reply == "yes"
}

func (a *App) startQuiz(session *service.QuizSession) error {
	a.console.Println("\n" + rule("=", wideRule))
	a.console.Println("                    QUIZ STARTED")
	a.console.Println(rule("=", wideRule))

	total := len(session.Questions)
	for !session.Finished() {
		index := session.CurrentQuestion()
		question := session.Questions[index]
		a.sendQuestion(index+1, total, question)

		choice, err := a.readChoice(len(question.Options))
		if err != nil {
			return err
		}
		a.handleQuizAnswer(session, question, choice)

		if done := index + 1; done%progressEvery == 0 || done == total {
			a.console.Printf("\nProgress: %d/%d questions completed\n", done, total)
		}
		a.console.Println()
	}

	return nil
}

func (a *App) sendQuestion(number, total int, question service.QuizQuestion) {
	a.console.Printf("Question %d/%d\n", number, total)
	a.console.Println("Section: " + question.Section)
	a.console.Println(rule("-", headerRule))
	a.console.Println(question.Question)
	a.console.Println()

	for i, option := range question.Options {
		a.console.Printf("%c) %s\n", OptionLetter(i), option)
	}
}

// readChoice prompts until the reply names one of the options.
func (a *App) readChoice(options int) (int, error) {
	last := OptionLetter(options - 1)
	for {
		reply, err := a.console.Prompt(fmt.Sprintf("\nYour answer (a-%c): ", last))
		if err != nil {
			return 0, err
		}

		if choice, ok := ParseChoice(reply, options); ok {
			return choice, nil
		}

		a.console.Printf("Invalid input. Please enter a letter from 'a' to '%c'\n", last)
	}
}

// ParseChoice maps a single lowercase letter to an option index. Anything
// else, including uppercase letters, is rejected.
func ParseChoice(reply string, options int) (int, bool) {
	reply = strings.TrimSpace(reply)
	if len(reply) != 1 {
		return 0, false
	}

	c := reply[0]
	if c < 'a' || int(c-'a') >= options {
		return 0, false
	}
	return int(c - 'a'), true
}

// OptionLetter is the display letter of the option at index i.
func OptionLetter(i int) rune {
	return rune('a' + i)
}

func (a *App) handleQuizAnswer(session *service.QuizSession, question service.QuizQuestion, choice int) {
	answer := session.Answer(choice)
	a.logger.Printf("session %s: question %s answered %c, correct=%t",
		session.ID, answer.QuestionID, OptionLetter(choice), answer.IsCorrect)

	if !session.Config.ShowExplanations {
		return
	}

	a.console.Println("\n" + rule("-", resultRule))
	if answer.IsCorrect {
		a.console.Println("✓ CORRECT!")
	} else {
		a.console.Println("✗ INCORRECT")
		a.console.Printf("Correct answer: %c) %s\n", OptionLetter(question.Correct), question.CorrectOption())
	}
	a.console.Println("\nExplanation: " + question.Explanation)
	a.console.Println(rule("-", resultRule))
}

func (a *App) finishQuiz(quiz *service.Quiz, session *service.QuizSession) {
	results := service.Evaluate(quiz, session)

	a.console.Println("\n" + rule("=", wideRule))
	a.console.Println("                   QUIZ COMPLETED")
	a.console.Println(rule("=", wideRule))

	a.console.Printf("Score: %d/%d (%s%%)\n", results.Correct, results.Total, service.FormatPercentage(results.Percentage))
	a.console.Println("Grade: " + results.Grade.Message)
	if results.Passed {
		a.console.Println("Result: PASSED ✓")
	} else {
		a.console.Println("Result: FAILED ✗")
	}

	a.console.Println("\nSection Breakdown:")
	for _, s := range results.Sections {
		a.console.Printf("  %s: %d/%d (%s%%)\n", s.Section, s.Correct, s.Total, service.FormatPercentage(s.Percentage()))
	}

	if !session.Config.ShowExplanations {
		a.sendReview(results.Missed)
	}

	a.sendRecommendations(results)
}

func (a *App) sendReview(missed []service.MissedQuestion) {
	a.console.Println("\nReview of Incorrect Answers:")
	for _, m := range missed {
		a.console.Printf("Q%d: %s\n", m.Number, m.Question.Question)
		a.console.Printf("   Correct: %s\n", m.Question.CorrectOption())
		a.console.Printf("   Explanation: %s\n\n", m.Question.Explanation)
	}
}

func (a *App) sendRecommendations(results service.Results) {
	a.console.Println("\nStudy Recommendations:")
	if results.Perfect() {
		a.console.Println("- Excellent work! Maintain your knowledge with occasional reviews.")
		return
	}
	a.console.Println("- Review Agile principles and the sections where you scored less.")
	a.console.Println("- Revisit Scrum roles, events, and artifacts.")
	a.console.Println("- Practice PERT and project cost exercises.")
}

func rule(s string, n int) string {
	return strings.Repeat(s, n)
}
