package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/PoluyanbIch/GoQuiz/internal/config"
	"github.com/PoluyanbIch/GoQuiz/internal/console"
)

func main() {
	cfg := config.Load()

	logger := log.New(io.Discard, "", 0)
	if cfg.Debug {
		logger = log.New(os.Stderr, "quiz: ", log.LstdFlags)
	}

	app := console.NewApp(console.New(os.Stdin, os.Stdout), cfg.QuizFile, logger)
	if err := app.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running quiz: %v\n", err)
		os.Exit(1)
	}
}
