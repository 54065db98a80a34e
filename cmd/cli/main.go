package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"

	"github.com/cubny/cabfare"
	"github.com/cubny/cabfare/internal/logger"
	"github.com/cubny/cabfare/internal/session"
)

func main() {
	calc, err := cabfare.NewCalculator(cabfare.DefaultConfig())
	if err != nil {
		log.Fatalf("NewCalculator: %s\n", err)
	}

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	go func() {
		sigint := make(chan os.Signal, 1)
		signal.Notify(sigint, os.Interrupt)
		<-sigint
		stop()
	}()

	s := session.New(os.Stdin, os.Stdout, calc, logger.New(os.Stderr, slog.LevelWarn))
	if err := s.Run(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
