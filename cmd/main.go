package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/jeffleon2/draftea-stream-processor/config"
	"github.com/jeffleon2/draftea-stream-processor/internal/app"
	"github.com/sirupsen/logrus"
)

func main() {
	cfg, err := config.New()
	if err != nil {
		fmt.Println("Error reading config file", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	myApp := &app.App{}
	if err := myApp.Initialize(ctx, cfg); err != nil {
		logrus.Fatalf("Error initializing stream processor: %s", err.Error())
	}
	if err := myApp.Run(ctx); err != nil {
		logrus.Errorf("Error during shutdown: %s", err.Error())
		os.Exit(1)
	}
}
