package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/ardnew/arprof/cli"
	"github.com/ardnew/arprof/log"
)

func main() {
	err := cli.Run(context.Background(), os.Exit, os.Args[1:]...)
	if err != nil {
		log.Error(
			"run failed",
			slog.Any("error", err),
		) // slog automatically uses LogValue()
		os.Exit(1)
	}
}
