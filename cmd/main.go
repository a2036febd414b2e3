package main

import (
	"log"

	"github.com/mizusawa-dev/swimtrack/cmd/app"
	"github.com/mizusawa-dev/swimtrack/internal/adapters/config"
	setupHTTP "github.com/mizusawa-dev/swimtrack/internal/adapters/controller/http/setup"
)

func main() {
	cfg := config.Get()
	a, err := app.New(cfg)
	if err != nil {
		log.Panic(err)
	}

	if err := setupHTTP.Setup(a); err != nil {
		log.Panic(err)
	}

	a.Start()
}
