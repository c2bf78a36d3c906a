package main

import (
	"inn/config"
	"inn/di"
	"inn/shared/logger"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	worker := di.InitializeWorker()
	worker.Run()
}
