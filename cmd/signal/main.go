package main

import (
	"signal/cmd/handlers"
	"signal/internal/logger"
)

func main() {
	logger.Init()
	handlers.Execute()
}
