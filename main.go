package main

import (
	"go-calendar-api/core/logger"
	"go-calendar-api/core/server"
)

func main() {
	if err := server.Run(); err != nil {
		logger.Error("run server error", err)
	}
}
