package main

import (
	"equimeet/core/logger"
	"equimeet/core/server"
)

func main() {
	if err := server.Run(); err != nil {
		logger.Error("run server error", err)
	}
}
