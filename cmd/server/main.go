package main

import (
	_ "todolist/docs"
	"todolist/internal/config"
	"todolist/internal/logger"
	"todolist/internal/server"
)

// @title           Todolist API
// @version         1.0
// @description     API for managing personal task lists.

// @host      localhost:8080
// @BasePath  /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @schemes http
func main() {
	cfg := config.Load()
	log := logger.New(cfg)

	s, err := server.Init(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("server initialization failed")
	}

	s.Run()
}
