package main

import (
	"log"

	"github.com/limbo/exetrack/internal/api"
	"github.com/limbo/exetrack/internal/repository"
	"github.com/limbo/exetrack/internal/service"
	"github.com/limbo/exetrack/pkg/cleanup"
	"github.com/limbo/exetrack/pkg/config"
)

func init() {
	service.InitValidator()
}

func main() {
	cfg := config.New()
	dbCfg := repository.PGCfg{
		Address:  cfg.GetString("POSTGRES_DB_ADDRESS"),
		Username: cfg.GetString("POSTGRES_USER"),
		Password: cfg.GetString("POSTGRES_PASSWORD"),
		DB:       cfg.GetString("POSTGRES_DB"),
	}
	userService := service.NewUserService(
		repository.NewUsersRepo(&dbCfg),
		cfg.GetBool("ENFORCE_UNIQUE_USERNAME"),
	)
	exercisesService := service.NewExercisesService(repository.NewExercisesRepo(&dbCfg))
	serv := api.New(&api.ServicesList{
		UserService:      userService,
		ExercisesService: exercisesService,
	})
	address := cfg.GetString("API_ADDRESS")
	if address == "" {
		address = ":3000"
	}
	err := serv.Run(address)
	if err != nil {
		log.Println("Server error: " + err.Error())
	}
	cleanup.CleanUp()
}
