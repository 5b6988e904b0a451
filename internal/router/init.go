package router

import (
	userapp "github.com/tinybigcorp/backend/internal/application"
	"github.com/tinybigcorp/backend/internal/container"
	repouser "github.com/tinybigcorp/backend/internal/domain/repository"
	pginfra "github.com/tinybigcorp/backend/internal/infrastructure/postgres"
	handlers "github.com/tinybigcorp/backend/internal/interface/http"
	"github.com/tinybigcorp/backend/internal/router/modules"
)

type UserModuleDeps struct {
	Repo    repouser.UserRepository
	Service *userapp.UserService
	Handler *handlers.UserHandler
}

func buildUserDeps() UserModuleDeps {
	repo := pginfra.NewUserRepository(container.GetPGPool())
	service := userapp.NewUserService(repo, container.GetLogger())
	handler := handlers.NewUserHandler(service, container.GetLogger(), container.GetConfig().MaxPageSize)

	return UserModuleDeps{Repo: repo, Service: service, Handler: handler}
}

// InitModules wires all application modules into the router registry.
// Called once during startup, after the container singletons are set.
func InitModules(r *Registry) {
	userDeps := buildUserDeps()
	r.Add(modules.NewUserModule(userDeps.Handler))
	r.Add(modules.NewHealthModule())
}
