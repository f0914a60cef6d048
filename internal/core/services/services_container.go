package services

import (
	portsrepo "github.com/vsilva/minhas_financas_app/internal/core/ports/repositories"
	portssvc "github.com/vsilva/minhas_financas_app/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly
// initialized dependencies.
func NewServiceContainer(repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		User:  NewUserService(repos.UserRepo),
		Entry: NewEntryService(repos.EntryRepo),
	}
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.UserSvcFacade  = (*UserService)(nil)
	_ portssvc.EntrySvcFacade = (*EntryService)(nil)
)
