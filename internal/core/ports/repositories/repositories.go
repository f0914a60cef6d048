package repositories

// RepositoryProvider bundles the concrete repository implementations handed
// to the service layer at startup.
type RepositoryProvider struct {
	UserRepo  UserRepositoryFacade
	EntryRepo EntryRepositoryFacade
}
