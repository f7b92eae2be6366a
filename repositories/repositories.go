package repositories

// CourseDbRepository carries every query against the application
// database. Methods are grouped by concern in the *_repository.go
// files of this package.
type CourseDbRepository struct{}

type Repositories struct {
	ExecutorGetter     ExecutorGetter
	CourseDbRepository CourseDbRepository
	SessionTokens      SessionTokenRepository
}

func NewRepositories(executorGetter ExecutorGetter, jwtSigningSecret []byte) Repositories {
	return Repositories{
		ExecutorGetter:     executorGetter,
		CourseDbRepository: CourseDbRepository{},
		SessionTokens:      NewSessionTokenRepository(jwtSigningSecret),
	}
}
