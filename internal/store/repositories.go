package store

// Repositories aggregates every repository the service layer depends on.
type Repositories struct {
	NoteRepository NoteRepository
	UserRepository UserRepository
}

// NewRepositories wires all PostgreSQL-backed repositories onto one
// shared connection pool.
func NewRepositories(db *DB) *Repositories {
	return &Repositories{
		NoteRepository: NewNoteRepository(db, db.logger),
		UserRepository: NewUserRepository(db, db.logger),
	}
}
