package models

// Credentials identify the already-authenticated actor behind a
// request. The auth middleware populates them from the session token;
// the audit trail records ActorId on every write.
type Credentials struct {
	ActorId int64
	Role    UserRole
	Name    string
}

func (c Credentials) IsAdmin() bool {
	return c.Role == RoleAdmin
}
