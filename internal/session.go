package internal

// Session is the credential issued at login: an opaque bearer token
// plus the role and display name shown in the header. All three live
// in the local store and are erased together.
type Session struct {
	Token string
	Role  string
	Name  string
}

// IsAdmin reports whether the session carries the admin role.
func (s *Session) IsAdmin() bool {
	return s != nil && s.Role == "admin"
}

// LoadSession reads the stored credential. Returns nil when no token
// is stored, i.e. the user is anonymous.
func LoadSession(store *LocalStore) *Session {
	token, ok, err := store.Get(KeyToken)
	if err != nil {
		LogDebug("session load: %v", err)
		return nil
	}
	if !ok || token == "" {
		return nil
	}

	role, _, _ := store.Get(KeyUserRole)
	name, _, _ := store.Get(KeyUserName)

	return &Session{Token: token, Role: role, Name: name}
}

// SaveSession writes the credential after a successful login.
func SaveSession(store *LocalStore, s *Session) error {
	if err := store.Set(KeyToken, s.Token); err != nil {
		return err
	}
	if err := store.Set(KeyUserRole, s.Role); err != nil {
		return err
	}
	return store.Set(KeyUserName, s.Name)
}

// ClearSession erases the credential wholesale. Used on logout and on
// authorization failure. The cart is untouched: cart and session are
// independent resources with independent lifecycles.
func ClearSession(store *LocalStore) error {
	if err := store.Delete(KeyToken); err != nil {
		return err
	}
	if err := store.Delete(KeyUserRole); err != nil {
		return err
	}
	return store.Delete(KeyUserName)
}
