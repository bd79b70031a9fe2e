package internal

import "net/http"

// Gateway is the single path every authenticated request takes. It
// delegates to the HTTP client unchanged, then inspects the status
// code: a 401 means the session is dead, so the stored credential is
// erased and the OnSessionExpired hook fires (the terminal analogue of
// the storefront forcing navigation to the login page).
//
// The gateway does not attach the Authorization header; callers do.
// Network-level failures propagate untouched, and any non-401 response
// passes through with no side effects.
type Gateway struct {
	Client *http.Client
	Store  *LocalStore

	// OnSessionExpired runs after the credential has been cleared on a
	// 401. Nil is allowed.
	OnSessionExpired func()
}

// NewGateway builds a gateway over the default HTTP client.
func NewGateway(store *LocalStore) *Gateway {
	return &Gateway{
		Client: http.DefaultClient,
		Store:  store,
	}
}

// Do issues the request and applies the 401 teardown. The response is
// returned to the caller even when the teardown ran, so callers still
// see the 401 they received.
func (g *Gateway) Do(req *http.Request) (*http.Response, error) {
	resp, err := g.Client.Do(req)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode == http.StatusUnauthorized {
		LogInfo("received 401 from %s, clearing session", req.URL.Path)
		if clearErr := ClearSession(g.Store); clearErr != nil {
			LogWarn("failed to clear session: %v", clearErr)
		}
		if g.OnSessionExpired != nil {
			g.OnSessionExpired()
		}
	}

	return resp, nil
}
