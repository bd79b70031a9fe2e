package internal

import (
	"net/http"
	"testing"

	"github.com/akwaba-bebe/akwaba-cli/testutil"
)

func seedSession(t *testing.T, store *LocalStore) {
	t.Helper()
	if err := SaveSession(store, &Session{Token: "tok", Role: "user", Name: "Awa"}); err != nil {
		t.Fatalf("SaveSession() error = %v", err)
	}
}

func TestGateway_401ClearsSessionAndFiresHook(t *testing.T) {
	db := testutil.CreateInMemoryDB(t)
	store := NewLocalStore(db)
	seedSession(t, store)

	srv := testutil.NewStatusServer(t, http.StatusUnauthorized, `{"message":"token expiré"}`)

	fired := false
	gw := NewGateway(store)
	gw.OnSessionExpired = func() { fired = true }

	req, err := http.NewRequest(http.MethodGet, srv.URL+"/my-orders", nil)
	if err != nil {
		t.Fatalf("NewRequest() error = %v", err)
	}

	resp, err := gw.Do(req)
	if err != nil {
		t.Fatalf("Do() error = %v", err)
	}
	defer resp.Body.Close()

	// The caller still sees the 401.
	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", resp.StatusCode)
	}
	if !fired {
		t.Error("OnSessionExpired hook did not fire")
	}
	for _, key := range []string{KeyToken, KeyUserRole, KeyUserName} {
		if _, ok := testutil.ReadKey(t, db, key); ok {
			t.Errorf("key %q still present after 401", key)
		}
	}
}

func TestGateway_Non401LeavesSessionAlone(t *testing.T) {
	tests := []struct {
		name   string
		status int
	}{
		{"success", http.StatusOK},
		{"server error", http.StatusInternalServerError},
		{"forbidden", http.StatusForbidden},
		{"not found", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := testutil.CreateInMemoryDB(t)
			store := NewLocalStore(db)
			seedSession(t, store)

			srv := testutil.NewStatusServer(t, tt.status, `{}`)

			fired := false
			gw := NewGateway(store)
			gw.OnSessionExpired = func() { fired = true }

			req, _ := http.NewRequest(http.MethodGet, srv.URL+"/orders", nil)
			resp, err := gw.Do(req)
			if err != nil {
				t.Fatalf("Do() error = %v", err)
			}
			resp.Body.Close()

			if fired {
				t.Errorf("OnSessionExpired fired on status %d", tt.status)
			}
			if _, ok := testutil.ReadKey(t, db, KeyToken); !ok {
				t.Errorf("token cleared on status %d", tt.status)
			}
		})
	}
}

func TestGateway_NetworkErrorPropagates(t *testing.T) {
	db := testutil.CreateInMemoryDB(t)
	store := NewLocalStore(db)
	seedSession(t, store)

	gw := NewGateway(store)
	gw.OnSessionExpired = func() { t.Error("hook fired on network error") }

	// Nothing listens here.
	req, _ := http.NewRequest(http.MethodGet, "http://127.0.0.1:1/orders", nil)
	if _, err := gw.Do(req); err == nil {
		t.Fatal("Do() error = nil, want network error")
	}

	if _, ok := testutil.ReadKey(t, db, KeyToken); !ok {
		t.Error("token cleared on network error")
	}
}

func TestGateway_NilHookIsSafe(t *testing.T) {
	store := NewLocalStore(testutil.CreateInMemoryDB(t))
	seedSession(t, store)

	srv := testutil.NewStatusServer(t, http.StatusUnauthorized, `{}`)

	gw := NewGateway(store)
	req, _ := http.NewRequest(http.MethodGet, srv.URL, nil)
	resp, err := gw.Do(req)
	if err != nil {
		t.Fatalf("Do() error = %v", err)
	}
	resp.Body.Close()
}
