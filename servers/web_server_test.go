package servers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"cookiebank/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Info(msg string, args ...any)  {}
func (nopLogger) Warn(msg string, args ...any)  {}
func (nopLogger) Error(msg string, args ...any) {}
func (nopLogger) Fatal(msg string, args ...any) {}

func newTestServer(t *testing.T) (*WebServer, *storage.BankStore) {
	t.Helper()
	store, err := storage.NewBankStore(filepath.Join(t.TempDir(), "cookie_bank.json"))
	require.NoError(t, err)
	return NewWebServer(":0", nopLogger{}, store), store
}

func TestHealthz(t *testing.T) {
	ws, _ := newTestServer(t)

	rec := httptest.NewRecorder()
	ws.http.Handler.ServeHTTP(rec, httptest.NewRequest("GET", "/healthz", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestBalancesEndpoint(t *testing.T) {
	ws, store := newTestServer(t)
	_, err := store.SetBalance("alice", 30)
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	ws.http.Handler.ServeHTTP(rec, httptest.NewRequest("GET", "/api/balances", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var balances map[string]int64
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &balances))
	assert.EqualValues(t, 30, balances["alice"])
}

func TestBalanceEndpointUnknownUser(t *testing.T) {
	ws, _ := newTestServer(t)

	rec := httptest.NewRecorder()
	ws.http.Handler.ServeHTTP(rec, httptest.NewRequest("GET", "/api/balances/ghost", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
