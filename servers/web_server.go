// servers/web_server.go
package servers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"cookiebank/interfaces"

	"github.com/gorilla/mux"
)

// WebServer は残高を読み取り専用で公開するHTTPサーバーを管理します。
type WebServer struct {
	log   interfaces.Logger
	store interfaces.BankStore
	http  *http.Server
}

// NewWebServer は新しいWebServerインスタンスを作成します。
func NewWebServer(addr string, log interfaces.Logger, store interfaces.BankStore) *WebServer {
	ws := &WebServer{log: log, store: store}

	r := mux.NewRouter()
	r.HandleFunc("/healthz", ws.handleHealth).Methods("GET")
	r.HandleFunc("/api/balances", ws.handleBalances).Methods("GET")
	r.HandleFunc("/api/balances/{id}", ws.handleBalance).Methods("GET")

	ws.http = &http.Server{
		Addr:    addr,
		Handler: r,
	}
	return ws
}

// Name returns the server's name.
func (ws *WebServer) Name() string {
	return "web"
}

// Start はWebサーバーを起動します。
func (ws *WebServer) Start() error {
	ws.log.Info("Webサーバーを起動します", "addr", ws.http.Addr)
	go func() {
		if err := ws.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			ws.log.Error("Webサーバーが停止しました", "error", err)
		}
	}()
	return nil
}

// Stop はWebサーバーをシャットダウンします。
func (ws *WebServer) Stop() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return ws.http.Shutdown(ctx)
}

func (ws *WebServer) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}

func (ws *WebServer) handleBalances(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, ws.store.Balances())
}

func (ws *WebServer) handleBalance(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if !ws.store.HasAccount(id) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "account not found"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]int64{id: ws.store.GetBalance(id)})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
