package live

import (
	_ "embed"
	"net/http"
	"strconv"
)

//go:embed client.js
var clientScript []byte

// ClientScript returns the browser runtime. The page must define
// window.vangoui = {live: "/_live/<name>"} and contain the root element
// (id "vangoui-root" unless window.vangoui.root says otherwise).
func ClientScript() []byte { return clientScript }

// ClientHandler serves the browser runtime.
func ClientHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/javascript; charset=utf-8")
		w.Header().Set("Cache-Control", "no-cache")
		w.Header().Set("Content-Length", strconv.Itoa(len(clientScript)))
		w.Write(clientScript)
	})
}
