package main

import (
	_ "embed"
	"fmt"
	"net"
	"net/http"
	"os"
	"strings"

	"github.com/tomz197/skyraid/internal/config"
	"github.com/tomz197/skyraid/internal/logging"
)

const (
	defaultHost = "0.0.0.0"
	defaultPort = "8080"
)

//go:embed index.html
var htmlPage string

// newHandler serves the landing page with sshHost filled in.
func newHandler(sshHost, sshPort string) http.Handler {
	page := strings.ReplaceAll(htmlPage, "{{.SSHHost}}", sshHost)
	page = strings.ReplaceAll(page, "{{.SSHPort}}", sshPort)

	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		fmt.Fprint(w, page)
	})
	return mux
}

func main() {
	logger := logging.New(os.Stderr, "web")

	host := config.GetEnv("WEB_HOST", defaultHost)
	port := config.GetEnv("WEB_PORT", defaultPort)
	sshHost := config.GetEnv("SSH_DISPLAY_HOST", "your-server.com")
	sshPort := config.GetEnv("SSH_PORT", "2222")

	addr := net.JoinHostPort(host, port)
	logger.Info("Starting web server", "url", "http://"+addr)
	if err := http.ListenAndServe(addr, newHandler(sshHost, sshPort)); err != nil {
		logger.Fatal("server error", "err", err)
	}
}
