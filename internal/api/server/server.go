package server

import (
	"net"
	"net/http"
	"time"

	"github.com/wb-go/wbf/ginext"
)

// New creates an HTTP server listening on the given port. Write timeouts are
// left unset since form submissions wait for attachment delivery.
func New(port string, router *ginext.Engine) *http.Server {
	return &http.Server{
		Addr:              net.JoinHostPort("", port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
}
