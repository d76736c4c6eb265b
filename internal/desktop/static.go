package desktop

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

// spaHandler serves the built frontend and falls back to index.html for
// client side routes.
type spaHandler struct {
	staticPath string
	indexPath  string
}

func (h spaHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	path := filepath.Join(h.staticPath, filepath.FromSlash(filepath.Clean("/"+r.URL.Path)))

	fi, err := os.Stat(path)
	if os.IsNotExist(err) || (err == nil && fi.IsDir()) {
		http.ServeFile(w, r, filepath.Join(h.staticPath, h.indexPath))
		return
	} else if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	http.FileServer(http.Dir(h.staticPath)).ServeHTTP(w, r)
}

func NewStaticHandler(distDir string) http.Handler {
	r := mux.NewRouter()
	r.PathPrefix("/").Handler(spaHandler{
		staticPath: distDir,
		indexPath:  "index.html",
	})
	return r
}

type StaticServer struct {
	URL        string
	httpServer *http.Server
}

// ServeStatic serves distDir on a free loopback port.
func ServeStatic(distDir string) (*StaticServer, error) {
	if _, err := os.Stat(filepath.Join(distDir, "index.html")); err != nil {
		return nil, fmt.Errorf("frontend build not found in [%s]: %w", distDir, err)
	}

	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		return nil, fmt.Errorf("listen: %w", err)
	}

	s := &StaticServer{
		URL: "http://" + listener.Addr().String() + "/",
		httpServer: &http.Server{
			Handler:      NewStaticHandler(distDir),
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
		},
	}

	go func() {
		if err := s.httpServer.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Errorf("static server: %s", err)
		}
	}()
	log.Infof("serving frontend from [%s] on %s", distDir, s.URL)

	return s, nil
}

func (s *StaticServer) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
