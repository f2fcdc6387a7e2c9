// Package server exposes games over HTTP and SSH.
package server

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"log"
	"net"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/DestinyFrog/Periodic-Tetris/internal/catalog"
	"github.com/DestinyFrog/Periodic-Tetris/internal/game"
)

//go:embed static/index.html
var indexHTML []byte

// Web serves a single shared game to browsers.
type Web struct {
	session uuid.UUID
	engine  *game.Engine
	catalog *catalog.Catalog
	logger  *log.Logger
	router  *gin.Engine
}

type stateResponse struct {
	Session string `json:"session"`
	game.Frame
}

type inputResponse struct {
	Action string `json:"action"`
	Queued bool   `json:"queued"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func init() {
	gin.SetMode(gin.ReleaseMode)
}

// NewWeb creates the HTTP frontend for engine. The caller runs the engine.
func NewWeb(engine *game.Engine, cat *catalog.Catalog, logger *log.Logger) *Web {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	w := &Web{
		session: uuid.New(),
		engine:  engine,
		catalog: cat,
		logger:  logger,
	}

	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery())
	router.GET("/", w.index)
	router.GET("/atoms.json", w.rawCatalog)
	router.GET("/api/catalog", w.items)
	router.GET("/api/state", w.state)
	router.POST("/api/input/:key", w.input)
	w.router = router
	return w
}

// Session identifies the shared game.
func (w *Web) Session() uuid.UUID {
	return w.session
}

// Handler returns the HTTP handler with every route.
func (w *Web) Handler() http.Handler {
	return w.router
}

func (w *Web) index(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", indexHTML)
}

func (w *Web) rawCatalog(c *gin.Context) {
	c.Data(http.StatusOK, "application/json", w.catalog.Raw())
}

func (w *Web) items(c *gin.Context) {
	c.JSON(http.StatusOK, w.catalog.Items())
}

func (w *Web) state(c *gin.Context) {
	c.JSON(http.StatusOK, stateResponse{Session: w.session.String(), Frame: w.engine.Frame()})
}

func (w *Web) input(c *gin.Context) {
	key := c.Param("key")
	action := game.ParseAction(key)
	if action == game.ActionNone {
		c.JSON(http.StatusBadRequest, errorResponse{Error: fmt.Sprintf("unknown key '%s', expected left, right or up", key)})
		return
	}
	c.JSON(http.StatusAccepted, inputResponse{Action: action.String(), Queued: w.engine.Send(action)})
}

// Listen opens the listener Serve uses. An addr with port 0 picks a free
// port.
func Listen(addr string) (net.Listener, error) {
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("could not listen on %s: %w", addr, err)
	}
	return listener, nil
}

// URL is the address to open in a browser for listener.
func URL(listener net.Listener) string {
	port := listener.Addr().(*net.TCPAddr).Port
	return fmt.Sprintf("http://localhost:%d/", port)
}

// Serve handles requests on listener until ctx is done.
func (w *Web) Serve(ctx context.Context, listener net.Listener) error {
	server := &http.Server{Handler: w.router}

	go shutdownWhenDone(ctx, "Web", server.Shutdown, w.logger)

	w.logger.Printf("Web server listening on %s (session %s)", listener.Addr(), w.session)
	if err := server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
