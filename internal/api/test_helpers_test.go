package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"github.com/trends/trends_api/internal/config"
	"github.com/trends/trends_api/internal/logging"
	storemocks "github.com/trends/trends_api/internal/store/mocks"
)

func newTestServer(t *testing.T) (*Server, *storemocks.Store) {
	t.Helper()

	store := storemocks.NewStore(t)
	cfg := config.Config{Log: config.LogConfig{Level: "error", Format: "text"}}
	logger, err := logging.NewLogger(cfg)
	require.NoError(t, err)

	srv := &Server{
		s:      &http.Server{},
		router: mux.NewRouter(),
		store:  store,
		logger: logger.WithApiTag(),
	}

	return srv, store
}

// captureLogs redirects the server logger into a JSON buffer.
func captureLogs(t *testing.T, srv *Server) *bytes.Buffer {
	t.Helper()

	var buf bytes.Buffer
	srv.logger.Logger.SetOutput(&buf)
	srv.logger.Logger.SetLevel(logrus.DebugLevel)
	srv.logger.Logger.SetFormatter(&logrus.JSONFormatter{})
	return &buf
}

func decodeError(t *testing.T, body []byte) ErrorResponse {
	t.Helper()

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(body, &resp))
	return resp
}
