package server

import (
	"github.com/agrovet/pashumitra/internal/app"
	"github.com/agrovet/pashumitra/internal/logging"
)

type Config struct {
	// ListenAddr is the HTTP listen address for the API server.
	ListenAddr string

	// App is the loaded application context. Required.
	App *app.Application

	// Logger receives request and handler logs. Defaults to a stdout logger.
	Logger logging.Logger
}
