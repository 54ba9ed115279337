package web

import (
	"sectionheading/web/pages/comps"

	"github.com/rohanthewiz/logger"
	"github.com/rohanthewiz/rweb"
	"github.com/rohanthewiz/serr"
)

// NewServer creates the preview server, loading sample headings from cfg
func NewServer(cfg *Config) (*rweb.Server, error) {
	samples, err := cfg.LoadSamples()
	if err != nil {
		return nil, serr.Wrap(err, "failed to load sample headings")
	}

	s := newServer(rweb.ServerOptions{
		Address: cfg.Addr,
		Verbose: cfg.LogLevel == "debug",
	}, samples)

	logger.Info("Preview server configured", "address", cfg.Addr, "samples", len(samples))
	return s, nil
}

// newServer wires middleware and routes onto a server built from opts
func newServer(opts rweb.ServerOptions, samples []comps.SectionHeading) *rweb.Server {
	s := rweb.NewServer(opts)

	s.Use(rweb.RequestInfo)
	s.Use(SecurityHeadersMiddleware)
	s.Use(LoggingMiddleware)

	setupRoutes(s, samples)
	return s
}

// Run starts the server
func Run(s *rweb.Server) error {
	return s.Run()
}
