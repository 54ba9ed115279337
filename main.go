package main

import (
	"log"

	"sectionheading/web"

	"github.com/rohanthewiz/logger"
)

func main() {
	cfg, err := web.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}
	logger.SetLogLevel(cfg.LogLevel)

	srv, err := web.NewServer(cfg)
	if err != nil {
		logger.LogErr(err, "failed to create server")
		log.Fatal(err)
	}

	logger.Info("Starting section heading preview", "address", cfg.Addr)
	log.Fatal(web.Run(srv))
}
