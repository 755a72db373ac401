package main

import (
	"fmt"

	"github.com/MKhiriev/go-oidc-provider/internal/config"
	"github.com/MKhiriev/go-oidc-provider/internal/logger"
	"github.com/MKhiriev/go-oidc-provider/internal/server"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("oidc-server")

	params, err := config.GetParams()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting start parameters")
	}

	cfg, err := config.LoadConfiguration(params.ConfigFile, config.BuildOptions{
		BasePath: params.BaseDir,
		Domain:   params.Domain,
		Port:     params.Port,
		Logger:   log,
		Entities: []config.EntityDescriptor{
			{
				Path:        []string{"op", "server_info"},
				Attr:        "op",
				Constructor: config.BuildOPConfiguration,
			},
		},
	})
	if err != nil {
		log.Fatal().Err(err).Msg("error building configuration")
	}

	if op := cfg.OP("op"); op != nil {
		cfg.Logger.Info().Str("issuer", op.Issuer).Msg("provider configuration resolved")
	}

	srv, err := server.NewServer(cfg.WebServer, server.BaseRouter(cfg.Logger), cfg.Logger)
	if err != nil {
		cfg.Logger.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
