// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"flag"
	"os"
)

// parseFlags parses the process command line into a partial *Params.
//
// Flags:
//
//	-c/-config configuration file path
//	-base-dir  base directory for relative file paths
//	-domain    domain substituted into URI templates
//	-port      port substituted into URI templates
func parseFlags() (*Params, error) {
	return parseFlagSet(os.Args[1:])
}

// parseFlagSet is the testable core of parseFlags: it parses args with a
// private flag set instead of the process-global one.
func parseFlagSet(args []string) (*Params, error) {
	var p Params

	fs := flag.NewFlagSet("oidc-server", flag.ContinueOnError)
	fs.StringVar(&p.ConfigFile, "c", "", "Configuration file path")
	fs.StringVar(&p.ConfigFile, "config", "", "Configuration file path (alias)")
	fs.StringVar(&p.BaseDir, "base-dir", "", "Base directory for relative file paths")
	fs.StringVar(&p.Domain, "domain", "", "Domain for URI templates")
	fs.IntVar(&p.Port, "port", 0, "Port for URI templates")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return &p, nil
}
