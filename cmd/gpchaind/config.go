// Copyright (c) 2017 The GreenPower developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"

	flags "github.com/jessevdk/go-flags"

	"github.com/powerchain-ltd/greenpower-blockchain/chaincfg"
)

const (
	defaultLogFilename = "gpchaind.log"
	defaultDebugLevel  = "info"
)

var (
	defaultHomeDir = appDataDir()
	defaultDataDir = filepath.Join(defaultHomeDir, "data")
	defaultLogDir  = filepath.Join(defaultHomeDir, "logs")
)

// config defines the configuration options for gpchaind.
//
// See loadConfig for details on the configuration load process.
type config struct {
	DataDir    string `short:"b" long:"datadir" description:"Directory to store the chain database"`
	LogDir     string `long:"logdir" description:"Directory to log output"`
	DebugLevel string `short:"d" long:"debuglevel" description:"Logging level {trace, debug, info, warn, error, critical}"`
	SimNet     bool   `long:"simnet" description:"Use the simulation test network"`
	OpsFile    string `short:"f" long:"opsfile" description:"File with JSON transactions to apply"`
	ShowState  bool   `long:"showstate" description:"Print the resulting license state summary"`
}

// appDataDir returns the default home directory for gpchaind data.
func appDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".gpchaind")
}

// netParams maps the network selection flags to chain parameters.
func (cfg *config) netParams() *chaincfg.Params {
	if cfg.SimNet {
		return &chaincfg.SimNetParams
	}
	return &chaincfg.MainNetParams
}

// loadConfig initializes and parses the config using command line options.
func loadConfig() (*config, []string, error) {
	cfg := config{
		DataDir:    defaultDataDir,
		LogDir:     defaultLogDir,
		DebugLevel: defaultDebugLevel,
	}

	parser := flags.NewParser(&cfg, flags.Default)
	remainingArgs, err := parser.Parse()
	if err != nil {
		if e, ok := err.(*flags.Error); !ok || e.Type != flags.ErrHelp {
			parser.WriteHelp(os.Stderr)
		}
		return nil, nil, err
	}

	// Append the network suffix so that data for different networks
	// never mixes.
	net := cfg.netParams().Name
	cfg.DataDir = filepath.Join(cfg.DataDir, net)
	cfg.LogDir = filepath.Join(cfg.LogDir, net)

	if !validLogLevel(cfg.DebugLevel) {
		str := "the specified debug level [%v] is invalid"
		return nil, nil, fmt.Errorf(str, cfg.DebugLevel)
	}

	return &cfg, remainingArgs, nil
}
