// Copyright 2025 Ironbark Software
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
)

type globalFlags struct {
	flagset    *flag.FlagSet
	configFile string
	jsonOut    bool
}

func newGlobalFlags() *globalFlags {
	f := &globalFlags{
		flagset: flag.NewFlagSet(os.Args[0], flag.ExitOnError),
	}
	f.flagset.StringVar(
		&f.configFile,
		"config",
		"",
		"path to TOML config file",
	)
	f.flagset.BoolVar(
		&f.jsonOut,
		"json",
		false,
		"emit results as JSON instead of text",
	)
	return f
}

func newLogger(level zerolog.Level) zerolog.Logger {
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	}
	return zerolog.New(output).
		With().
		Timestamp().
		Str("app", "ledger-inspect").
		Logger().
		Level(level)
}

func main() {
	f := newGlobalFlags()
	err := f.flagset.Parse(os.Args[1:])
	if err != nil {
		fmt.Printf("failed to parse command args: %s\n", err)
		os.Exit(1)
	}

	cfg, err := loadConfig(f.configFile)
	if err != nil {
		fmt.Printf("failed to load config: %s\n", err)
		os.Exit(1)
	}
	logger := newLogger(cfg.logLevel())

	if len(f.flagset.Args()) == 0 {
		fmt.Printf(
			"You must specify a subcommand (key, account, value, or digest)\n",
		)
		os.Exit(1)
	}
	switch f.flagset.Arg(0) {
	case "key":
		inspectKey(f, cfg, logger)
	case "account":
		inspectAccount(f, cfg, logger)
	case "value":
		inspectValue(f, cfg, logger)
	case "digest":
		inspectDigest(f, cfg, logger)
	default:
		fmt.Printf("Unknown subcommand: %s\n", f.flagset.Arg(0))
		os.Exit(1)
	}
}
