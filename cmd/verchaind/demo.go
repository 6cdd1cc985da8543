// Copyright 2020 Insolar Network Ltd.
// All rights reserved.
// This material is licensed under the Insolar License version 1.0,
// available at https://github.com/insolar/verchain/blob/master/LICENSE.md.

package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/insolar/verchain/chain"
	"github.com/insolar/verchain/chainview"
	"github.com/insolar/verchain/configuration"
	"github.com/insolar/verchain/reference"
)

func demoCommand(configPath *string) *cobra.Command {
	var (
		upgrades int
		jsonOut  bool
	)
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "deploy a chain, run upgrades and print the resulting registry",
		Run: func(cmd *cobra.Command, args []string) {
			runDemo(*configPath, upgrades, jsonOut)
		},
	}
	cmd.Flags().IntVar(&upgrades, "upgrades", 2, "number of upgrades to run")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "print the chain as JSON instead of a table")
	return cmd
}

func runDemo(configPath string, upgrades int, jsonOut bool) {
	cfg := configuration.NewHolder(configPath).MustLoad().Configuration
	log := newLogger(cfg.Log)
	fmt.Printf("Starts with configuration:\n%s\n", configuration.ToString(cfg))

	founder := mustIdentity(log)
	authority := mustIdentity(log)
	manager := mustIdentity(log)

	hub := chain.NewHub(chain.HubParams{
		Logger:              &log,
		TraversalDepthLimit: cfg.Chain.TraversalDepthLimit,
	})

	genesis, err := hub.Deploy(chain.DeployParams{
		Founder:        founder,
		Authority:      authority,
		Manager:        manager,
		InitialBalance: cfg.Chain.GenesisBalance,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("genesis deploy failed")
	}
	if err := genesis.Activate(chain.CallContext{Caller: founder}); err != nil {
		log.Fatal().Err(err).Msg("genesis activation failed")
	}

	prev := genesis
	for v := 1; v <= upgrades; v++ {
		next, err := hub.Deploy(chain.DeployParams{
			Founder:   founder,
			Authority: authority,
			Manager:   manager,
			Version:   uint32(v),
			Prev:      prev.Address(),
		})
		if err != nil {
			log.Fatal().Err(err).Msgf("deploy of version %d failed", v)
		}
		if err := prev.Upgrade(chain.CallContext{Caller: authority}, next.Address()); err != nil {
			log.Fatal().Err(err).Msgf("upgrade to version %d failed", v)
		}
		if err := next.Activate(chain.CallContext{Caller: founder}); err != nil {
			log.Fatal().Err(err).Msgf("activation of version %d failed", v)
		}
		prev = next
	}

	rows, err := chainview.Snapshot(genesis)
	if err != nil {
		log.Fatal().Err(err).Msg("chain snapshot failed")
	}

	printer := chainview.NewTablePrinter(os.Stdout)
	if jsonOut {
		printer = chainview.NewJSONPrinter(os.Stdout)
	}
	if err := printer.Print(rows); err != nil {
		log.Fatal().Err(err).Msg("output failed")
	}
}

func mustIdentity(log zerolog.Logger) reference.Identity {
	id, err := reference.NewRandomIdentity()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to generate identity")
	}
	return id
}

func newLogger(cfg configuration.Log) zerolog.Logger {
	level, err := zerolog.ParseLevel(strings.ToLower(cfg.Level))
	if err != nil {
		level = zerolog.InfoLevel
	}
	var out io.Writer = os.Stderr
	if cfg.Formatter != "json" {
		out = zerolog.ConsoleWriter{Out: os.Stderr}
	}
	return zerolog.New(out).Level(level).With().Timestamp().Logger()
}
