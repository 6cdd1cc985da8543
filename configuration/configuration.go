// Copyright 2020 Insolar Network Ltd.
// All rights reserved.
// This material is licensed under the Insolar License version 1.0,
// available at https://github.com/insolar/verchain/blob/master/LICENSE.md.

// Package configuration holds configuration for the verchain components.
package configuration

import (
	jsoniter "github.com/json-iterator/go"
)

// Log holds logging configuration.
type Log struct {
	// Level is a zerolog level name: debug, info, warn, error.
	Level string
	// Formatter is either "text" or "json".
	Formatter string
}

// NewLog creates new default Log configuration.
func NewLog() Log {
	return Log{
		Level:     "info",
		Formatter: "text",
	}
}

// Chain holds chain protocol configuration.
type Chain struct {
	// TraversalDepthLimit caps chain link walks; 0 keeps the built-in default.
	TraversalDepthLimit int
	// GenesisBalance is the balance the genesis instance is endowed with.
	GenesisBalance uint64
}

// NewChain creates new default Chain configuration.
func NewChain() Chain {
	return Chain{
		TraversalDepthLimit: 0,
		GenesisBalance:      1000000000,
	}
}

// Configuration is the root configuration struct.
type Configuration struct {
	Log   Log
	Chain Chain
}

// NewConfiguration creates new default configuration.
func NewConfiguration() Configuration {
	return Configuration{
		Log:   NewLog(),
		Chain: NewChain(),
	}
}

// ToString returns the configuration in a printable form.
func ToString(cfg interface{}) string {
	out, err := jsoniter.ConfigCompatibleWithStandardLibrary.MarshalIndent(cfg, "", "    ")
	if err != nil {
		return "<malformed config>"
	}
	return string(out)
}
