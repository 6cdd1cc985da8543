// Copyright 2020 Insolar Network Ltd.
// All rights reserved.
// This material is licensed under the Insolar License version 1.0,
// available at https://github.com/insolar/verchain/blob/master/LICENSE.md.

package configuration

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

const envPrefix = "verchain"

// Holder loads a Configuration from a YAML file with VERCHAIN_ environment
// overrides on top.
type Holder struct {
	Configuration *Configuration

	viper *viper.Viper
	path  string
}

// NewHolder creates a Holder for the given config path. An empty path means
// defaults plus environment only.
func NewHolder(path string) *Holder {
	cfg := NewConfiguration()
	holder := &Holder{Configuration: &cfg, viper: viper.New(), path: path}

	holder.viper.SetEnvPrefix(envPrefix)
	holder.viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	holder.viper.AutomaticEnv()
	return holder
}

// Load reads the file (when set) and environment into the held Configuration.
func (h *Holder) Load() error {
	if h.path != "" {
		h.viper.SetConfigFile(h.path)
		if err := h.viper.ReadInConfig(); err != nil {
			return errors.Wrap(err, "failed to read config file")
		}
	}
	// viper only applies env overrides for keys it knows about
	h.setDefaults()
	if err := h.viper.Unmarshal(h.Configuration); err != nil {
		return errors.Wrap(err, "failed to parse configuration")
	}
	return nil
}

// MustLoad panics on a load failure. Intended for binary startup paths.
func (h *Holder) MustLoad() *Holder {
	if err := h.Load(); err != nil {
		panic(err)
	}
	return h
}

func (h *Holder) setDefaults() {
	cfg := h.Configuration
	h.viper.SetDefault("log.level", cfg.Log.Level)
	h.viper.SetDefault("log.formatter", cfg.Log.Formatter)
	h.viper.SetDefault("chain.traversaldepthlimit", cfg.Chain.TraversalDepthLimit)
	h.viper.SetDefault("chain.genesisbalance", cfg.Chain.GenesisBalance)
}
