// Copyright 2020 Insolar Network Ltd.
// All rights reserved.
// This material is licensed under the Insolar License version 1.0,
// available at https://github.com/insolar/verchain/blob/master/LICENSE.md.

// Package testutils provides fixtures for chain tests.
package testutils

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/insolar/verchain/chain"
	"github.com/insolar/verchain/reference"
	"github.com/insolar/verchain/testutils/gen"
)

// TestChain is a deployed chain with known role identities.
type TestChain struct {
	Hub *chain.Hub

	Founder   reference.Identity
	Authority reference.Identity
	Manager   reference.Identity

	// Instances holds every deployed version, genesis first.
	Instances []*chain.Instance
}

// Genesis returns the version 0 instance.
func (c *TestChain) Genesis() *chain.Instance {
	return c.Instances[0]
}

// Tip returns the highest deployed version.
func (c *TestChain) Tip() *chain.Instance {
	return c.Instances[len(c.Instances)-1]
}

// AuthorityCall returns a CallContext acting as the chain authority.
func (c *TestChain) AuthorityCall() chain.CallContext {
	return chain.CallContext{Caller: c.Authority}
}

// ManagerCall returns a CallContext acting as the chain manager.
func (c *TestChain) ManagerCall() chain.CallContext {
	return chain.CallContext{Caller: c.Manager}
}

// NewTestChain deploys a fresh hub holding a valid, fully activated chain of
// the given length: the genesis plus length-1 upgrades, each followed by the
// Activate call of the new version.
func NewTestChain(t testing.TB, hubParams chain.HubParams, length int, genesisBalance uint64) *TestChain {
	require.True(t, length > 0, "chain length must be positive")

	c := &TestChain{
		Hub:       chain.NewHub(hubParams),
		Founder:   gen.Identity(),
		Authority: gen.Identity(),
		Manager:   gen.Identity(),
	}

	genesis, err := c.Hub.Deploy(chain.DeployParams{
		Founder:        c.Founder,
		Authority:      c.Authority,
		Manager:        c.Manager,
		Version:        0,
		InitialBalance: genesisBalance,
	})
	require.NoError(t, err)
	require.NoError(t, genesis.Activate(chain.CallContext{Caller: c.Founder}))
	c.Instances = append(c.Instances, genesis)

	for v := 1; v < length; v++ {
		c.GrowTo(t, uint32(v))
	}
	return c
}

// GrowTo deploys version, upgrades the current tip to it and activates it.
func (c *TestChain) GrowTo(t testing.TB, version uint32) *chain.Instance {
	prev := c.Tip()
	next, err := c.Hub.Deploy(chain.DeployParams{
		Founder:   c.Founder,
		Authority: c.Authority,
		Manager:   c.Manager,
		Version:   version,
		Prev:      prev.Address(),
	})
	require.NoError(t, err)
	require.NoError(t, prev.Upgrade(c.AuthorityCall(), next.Address()))
	require.NoError(t, next.Activate(chain.CallContext{Caller: c.Founder}))

	c.Instances = append(c.Instances, next)
	return next
}
