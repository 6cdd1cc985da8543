// Copyright 2020 Insolar Network Ltd.
// All rights reserved.
// This material is licensed under the Insolar License version 1.0,
// available at https://github.com/insolar/verchain/blob/master/LICENSE.md.

package chain_test

import (
	"sync"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/insolar/verchain/chain"
	"github.com/insolar/verchain/testutils"
	"github.com/insolar/verchain/testutils/gen"
)

func TestDeploy_Validation(t *testing.T) {
	hub := chain.NewHub(chain.HubParams{})
	authority := gen.Identity()
	manager := gen.Identity()

	t.Run("empty authority", func(t *testing.T) {
		_, err := hub.Deploy(chain.DeployParams{Manager: manager})
		require.Error(t, err)
		assert.Equal(t, chain.ErrInvalidArgument, errors.Cause(err))
	})

	t.Run("empty manager", func(t *testing.T) {
		_, err := hub.Deploy(chain.DeployParams{Authority: authority})
		require.Error(t, err)
		assert.Equal(t, chain.ErrInvalidArgument, errors.Cause(err))
	})

	t.Run("genesis with nonzero version", func(t *testing.T) {
		_, err := hub.Deploy(chain.DeployParams{
			Authority: authority, Manager: manager, Version: 1,
		})
		require.Error(t, err)
		assert.Equal(t, chain.ErrChainBroken, errors.Cause(err))
	})

	t.Run("unknown predecessor", func(t *testing.T) {
		_, err := hub.Deploy(chain.DeployParams{
			Authority: authority, Manager: manager, Version: 1, Prev: gen.Address(),
		})
		require.Error(t, err)
		assert.Equal(t, chain.ErrChainBroken, errors.Cause(err))
	})

	t.Run("version gap", func(t *testing.T) {
		genesis, err := hub.Deploy(chain.DeployParams{Authority: authority, Manager: manager})
		require.NoError(t, err)

		_, err = hub.Deploy(chain.DeployParams{
			Authority: authority, Manager: manager, Version: 2, Prev: genesis.Address(),
		})
		require.Error(t, err)
		assert.Equal(t, chain.ErrChainBroken, errors.Cause(err))
	})
}

func TestDeploy_SetsConstructionState(t *testing.T) {
	hub := chain.NewHub(chain.HubParams{})
	founder := gen.Identity()
	authority := gen.Identity()
	manager := gen.Identity()

	genesis, err := hub.Deploy(chain.DeployParams{
		Founder: founder, Authority: authority, Manager: manager, InitialBalance: 42,
	})
	require.NoError(t, err)

	assert.False(t, genesis.Address().IsEmpty())
	assert.Equal(t, uint32(0), genesis.Version())
	assert.True(t, genesis.Prev().IsEmpty())
	assert.True(t, genesis.Next().IsEmpty())
	assert.False(t, genesis.IsActive())
	assert.Equal(t, founder, genesis.Founder())
	assert.Equal(t, authority, genesis.Authority())
	assert.Equal(t, manager, genesis.Manager())
	assert.Equal(t, uint64(42), genesis.Balance())

	got, ok := hub.Get(genesis.Address())
	require.True(t, ok)
	assert.True(t, genesis == got)

	_, ok = hub.Get(gen.Address())
	assert.False(t, ok)
}

func TestHub_ConcurrentCallers(t *testing.T) {
	const (
		workers = 8
		rounds  = 50
	)

	c := testutils.NewTestChain(t, chain.HubParams{}, 3, 100)
	tip := c.Tip()

	var wg sync.WaitGroup
	wg.Add(workers * 2)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for r := 0; r < rounds; r++ {
				assert.NoError(t, tip.Accept(1))
			}
		}()
		go func() {
			defer wg.Done()
			for r := 0; r < rounds; r++ {
				_, err := c.Genesis().ResolveTip()
				assert.NoError(t, err)
				_, err = tip.Resolve(0)
				assert.NoError(t, err)
				_, err = c.Instances[1].Count()
				assert.NoError(t, err)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, uint64(workers*rounds), tip.Balance())
}

func TestHub_ConcurrentActivationRace(t *testing.T) {
	const rivals = 4

	c := testutils.NewTestChain(t, chain.HubParams{}, 1, 0)
	genesis := c.Genesis()

	candidates := make([]*chain.Instance, rivals)
	for i := range candidates {
		next, err := c.Hub.Deploy(chain.DeployParams{
			Authority: c.Authority, Manager: c.Manager, Version: 1, Prev: genesis.Address(),
		})
		require.NoError(t, err)
		candidates[i] = next
	}
	require.NoError(t, genesis.Upgrade(c.AuthorityCall(), candidates[0].Address()))

	var wg sync.WaitGroup
	wg.Add(rivals)
	for _, cand := range candidates {
		go func(inst *chain.Instance) {
			defer wg.Done()
			_ = inst.Activate(chain.CallContext{})
		}(cand)
	}
	wg.Wait()

	// only the instance genesis handed off to can have won
	active := 0
	for _, cand := range candidates {
		if cand.IsActive() {
			active++
			assert.Equal(t, candidates[0].Address(), cand.Address())
		}
	}
	assert.Equal(t, 1, active)

	count, err := genesis.Count()
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}
