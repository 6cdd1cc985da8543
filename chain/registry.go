// Copyright 2020 Insolar Network Ltd.
// All rights reserved.
// This material is licensed under the Insolar License version 1.0,
// available at https://github.com/insolar/verchain/blob/master/LICENSE.md.

package chain

import (
	"github.com/pkg/errors"

	"github.com/insolar/verchain/reference"
)

// Count returns how many instances of this chain have ever been activated.
// Non-genesis instances delegate to the genesis, which owns the registry.
func (i *Instance) Count() (int, error) {
	i.hub.mu.RLock()
	defer i.hub.mu.RUnlock()

	genesis, err := i.hub.genesisOfLocked(i)
	if err != nil {
		return 0, err
	}
	return len(genesis.activated), nil
}

// List returns the registry: activated addresses in activation order.
// It is deliberately not delegating - only the genesis instance answers,
// everybody else must resolve the genesis first.
func (i *Instance) List() ([]reference.Address, error) {
	i.hub.mu.RLock()
	defer i.hub.mu.RUnlock()

	if !i.isGenesisLocked() {
		return nil, errors.Wrap(ErrWrongState, "registry is held by the genesis instance only")
	}
	out := make([]reference.Address, len(i.activated))
	copy(out, i.activated)
	return out, nil
}

// RecordActivation appends addr to the chain registry. Only the current tip
// of the chain is allowed to write; a non-genesis receiver delegates to the
// genesis. The registry is append-only.
func (i *Instance) RecordActivation(ctx CallContext, addr reference.Address) error {
	i.hub.mu.Lock()
	defer i.hub.mu.Unlock()
	return i.recordActivationLocked(ctx, addr)
}

func (i *Instance) recordActivationLocked(ctx CallContext, addr reference.Address) error {
	genesis, err := i.hub.genesisOfLocked(i)
	if err != nil {
		return err
	}
	return genesis.appendActivationLocked(ctx, addr)
}

func (i *Instance) appendActivationLocked(ctx CallContext, addr reference.Address) error {
	if addr.IsEmpty() {
		return errors.Wrap(ErrInvalidArgument, "empty instance address")
	}
	if ctx.CallerObject.IsEmpty() {
		return errors.Wrap(ErrUnauthorized, "registry writes are instance-to-instance only")
	}
	tip, err := i.resolveTipLocked()
	if err != nil {
		return err
	}
	if !tip.Equal(ctx.CallerObject) {
		return errors.Wrap(ErrUnauthorized, "only the chain tip may write the registry")
	}

	i.activated = append(i.activated, addr)
	return nil
}
