// Copyright 2020 Insolar Network Ltd.
// All rights reserved.
// This material is licensed under the Insolar License version 1.0,
// available at https://github.com/insolar/verchain/blob/master/LICENSE.md.

package chain

import (
	"github.com/pkg/errors"

	"github.com/insolar/verchain/reference"
)

// Activate makes this instance the live tip of its chain. It may succeed
// exactly once per instance: after deploy for genesis, and after the
// predecessor handed off for any later version.
func (i *Instance) Activate(ctx CallContext) error {
	i.hub.mu.Lock()
	defer i.hub.mu.Unlock()

	if i.active {
		return errors.Wrap(ErrWrongState, "already active")
	}
	if !i.next.IsEmpty() {
		return errors.Wrap(ErrWrongState, "instance with a successor cannot activate")
	}

	if !i.prev.IsEmpty() {
		prev, err := i.hub.lookupLocked(i.prev)
		if err != nil {
			return err
		}
		if prev.active {
			return errors.Wrap(ErrWrongState, "predecessor is still active")
		}
		if prev.version+1 != i.version {
			return errors.Wrapf(ErrChainBroken,
				"version %d does not follow predecessor version %d", i.version, prev.version)
		}
	}

	i.active = true
	err := i.recordActivationLocked(CallContext{CallerObject: i.address}, i.address)
	if err != nil {
		i.active = false
		return errors.Wrap(err, "activation was not registered")
	}

	i.hub.log.Info().
		Stringer("address", i.address).
		Uint32("version", i.version).
		Msg("instance activated")
	return nil
}

// Upgrade hands authority and the whole held balance off to the successor
// at newAddr. Only the authority may call it, and only on the active
// instance. The hand-off is all-or-nothing: if the successor rejects the
// Init handshake, nothing changes.
func (i *Instance) Upgrade(ctx CallContext, newAddr reference.Address) error {
	i.hub.mu.Lock()
	defer i.hub.mu.Unlock()

	if !ctx.Caller.Equal(i.authority) {
		return errors.Wrap(ErrUnauthorized, "authority required")
	}
	if !i.active {
		return errors.Wrap(ErrWrongState, "only the active instance can be upgraded")
	}
	if newAddr.IsEmpty() {
		return errors.Wrap(ErrInvalidArgument, "empty successor address")
	}
	if newAddr.Equal(i.address) {
		return errors.Wrap(ErrInvalidArgument, "instance cannot succeed itself")
	}
	succ, err := i.hub.lookupLocked(newAddr)
	if err != nil {
		return err
	}

	// Stage the transition, then run the fund-carrying handshake. The
	// successor sees its predecessor already deactivated; a rejected
	// handshake rolls the staged fields back.
	i.next = newAddr
	i.active = false
	amount := i.balance

	err = succ.initLocked(CallContext{Caller: ctx.Caller, CallerObject: i.address}, amount)
	if err != nil {
		i.next = reference.Address{}
		i.active = true
		return errors.Wrap(err, "hand-off rejected by successor")
	}
	i.balance = 0

	i.hub.log.Info().
		Stringer("address", i.address).
		Stringer("successor", newAddr).
		Uint32("version", i.version).
		Uint64("transferred", amount).
		Msg("instance upgraded")
	return nil
}

// Init acknowledges a hand-off. It is the receiving end of Upgrade and may
// only be called by the recorded predecessor, before this instance is
// active. It never flips the active flag: a separate Activate call brings
// the instance live.
func (i *Instance) Init(ctx CallContext) error {
	i.hub.mu.Lock()
	defer i.hub.mu.Unlock()
	return i.initLocked(ctx, 0)
}

func (i *Instance) initLocked(ctx CallContext, amount uint64) error {
	if ctx.CallerObject.IsEmpty() || !ctx.CallerObject.Equal(i.prev) {
		return errors.Wrap(ErrUnauthorized, "only the predecessor may initialize")
	}
	if i.active {
		return errors.Wrap(ErrWrongState, "already active")
	}

	prev, err := i.hub.lookupLocked(i.prev)
	if err != nil {
		return err
	}
	// Replay guard: a hand-off is only acknowledged once the predecessor
	// has actually stepped down.
	if prev.active {
		return errors.Wrap(ErrWrongState, "predecessor is still active")
	}

	i.balance += amount
	return nil
}
