// Copyright 2020 Insolar Network Ltd.
// All rights reserved.
// This material is licensed under the Insolar License version 1.0,
// available at https://github.com/insolar/verchain/blob/master/LICENSE.md.

package chain

import (
	"github.com/pkg/errors"

	"github.com/insolar/verchain/reference"
)

// Instance is one deployed member of a version chain.
//
// All fields are guarded by the owning Hub's lock. An Instance is never
// destroyed: once deactivated it stays reachable for delegation of the data
// it owns.
type Instance struct {
	hub *Hub

	address reference.Address
	version uint32
	prev    reference.Address
	next    reference.Address
	active  bool

	founder   reference.Identity
	authority reference.Identity
	manager   reference.Identity

	balance uint64

	// activated is the chain registry: addresses in activation order.
	// Only the genesis instance ever holds it.
	activated []reference.Address
}

func (i *Instance) Address() reference.Address {
	return i.address
}

// Hub returns the directory this instance is deployed in.
func (i *Instance) Hub() *Hub {
	return i.hub
}

func (i *Instance) Version() uint32 {
	return i.version
}

func (i *Instance) Founder() reference.Identity {
	return i.founder
}

func (i *Instance) Prev() reference.Address {
	i.hub.mu.RLock()
	defer i.hub.mu.RUnlock()
	return i.prev
}

func (i *Instance) Next() reference.Address {
	i.hub.mu.RLock()
	defer i.hub.mu.RUnlock()
	return i.next
}

func (i *Instance) IsActive() bool {
	i.hub.mu.RLock()
	defer i.hub.mu.RUnlock()
	return i.active
}

func (i *Instance) Authority() reference.Identity {
	i.hub.mu.RLock()
	defer i.hub.mu.RUnlock()
	return i.authority
}

func (i *Instance) Manager() reference.Identity {
	i.hub.mu.RLock()
	defer i.hub.mu.RUnlock()
	return i.manager
}

func (i *Instance) Balance() uint64 {
	i.hub.mu.RLock()
	defer i.hub.mu.RUnlock()
	return i.balance
}

// isGenesisLocked reports whether this instance is the chain root.
func (i *Instance) isGenesisLocked() bool {
	return i.prev.IsEmpty() && i.version == 0
}

// Accept adds funds to the held balance. Anybody may endow an instance.
func (i *Instance) Accept(amount uint64) error {
	i.hub.mu.Lock()
	defer i.hub.mu.Unlock()
	i.balance += amount
	return nil
}

// SetAuthority reassigns the authority identity. Only the current authority
// may call it, and never with an empty identity.
func (i *Instance) SetAuthority(ctx CallContext, newAuthority reference.Identity) error {
	i.hub.mu.Lock()
	defer i.hub.mu.Unlock()

	if !ctx.Caller.Equal(i.authority) {
		return errors.Wrap(ErrUnauthorized, "authority required")
	}
	if newAuthority.IsEmpty() {
		return errors.Wrap(ErrInvalidArgument, "empty authority identity")
	}
	i.authority = newAuthority

	i.hub.log.Info().
		Stringer("address", i.address).
		Stringer("authority", newAuthority).
		Msg("authority reassigned")
	return nil
}

// SetManager reassigns the manager identity. Only the current manager may
// call it, and never with an empty identity.
func (i *Instance) SetManager(ctx CallContext, newManager reference.Identity) error {
	i.hub.mu.Lock()
	defer i.hub.mu.Unlock()

	if !ctx.Caller.Equal(i.manager) {
		return errors.Wrap(ErrUnauthorized, "manager required")
	}
	if newManager.IsEmpty() {
		return errors.Wrap(ErrInvalidArgument, "empty manager identity")
	}
	i.manager = newManager

	i.hub.log.Info().
		Stringer("address", i.address).
		Stringer("manager", newManager).
		Msg("manager reassigned")
	return nil
}
