// Copyright 2020 Insolar Network Ltd.
// All rights reserved.
// This material is licensed under the Insolar License version 1.0,
// available at https://github.com/insolar/verchain/blob/master/LICENSE.md.

package chain

import (
	"github.com/pkg/errors"

	"github.com/insolar/verchain/reference"
)

// Resolve maps a version number to the address of the instance holding it.
// The walk follows prev links for smaller versions and next links for
// larger ones, so its cost is the link distance between this instance and
// the target. A version outside the chain fails with ErrChainBroken.
func (i *Instance) Resolve(targetVersion uint32) (reference.Address, error) {
	i.hub.mu.RLock()
	defer i.hub.mu.RUnlock()
	return i.resolveLocked(targetVersion)
}

func (i *Instance) resolveLocked(targetVersion uint32) (reference.Address, error) {
	cur := i
	for step := 0; step <= i.hub.depthLimit; step++ {
		var link reference.Address
		switch {
		case cur.version == targetVersion:
			return cur.address, nil
		case targetVersion < cur.version:
			link = cur.prev
		default:
			link = cur.next
		}
		if link.IsEmpty() {
			return reference.Address{}, errors.Wrapf(ErrChainBroken,
				"version %d is not in this chain", targetVersion)
		}
		var err error
		cur, err = i.hub.lookupLocked(link)
		if err != nil {
			return reference.Address{}, err
		}
	}
	return reference.Address{}, errors.Wrap(ErrChainBroken, "traversal depth limit exceeded")
}

// ResolveTip returns the address of the chain's currently active instance.
// It walks next links and cross-checks the active flag on every hop, so any
// tip/active disagreement surfaces as ErrChainBroken instead of being
// silently resolved.
func (i *Instance) ResolveTip() (reference.Address, error) {
	i.hub.mu.RLock()
	defer i.hub.mu.RUnlock()
	return i.resolveTipLocked()
}

func (i *Instance) resolveTipLocked() (reference.Address, error) {
	cur := i
	for step := 0; step <= i.hub.depthLimit; step++ {
		if cur.next.IsEmpty() {
			if !cur.active {
				return reference.Address{}, errors.Wrapf(ErrChainBroken,
					"tip %s of version %d is not active", cur.address, cur.version)
			}
			return cur.address, nil
		}
		if cur.active {
			return reference.Address{}, errors.Wrapf(ErrChainBroken,
				"active instance %s has a successor", cur.address)
		}
		var err error
		cur, err = i.hub.lookupLocked(cur.next)
		if err != nil {
			return reference.Address{}, err
		}
	}
	return reference.Address{}, errors.Wrap(ErrChainBroken, "traversal depth limit exceeded")
}
