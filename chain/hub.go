// Copyright 2020 Insolar Network Ltd.
// All rights reserved.
// This material is licensed under the Insolar License version 1.0,
// available at https://github.com/insolar/verchain/blob/master/LICENSE.md.

package chain

import (
	"sync"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/insolar/verchain/reference"
)

// DefaultTraversalDepthLimit caps link walks. Real chains are a few dozen
// versions long, so hitting the cap always means a corrupted chain.
const DefaultTraversalDepthLimit = 4096

const deployAddressRetries = 5

// HubParams configures a Hub.
type HubParams struct {
	// Logger receives structured records of every state transition.
	// Nil disables logging.
	Logger *zerolog.Logger
	// TraversalDepthLimit overrides DefaultTraversalDepthLimit when positive.
	TraversalDepthLimit int
}

// Hub is the host-platform stand-in: the address directory of deployed
// instances plus the global lock that gives every operation the
// single-sequential-ordering, all-or-nothing execution the protocol assumes.
type Hub struct {
	mu         sync.RWMutex
	objects    map[reference.Address]*Instance
	depthLimit int
	log        zerolog.Logger
}

// NewHub creates an empty directory.
func NewHub(params HubParams) *Hub {
	limit := params.TraversalDepthLimit
	if limit <= 0 {
		limit = DefaultTraversalDepthLimit
	}
	log := zerolog.Nop()
	if params.Logger != nil {
		log = *params.Logger
	}
	return &Hub{
		objects:    make(map[reference.Address]*Instance),
		depthLimit: limit,
		log:        log,
	}
}

// DeployParams carries the construction-time state of an instance.
type DeployParams struct {
	Founder   reference.Identity
	Authority reference.Identity
	Manager   reference.Identity

	// Version must equal the sequential position in the chain: 0 with an
	// empty Prev, predecessor version plus one otherwise.
	Version uint32
	Prev    reference.Address

	InitialBalance uint64
}

// Deploy constructs an instance, assigns it a fresh address and registers it
// in the directory. The instance starts inactive.
func (h *Hub) Deploy(params DeployParams) (*Instance, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if params.Authority.IsEmpty() {
		return nil, errors.Wrap(ErrInvalidArgument, "empty authority identity")
	}
	if params.Manager.IsEmpty() {
		return nil, errors.Wrap(ErrInvalidArgument, "empty manager identity")
	}

	if params.Prev.IsEmpty() {
		if params.Version != 0 {
			return nil, errors.Wrapf(ErrChainBroken, "genesis must be version 0, got %d", params.Version)
		}
	} else {
		prev, ok := h.objects[params.Prev]
		if !ok {
			return nil, errors.Wrap(ErrChainBroken, "predecessor is not deployed")
		}
		if prev.version+1 != params.Version {
			return nil, errors.Wrapf(ErrChainBroken,
				"version %d does not follow predecessor version %d", params.Version, prev.version)
		}
	}

	addr, err := h.newAddressLocked()
	if err != nil {
		return nil, err
	}

	inst := &Instance{
		hub:       h,
		address:   addr,
		version:   params.Version,
		prev:      params.Prev,
		founder:   params.Founder,
		authority: params.Authority,
		manager:   params.Manager,
		balance:   params.InitialBalance,
	}
	h.objects[addr] = inst

	h.log.Info().
		Stringer("address", addr).
		Uint32("version", params.Version).
		Stringer("prev", params.Prev).
		Msg("instance deployed")
	return inst, nil
}

// Get returns the deployed instance behind addr.
func (h *Hub) Get(addr reference.Address) (*Instance, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	inst, ok := h.objects[addr]
	return inst, ok
}

func (h *Hub) newAddressLocked() (reference.Address, error) {
	for attempt := 0; attempt < deployAddressRetries; attempt++ {
		addr, err := reference.NewRandomAddress()
		if err != nil {
			return reference.Address{}, errors.Wrap(err, "failed to allocate address")
		}
		if _, taken := h.objects[addr]; !taken {
			return addr, nil
		}
	}
	return reference.Address{}, errors.New("failed to allocate a unique address")
}

// lookupLocked follows a stored link. A missing target means a dangling
// link, which is always a chain integrity failure.
func (h *Hub) lookupLocked(addr reference.Address) (*Instance, error) {
	inst, ok := h.objects[addr]
	if !ok {
		return nil, errors.Wrapf(ErrChainBroken, "dangling link to %s", addr)
	}
	return inst, nil
}

// genesisOfLocked walks prev links down to the version 0 instance.
func (h *Hub) genesisOfLocked(from *Instance) (*Instance, error) {
	cur := from
	for step := 0; step <= h.depthLimit; step++ {
		if cur.prev.IsEmpty() {
			if cur.version != 0 {
				return nil, errors.Wrapf(ErrChainBroken,
					"chain root has version %d instead of 0", cur.version)
			}
			return cur, nil
		}
		var err error
		cur, err = h.lookupLocked(cur.prev)
		if err != nil {
			return nil, err
		}
	}
	return nil, errors.Wrap(ErrChainBroken, "traversal depth limit exceeded")
}
