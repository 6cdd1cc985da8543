// Copyright 2020 Insolar Network Ltd.
// All rights reserved.
// This material is licensed under the Insolar License version 1.0,
// available at https://github.com/insolar/verchain/blob/master/LICENSE.md.

// Package chainview renders the observable state of a version chain.
package chainview

import (
	"github.com/pkg/errors"

	"github.com/insolar/verchain/chain"
)

// Row is the observable state of one chain member.
type Row struct {
	Version   uint32
	Address   string
	Active    bool
	Balance   uint64
	Successor string
}

// Printer renders a chain snapshot.
type Printer interface {
	Print([]Row) error
}

// Snapshot collects a Row per registered version, genesis first. Any
// instance of the chain works as the starting point.
func Snapshot(from *chain.Instance) ([]Row, error) {
	count, err := from.Count()
	if err != nil {
		return nil, errors.Wrap(err, "failed to read chain registry")
	}

	rows := make([]Row, 0, count)
	for v := uint32(0); int(v) < count; v++ {
		addr, err := from.Resolve(v)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to resolve version %d", v)
		}
		inst, ok := from.Hub().Get(addr)
		if !ok {
			return nil, errors.Errorf("version %d resolved to an unknown address %s", v, addr)
		}

		row := Row{
			Version: inst.Version(),
			Address: addr.String(),
			Active:  inst.IsActive(),
			Balance: inst.Balance(),
		}
		if next := inst.Next(); !next.IsEmpty() {
			row.Successor = next.String()
		}
		rows = append(rows, row)
	}
	return rows, nil
}
