// Copyright 2020 Insolar Network Ltd.
// All rights reserved.
// This material is licensed under the Insolar License version 1.0,
// available at https://github.com/insolar/verchain/blob/master/LICENSE.md.

package chainview

import (
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
)

type tablePrinter struct {
	out io.Writer
}

// NewTablePrinter renders snapshots as an ASCII table.
func NewTablePrinter(out io.Writer) Printer {
	return tablePrinter{out: out}
}

func (p tablePrinter) Print(rows []Row) error {
	table := tablewriter.NewWriter(p.out)
	table.SetHeader([]string{"Version", "Address", "Active", "Balance", "Successor"})

	for _, row := range rows {
		active := ""
		if row.Active {
			active = "yes"
		}
		table.Append([]string{
			strconv.FormatUint(uint64(row.Version), 10),
			row.Address,
			active,
			strconv.FormatUint(row.Balance, 10),
			row.Successor,
		})
	}
	table.Render()
	return nil
}
