// Copyright 2020 Insolar Network Ltd.
// All rights reserved.
// This material is licensed under the Insolar License version 1.0,
// available at https://github.com/insolar/verchain/blob/master/LICENSE.md.

package chainview_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/insolar/verchain/chain"
	"github.com/insolar/verchain/chainview"
	"github.com/insolar/verchain/testutils"
)

func TestSnapshot(t *testing.T) {
	c := testutils.NewTestChain(t, chain.HubParams{}, 3, 90)

	rows, err := chainview.Snapshot(c.Instances[1])
	require.NoError(t, err)
	require.Len(t, rows, 3)

	for v, row := range rows {
		assert.Equal(t, uint32(v), row.Version)
		assert.Equal(t, c.Instances[v].Address().String(), row.Address)
	}

	assert.False(t, rows[0].Active)
	assert.False(t, rows[1].Active)
	assert.True(t, rows[2].Active)
	assert.Empty(t, rows[2].Successor)
	assert.Equal(t, rows[1].Successor, rows[2].Address)
	assert.Equal(t, uint64(90), rows[2].Balance)
}

func TestTablePrinter(t *testing.T) {
	c := testutils.NewTestChain(t, chain.HubParams{}, 2, 0)
	rows, err := chainview.Snapshot(c.Genesis())
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, chainview.NewTablePrinter(&buf).Print(rows))
	out := buf.String()
	assert.Contains(t, out, "VERSION")
	assert.Contains(t, out, rows[0].Address)
	assert.Contains(t, out, rows[1].Address)
}

func TestJSONPrinter(t *testing.T) {
	c := testutils.NewTestChain(t, chain.HubParams{}, 2, 0)
	rows, err := chainview.Snapshot(c.Genesis())
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, chainview.NewJSONPrinter(&buf).Print(rows))

	var decoded []chainview.Row
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, rows, decoded)
}
