// Copyright 2020 Insolar Network Ltd.
// All rights reserved.
// This material is licensed under the Insolar License version 1.0,
// available at https://github.com/insolar/verchain/blob/master/LICENSE.md.

package chain

import (
	"github.com/insolar/verchain/reference"
)

// CallContext carries the authenticated principal of a call.
//
// The host platform is trusted to have authenticated both fields before the
// call reaches an instance. CallerObject is set only on instance-to-instance
// calls and names the calling instance; external principals leave it empty.
type CallContext struct {
	Caller       reference.Identity
	CallerObject reference.Address
}
