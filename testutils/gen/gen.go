// Copyright 2020 Insolar Network Ltd.
// All rights reserved.
// This material is licensed under the Insolar License version 1.0,
// available at https://github.com/insolar/verchain/blob/master/LICENSE.md.

// Package gen provides random values for tests.
package gen

import (
	"github.com/insolar/verchain/reference"
)

// Address returns a random instance address.
func Address() reference.Address {
	a, err := reference.NewRandomAddress()
	if err != nil {
		panic(err)
	}
	return a
}

// Identity returns a random caller identity.
func Identity() reference.Identity {
	v, err := reference.NewRandomIdentity()
	if err != nil {
		panic(err)
	}
	return v
}
