// Copyright 2020 Insolar Network Ltd.
// All rights reserved.
// This material is licensed under the Insolar License version 1.0,
// available at https://github.com/insolar/verchain/blob/master/LICENSE.md.

package chain

import (
	"github.com/pkg/errors"
)

// Root errors of every failure an operation can return. Operation errors
// wrap exactly one of these, so errors.Cause always yields the category.
var (
	// ErrUnauthorized - the caller lacks the required role or identity.
	ErrUnauthorized = errors.New("caller is not authorized")
	// ErrWrongState - the operation was invoked in a wrong active/inactive state.
	ErrWrongState = errors.New("instance is in a wrong state")
	// ErrChainBroken - a required predecessor/successor link is missing or
	// version sequencing does not match.
	ErrChainBroken = errors.New("chain integrity is broken")
	// ErrInvalidArgument - an empty identity or address was supplied.
	ErrInvalidArgument = errors.New("invalid argument")
)
