// Copyright 2020 Insolar Network Ltd.
// All rights reserved.
// This material is licensed under the Insolar License version 1.0,
// available at https://github.com/insolar/verchain/blob/master/LICENSE.md.

// Package reference holds the opaque value types of the host model:
// instance addresses and caller principals. Both are fixed-size values
// with a base58 text form; the zero value always means "absent".
package reference

import (
	base58 "github.com/jbenet/go-base58"
	"github.com/pkg/errors"
	uuid "github.com/satori/go.uuid"
)

// BinarySize is the byte length of Address and Identity values.
const BinarySize = 16

// Address is an opaque reference to a deployed instance.
// The zero value is used for absent chain links.
type Address [BinarySize]byte

// NewRandomAddress returns a fresh unique Address.
func NewRandomAddress() (Address, error) {
	id, err := uuid.NewV4()
	if err != nil {
		return Address{}, errors.Wrap(err, "failed to get entropy for address")
	}
	var a Address
	copy(a[:], id[:])
	return a, nil
}

// AddressFromString decodes the base58 text form produced by String.
func AddressFromString(s string) (Address, error) {
	b := base58.Decode(s)
	if len(b) != BinarySize {
		return Address{}, errors.Errorf("bad address %q", s)
	}
	var a Address
	copy(a[:], b)
	return a, nil
}

func (a Address) IsEmpty() bool {
	return a == Address{}
}

func (a Address) Equal(other Address) bool {
	return a == other
}

func (a Address) String() string {
	return base58.Encode(a[:])
}

// Identity is an authenticated caller principal. It is deliberately a
// distinct type from Address: instances are addressed, principals act.
type Identity [BinarySize]byte

// NewRandomIdentity returns a fresh unique Identity.
func NewRandomIdentity() (Identity, error) {
	id, err := uuid.NewV4()
	if err != nil {
		return Identity{}, errors.Wrap(err, "failed to get entropy for identity")
	}
	var v Identity
	copy(v[:], id[:])
	return v, nil
}

// IdentityFromString decodes the base58 text form produced by String.
func IdentityFromString(s string) (Identity, error) {
	b := base58.Decode(s)
	if len(b) != BinarySize {
		return Identity{}, errors.Errorf("bad identity %q", s)
	}
	var v Identity
	copy(v[:], b)
	return v, nil
}

func (v Identity) IsEmpty() bool {
	return v == Identity{}
}

func (v Identity) Equal(other Identity) bool {
	return v == other
}

func (v Identity) String() string {
	return base58.Encode(v[:])
}
