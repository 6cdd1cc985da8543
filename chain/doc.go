// Copyright 2020 Insolar Network Ltd.
// All rights reserved.
// This material is licensed under the Insolar License version 1.0,
// available at https://github.com/insolar/verchain/blob/master/LICENSE.md.

// Package chain implements the lifecycle and delegation protocol for chains
// of versioned, deploy-once instances.
//
// Every instance is deployed exactly once and permanently owns the data it
// introduced. Later versions never relocate that data; they delegate reads
// and writes back along the chain. At most one instance of a chain is active
// at any time, and authority plus held funds move to a successor atomically
// during an upgrade.
//
// The Hub stands in for the host platform: it keeps the address directory
// and serializes every call, so an operation is either fully applied or not
// applied at all.
package chain
