// SPDX-FileCopyrightText: 2024 SAP SE or an SAP affiliate company
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"fmt"

	"github.com/gofrs/uuid"
)

// IdentifierSupplier yields a distinct string of the form "node-<n>" on each
// call, used only for the NODE_NAME default-value generator (spec §6
// "Random identifier supplier"). It is injected rather than called through a
// package-level global so that tests can control it deterministically
// (spec §9).
type IdentifierSupplier interface {
	NextNodeName() string
}

// RandomIdentifierSupplier is the production IdentifierSupplier. Each call
// mints a fresh random suffix.
type RandomIdentifierSupplier struct{}

// NextNodeName implements the IdentifierSupplier interface.
func (RandomIdentifierSupplier) NextNodeName() string {
	return "node-" + uuid.Must(uuid.NewV4()).String()
}

// SequentialIdentifierSupplier is a deterministic IdentifierSupplier for
// tests: it returns "node-1", "node-2", ... on successive calls.
type SequentialIdentifierSupplier struct {
	next int
}

// NextNodeName implements the IdentifierSupplier interface.
func (s *SequentialIdentifierSupplier) NextNodeName() string {
	s.next++
	return fmt.Sprintf("node-%d", s.next)
}
