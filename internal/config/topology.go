// SPDX-FileCopyrightText: 2024 SAP SE or an SAP affiliate company
// SPDX-License-Identifier: Apache-2.0

package config

import "fmt"

// Node holds the per-node configuration fields an Expression can address at
// NODE scope (spec §4.7). Fields default to the zero value until an
// Expression carrying a value is applied; Setting.DefaultText is never
// written into them.
type Node struct {
	Hostname            string
	Port                string
	Name                string
	BindAddress          string
	GroupBindAddress     string
	GroupPort            string
	LogDir               string
	BackupDir            string
	MetadataDir          string
	SecurityDir          string
	SecurityAuditLogDir  string
	DataDirs             map[string]string
	TCProperties         map[string]string
}

// Stripe is an ordered collection of nodes (spec §3 "Stripe"). Node IDs are
// 1-based positions within this slice.
type Stripe struct {
	Nodes []*Node
}

// Cluster is the top-level topology an Expression's Apply resolves scopes
// against (spec §3 "Cluster"). Stripe IDs are 1-based positions within this
// slice.
type Cluster struct {
	Name                  string
	ClientReconnectWindow string
	ClientLeaseDuration   string
	FailoverPriority      string
	SecuritySSLTLS        string
	SecurityWhitelist     string
	SecurityAuthc         string
	OffheapResources      map[string]string
	Stripes               []*Stripe
}

// StripeAt resolves a 1-based stripe ID, returning the exact "Invalid stripe
// ID" error from spec §4.7 when it is out of range.
func (c *Cluster) StripeAt(id int) (*Stripe, error) {
	if id < 1 || id > len(c.Stripes) {
		return nil, fmt.Errorf("Invalid stripe ID: %d. Cluster contains: %d stripe(s)", id, len(c.Stripes)) //nolint:stylecheck // exact wording is part of the public contract
	}
	return c.Stripes[id-1], nil
}

// NodeAt resolves a 1-based node ID within this stripe, returning the exact
// "Invalid node ID" error from spec §4.7 when it is out of range. stripeID
// is only used to render the message and is not checked against c.
func (s *Stripe) NodeAt(stripeID, id int) (*Node, error) {
	if id < 1 || id > len(s.Nodes) {
		return nil, fmt.Errorf("Invalid node ID: %d. Stripe ID: %d contains: %d node(s)", id, stripeID, len(s.Nodes)) //nolint:stylecheck // exact wording is part of the public contract
	}
	return s.Nodes[id-1], nil
}
