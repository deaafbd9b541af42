// SPDX-FileCopyrightText: 2024 SAP SE or an SAP affiliate company
// SPDX-License-Identifier: Apache-2.0

package config

import "fmt"

// ScopeKind identifies the granularity at which a setting is addressed.
type ScopeKind uint8

const (
	// ClusterScope addresses the cluster as a whole.
	ClusterScope ScopeKind = iota
	// StripeScope addresses a single stripe within the cluster.
	StripeScope
	// NodeScope addresses a single node within a stripe.
	NodeScope
)

// String renders the scope kind the way it appears in "level" error
// messages, e.g. "does not allow any operation at `cluster` level".
func (k ScopeKind) String() string {
	switch k {
	case ClusterScope:
		return "cluster"
	case StripeScope:
		return "stripe"
	case NodeScope:
		return "node"
	default:
		return "unknown"
	}
}

// Scope is the tagged variant {CLUSTER, STRIPE(stripeId), NODE(stripeId,
// nodeId)} from spec §3. StripeID and NodeID are only meaningful for the
// scope kinds that carry them; both are always >= 1 when present.
type Scope struct {
	Kind     ScopeKind
	StripeID int
	NodeID   int
}

// ScopeAtCluster constructs the CLUSTER scope. It is not named Cluster() to
// avoid colliding with the Cluster topology type in topology.go.
func ScopeAtCluster() Scope {
	return Scope{Kind: ClusterScope}
}

// ScopeAtStripe constructs the STRIPE(stripeId) scope.
func ScopeAtStripe(stripeID int) Scope {
	return Scope{Kind: StripeScope, StripeID: stripeID}
}

// ScopeAtNode constructs the NODE(stripeId, nodeId) scope.
func ScopeAtNode(stripeID, nodeID int) Scope {
	return Scope{Kind: NodeScope, StripeID: stripeID, NodeID: nodeID}
}

// Contains reports whether this scope is a prefix of (or equal to) the other
// scope in the sense used by the Matcher: CLUSTER contains any scope,
// STRIPE(s) contains STRIPE(s) and NODE(s, _), NODE(s, n) contains only
// itself.
func (s Scope) Contains(other Scope) bool {
	switch s.Kind {
	case ClusterScope:
		return true
	case StripeScope:
		if other.Kind == ClusterScope {
			return false
		}
		return other.StripeID == s.StripeID
	case NodeScope:
		return other.Kind == NodeScope && other.StripeID == s.StripeID && other.NodeID == s.NodeID
	default:
		return false
	}
}

// Prefix renders the scope prefix of the canonical textual form, e.g.
// "stripe.2.node.1." for NODE(2, 1), or "" for CLUSTER.
func (s Scope) Prefix() string {
	switch s.Kind {
	case ClusterScope:
		return ""
	case StripeScope:
		return fmt.Sprintf("stripe.%d.", s.StripeID)
	case NodeScope:
		return fmt.Sprintf("stripe.%d.node.%d.", s.StripeID, s.NodeID)
	default:
		return ""
	}
}
