// SPDX-FileCopyrightText: 2024 SAP SE or an SAP affiliate company
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"fmt"
	"strings"

	"github.com/sapcc/go-bits/errext"
)

// Apply resolves e's scope against cluster and mutates the addressed field
// (spec §4.7). A STRIPE-scope expression for a node-level setting fans out
// to every node in that stripe; a CLUSTER-scope expression for a node-level
// setting fans out to every node in every stripe, by the same reasoning.
// license-file is metadata-only and is silently ignored: Apply does not
// persist the license file anywhere.
func (e Expression) Apply(cluster *Cluster) error {
	switch e.scope.Kind {
	case ClusterScope:
		return e.applyToCluster(cluster)
	case StripeScope:
		stripe, err := cluster.StripeAt(e.scope.StripeID)
		if err != nil {
			return err
		}
		return e.applyToStripe(stripe)
	case NodeScope:
		stripe, err := cluster.StripeAt(e.scope.StripeID)
		if err != nil {
			return err
		}
		node, err := stripe.NodeAt(e.scope.StripeID, e.scope.NodeID)
		if err != nil {
			return err
		}
		return e.applyToNode(node)
	default:
		return fmt.Errorf("unknown scope kind %d", e.scope.Kind)
	}
}

func (e Expression) applyToStripe(stripe *Stripe) error {
	for _, node := range stripe.Nodes {
		if err := e.applyToNode(node); err != nil {
			return err
		}
	}
	return nil
}

func (e Expression) applyToNode(node *Node) error {
	s := e.setting
	switch s.Name {
	case "node-hostname":
		applyScalar(e, &node.Hostname)
	case "node-port":
		applyScalar(e, &node.Port)
	case "node-name":
		applyScalar(e, &node.Name)
	case "node-bind-address":
		applyScalar(e, &node.BindAddress)
	case "node-group-bind-address":
		applyScalar(e, &node.GroupBindAddress)
	case "node-group-port":
		applyScalar(e, &node.GroupPort)
	case "node-log-dir":
		applyScalar(e, &node.LogDir)
	case "backup-dir":
		applyScalar(e, &node.BackupDir)
	case "metadata-dir":
		applyScalar(e, &node.MetadataDir)
	case "security-dir":
		applyScalar(e, &node.SecurityDir)
	case "security-audit-log-dir":
		applyScalar(e, &node.SecurityAuditLogDir)
	case "tc-properties":
		applyMap(e, &node.TCProperties)
	case "data-dirs":
		applyMap(e, &node.DataDirs)
	default:
		return fmt.Errorf("setting %s is not applicable at node or stripe scope", s.Name)
	}
	return nil
}

func (e Expression) applyToCluster(cluster *Cluster) error {
	s := e.setting
	switch s.Name {
	case "cluster-name":
		applyScalar(e, &cluster.Name)
	case "client-reconnect-window":
		applyScalar(e, &cluster.ClientReconnectWindow)
	case "client-lease-duration":
		applyScalar(e, &cluster.ClientLeaseDuration)
	case "failover-priority":
		applyScalar(e, &cluster.FailoverPriority)
	case "security-ssl-tls":
		applyScalar(e, &cluster.SecuritySSLTLS)
	case "security-whitelist":
		applyScalar(e, &cluster.SecurityWhitelist)
	case "security-authc":
		applyScalar(e, &cluster.SecurityAuthc)
	case "offheap-resources":
		applyMap(e, &cluster.OffheapResources)
	case "license-file":
		return nil
	case "node-hostname", "node-port", "node-name",
		"node-bind-address", "node-group-bind-address", "node-group-port", "node-log-dir",
		"backup-dir", "metadata-dir", "security-dir", "security-audit-log-dir",
		"tc-properties", "data-dirs":
		for _, stripe := range cluster.Stripes {
			if err := e.applyToStripe(stripe); err != nil {
				return err
			}
		}
		return nil
	default:
		return fmt.Errorf("setting %s is not applicable at cluster scope", s.Name)
	}
	return nil
}

// applyScalar writes a SET value directly, or, for a clearing UNSET (value
// present and empty), blanks the field. None of the settings that carry a
// static default (Setting.DefaultText) also allow UNSET, so a cleared field
// never needs to fall back to one here. DefaultText is only used by ValueOf;
// nothing in this package fills a never-configured field from it.
func applyScalar(e Expression, target *string) {
	value, hasValue := e.Value()
	if !hasValue {
		return
	}
	*target = value
}

// applyMap implements the three wire forms for map settings from spec §4.7:
// "setting.key=v" inserts or overwrites one entry, "setting.key=" removes
// one entry, "setting=k1:v1,k2:v2" replaces the whole map, and "setting="
// clears the whole map.
func applyMap(e Expression, target *map[string]string) {
	key, hasKey := e.Key()
	value, hasValue := e.Value()
	if !hasValue {
		return
	}
	if hasKey {
		if value == "" {
			if *target != nil {
				delete(*target, key)
			}
			return
		}
		if *target == nil {
			*target = map[string]string{}
		}
		(*target)[key] = value
		return
	}
	if value == "" {
		*target = map[string]string{}
		return
	}
	*target = parseMapLiteral(value)
}

func parseMapLiteral(s string) map[string]string {
	result := map[string]string{}
	for _, pair := range strings.Split(s, ",") {
		kv := strings.SplitN(pair, ":", 2)
		if len(kv) == 2 {
			result[kv[0]] = kv[1]
		} else {
			result[kv[0]] = ""
		}
	}
	return result
}

// ApplyBatch applies every expression in order, continuing past individual
// failures and collecting them (spec §5 "Ordering": a batch apply does not
// abort on the first error).
func ApplyBatch(cluster *Cluster, exprs []Expression) (applied int, errs errext.ErrorSet) {
	for i, expr := range exprs {
		if err := expr.Apply(cluster); err != nil {
			errs.Addf("expression %d (%s): %w", i, expr.Text(), err)
			continue
		}
		applied++
	}
	return applied, errs
}
