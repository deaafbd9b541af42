// SPDX-FileCopyrightText: 2024 SAP SE or an SAP affiliate company
// SPDX-License-Identifier: Apache-2.0

package config

import "fmt"

// opMask is a compact set of Operation values.
type opMask uint8

func ops(values ...Operation) opMask {
	var m opMask
	for _, v := range values {
		m |= 1 << v
	}
	return m
}

func (m opMask) has(op Operation) bool {
	return m&(1<<op) != 0
}

func (m opMask) isEmpty() bool {
	return m == 0
}

// Setting is an entry in the catalog (spec §3 "Setting"). Instances are
// never constructed outside this file; Lookup is the only accessor.
type Setting struct {
	// Name is the canonical identifier, e.g. "backup-dir".
	Name string
	// IsMap marks settings whose value is a sub-key -> scalar mapping.
	IsMap bool

	allowedOps map[ScopeKind]opMask

	// identityFamily marks node-hostname, node-port, node-name: SET/CONFIG
	// rejections at a disallowed scope get the "cannot be set" wording
	// instead of the generic "does not allow operation" wording.
	identityFamily bool
	// notReadableOrClearable marks license-file: GET/UNSET rejections get
	// the "cannot be read or cleared" wording.
	notReadableOrClearable bool

	// defaultText is a static default value, or "" if none.
	defaultText string
	// generatesNodeName marks node-name, whose default is produced fresh on
	// every call via an injected IdentifierSupplier rather than a static string.
	generatesNodeName bool
}

// Allows reports whether this setting accepts the given operation at the
// given scope.
func (s Setting) Allows(scope ScopeKind, op Operation) bool {
	return s.allowedOps[scope].has(op)
}

// AllowsAnyOperation reports whether this setting accepts any operation at
// all at the given scope.
func (s Setting) AllowsAnyOperation(scope ScopeKind) bool {
	return !s.allowedOps[scope].isEmpty()
}

// AllowsEmptyValue reports whether an empty right-hand side is a legal
// "clear" at the given scope, i.e. whether UNSET is allowed there (spec §9:
// "the source treats setting= as UNSET" whenever that is possible).
func (s Setting) AllowsEmptyValue(scope ScopeKind) bool {
	return s.Allows(scope, Unset)
}

// DefaultText returns this setting's default value rendered as text, if it
// has one. For node-name, a fresh value is produced on every call via the
// given supplier (a nil supplier falls back to RandomIdentifierSupplier).
func (s Setting) DefaultText(supplier IdentifierSupplier) (string, bool) {
	if s.generatesNodeName {
		if supplier == nil {
			supplier = RandomIdentifierSupplier{}
		}
		return supplier.NextNodeName(), true
	}
	if s.defaultText == "" {
		return "", false
	}
	return s.defaultText, true
}

func scalar(cluster, stripe, node opMask) map[ScopeKind]opMask {
	return map[ScopeKind]opMask{
		ClusterScope: cluster,
		StripeScope:  stripe,
		NodeScope:    node,
	}
}

// catalog is the static table of every recognized setting (spec §4.1). It is
// initialized once and never mutated after package init; lookups are
// read-only and require no locking (spec §5).
var catalog = buildCatalog()

func buildCatalog() map[string]Setting {
	settings := []Setting{
		// node-hostname, node-port, node-name: read-only everywhere except
		// that node scope also accepts the initial CONFIG bootstrap write.
		{Name: "node-hostname", allowedOps: scalar(ops(Get), ops(Get), ops(Get, Config)), identityFamily: true},
		{Name: "node-port", allowedOps: scalar(ops(Get), ops(Get), ops(Get, Config)), identityFamily: true},
		{Name: "node-name", allowedOps: scalar(ops(Get), ops(Get), ops(Get, Config)), identityFamily: true, generatesNodeName: true},

		// freely readable/writable network identity settings.
		{Name: "node-bind-address", allowedOps: scalar(ops(Get, Set), ops(Get, Set), ops(Get, Set, Config)), defaultText: "0.0.0.0"},
		{Name: "node-group-bind-address", allowedOps: scalar(ops(Get, Set), ops(Get, Set), ops(Get, Set, Config)), defaultText: "0.0.0.0"},
		{Name: "node-group-port", allowedOps: scalar(ops(Get, Set), ops(Get, Set), ops(Get, Set, Config))},
		{Name: "node-log-dir", allowedOps: scalar(ops(Get, Set), ops(Get, Set), ops(Get, Set, Config))},

		// path settings that can be cleared (no built-in default; Apply blanks them).
		{Name: "backup-dir", allowedOps: scalar(ops(Get, Set, Unset), ops(Get, Set, Unset), ops(Get, Set, Unset, Config))},
		{Name: "metadata-dir", allowedOps: scalar(ops(Get, Set, Unset), ops(Get, Set, Unset), ops(Get, Set, Unset, Config))},
		{Name: "security-dir", allowedOps: scalar(ops(Get, Set, Unset), ops(Get, Set, Unset), ops(Get, Set, Unset, Config))},
		{Name: "security-audit-log-dir", allowedOps: scalar(ops(Get, Set, Unset), ops(Get, Set, Unset), ops(Get, Set, Unset, Config))},

		// cluster-wide tunables with no per-stripe/per-node override, not clearable.
		{Name: "client-reconnect-window", allowedOps: scalar(ops(Get, Set, Config), 0, 0), defaultText: "120"},
		{Name: "client-lease-duration", allowedOps: scalar(ops(Get, Set, Config), 0, 0), defaultText: "150000"},
		{Name: "failover-priority", allowedOps: scalar(ops(Get, Set, Config), 0, 0)},
		{Name: "security-ssl-tls", allowedOps: scalar(ops(Get, Set, Config), 0, 0)},
		{Name: "security-whitelist", allowedOps: scalar(ops(Get, Set, Config), 0, 0)},

		// cluster-wide tunables that can also be cleared.
		{Name: "cluster-name", allowedOps: scalar(ops(Get, Set, Unset, Config), 0, 0)},
		{Name: "security-authc", allowedOps: scalar(ops(Get, Set, Unset, Config), 0, 0)},

		// reserved: fixed at node bootstrap, not addressable through this
		// grammar at any scope.
		{Name: "node-config-dir", allowedOps: scalar(0, 0, 0)},

		// write-only, not readable or clearable.
		{Name: "license-file", allowedOps: scalar(ops(Set), 0, 0), notReadableOrClearable: true},

		// map settings.
		{Name: "tc-properties", IsMap: true, allowedOps: scalar(ops(Get, Set, Unset), ops(Get, Set, Unset), ops(Get, Set, Unset, Config))},
		{Name: "data-dirs", IsMap: true, allowedOps: scalar(ops(Get, Set, Unset), ops(Get, Set, Unset), ops(Get, Set, Unset, Config))},
		{Name: "offheap-resources", IsMap: true, allowedOps: scalar(ops(Get, Set, Unset, Config), 0, 0)},
	}

	byName := make(map[string]Setting, len(settings))
	for _, s := range settings {
		byName[s.Name] = s
	}
	return byName
}

// Lookup returns the catalog entry for the given setting name, or an error
// with message "Invalid setting name: '<name>'" if none exists. Setting
// lookup is case-sensitive (spec §4.2).
func Lookup(name string) (Setting, error) {
	s, ok := catalog[name]
	if !ok {
		return Setting{}, fmt.Errorf("Invalid setting name: '%s'", name) //nolint:stylecheck // exact wording is part of the public contract
	}
	return s, nil
}
