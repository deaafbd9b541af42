// SPDX-FileCopyrightText: 2024 SAP SE or an SAP affiliate company
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"fmt"
	"strings"
)

// Expression is the immutable in-memory representation of one parsed
// configuration grammar line (spec §3 "Expression"). Instances are created
// by Parse or the ValueOf factory function and never mutated afterwards.
type Expression struct {
	setting  Setting
	scope    Scope
	key      string
	hasKey   bool
	value    string
	hasValue bool
	// raw is the exact string Parse received, kept only to echo back in
	// error messages; empty for expressions built by a factory function
	// instead of Parse.
	raw string
}

// Setting returns the catalog entry this expression addresses.
func (e Expression) Setting() Setting { return e.setting }

// Scope returns the scope this expression addresses.
func (e Expression) Scope() Scope { return e.scope }

// StripeID returns the stripe ID carried by the scope, or 0 if the scope
// does not carry one.
func (e Expression) StripeID() int { return e.scope.StripeID }

// NodeID returns the node ID carried by the scope, or 0 if the scope does
// not carry one.
func (e Expression) NodeID() int { return e.scope.NodeID }

// Key returns the map sub-key and whether one was supplied.
func (e Expression) Key() (string, bool) { return e.key, e.hasKey }

// Value returns the right-hand side and whether one was supplied at all
// (None vs. Some("") from spec §3).
func (e Expression) Value() (string, bool) { return e.value, e.hasValue }

// newExpression is the single internal constructor; every Parse result and
// every factory function (e.g. ValueOf) funnels through it. raw is the
// original text Parse was given, or "" for factory-built expressions that
// never went through Parse.
func newExpression(setting Setting, scope Scope, key string, hasKey bool, value string, hasValue bool, raw string) Expression {
	return Expression{
		setting:  setting,
		scope:    scope,
		key:      key,
		hasKey:   hasKey,
		value:    value,
		hasValue: hasValue,
		raw:      raw,
	}
}

// rawText returns the exact string Parse originally received, for echoing
// back in error messages (spec §4.2's "exact text supplied to the parser").
// Falls back to the canonical textual form for expressions that were never
// built from raw text in the first place.
func (e Expression) rawText() string {
	if e.raw != "" {
		return e.raw
	}
	return e.Text()
}

// ValueOf builds the Expression that represents setting's default value at
// the scope where it can legally be set (spec §8's default-value law:
// Parse(ValueOf(s).Text()).Value() == s's default). supplier is consulted
// only for settings whose default is generated rather than static (see
// node-name); a nil supplier falls back to RandomIdentifierSupplier.
func ValueOf(name string, supplier IdentifierSupplier) (Expression, error) {
	setting, err := Lookup(name)
	if err != nil {
		return Expression{}, err
	}
	text, ok := setting.DefaultText(supplier)
	if !ok {
		return Expression{}, fmt.Errorf("%s has no default value", name)
	}
	scope := ScopeAtCluster()
	if setting.identityFamily {
		// node-hostname/node-port/node-name are only ever writable at node
		// scope (the bootstrap CONFIG path), so that's the scope their
		// default is expressed at.
		scope = ScopeAtNode(1, 1)
	}
	return newExpression(setting, scope, "", false, text, true, ""), nil
}

// Text renders the canonical textual form of this expression (spec §4.3).
// The round-trip law holds: Parse(e.Text()) == e for every valid Expression.
func (e Expression) Text() string {
	var b strings.Builder
	b.WriteString(e.scope.Prefix())
	b.WriteString(e.setting.Name)
	if e.hasKey {
		b.WriteString(".")
		b.WriteString(e.key)
	}
	if e.hasValue {
		b.WriteString("=")
		b.WriteString(e.value)
	}
	return b.String()
}

// Equal reports whether two expressions are equal. Per spec §4.3, equality
// is defined as equality of canonical textual form.
func (e Expression) Equal(other Expression) bool {
	return e.Text() == other.Text()
}

// SameTarget reports whether two expressions address the same (setting,
// scope, key) triple, ignoring value. It agrees with Relate's Duplicates
// classification, but neither Relate nor Match calls it; they compare the
// fields themselves.
func (e Expression) SameTarget(other Expression) bool {
	if e.setting.Name != other.setting.Name {
		return false
	}
	if e.scope != other.scope {
		return false
	}
	eKey, eHasKey := e.Key()
	oKey, oHasKey := other.Key()
	return eHasKey == oHasKey && eKey == oKey
}
