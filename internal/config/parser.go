// SPDX-FileCopyrightText: 2024 SAP SE or an SAP affiliate company
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"regexp"
	"strconv"
	"strings"
)

var idTokenRx = regexp.MustCompile(`^[0-9]+$`)

// Parse lexes a raw configuration grammar string into an Expression (spec
// §4.2). It accepts "." and ":" interchangeably as the separator between the
// scope prefix and the setting reference. Parsing eagerly derives an
// implicit operation from value presence (value absent -> GET; non-empty
// value -> SET; empty value after "=" -> UNSET when the setting permits it,
// else SET) and runs it through Validate, so a Parse that returns
// successfully is already known-applicable for that implicit operation; this
// is the "parser invokes the validator eagerly" behavior from spec §9.
func Parse(raw string) (Expression, error) {
	left, value, hasValue := splitValue(raw)
	tokens := splitScopeTokens(left)

	scope, remainder, structurallyValid, reason := resolveScope(tokens)
	if reason != "" {
		return Expression{}, invalidInputf(raw, "%s", reason)
	}
	if !structurallyValid {
		return Expression{}, invalidInput(raw)
	}

	if len(remainder) == 0 || remainder[0] == "" {
		return Expression{}, invalidInputf(raw, "valid setting name not found")
	}
	name := remainder[0]
	hasKey := len(remainder) > 1
	key := ""
	if hasKey {
		key = strings.Join(remainder[1:], ".")
	}

	setting, err := Lookup(name)
	if err != nil {
		return Expression{}, invalidInputf(raw, "%s", err.Error())
	}
	if hasKey && !setting.IsMap {
		return Expression{}, invalidInputf(raw, "%s is not a map and must not have a key", setting.Name)
	}

	expr := newExpression(setting, scope, key, hasKey, value, hasValue, raw)

	op := deriveOperation(expr)
	if err := expr.Validate(op); err != nil {
		return Expression{}, err
	}
	return expr, nil
}

// deriveOperation implements the implicit-operation rule from spec §4.2: a
// value-less expression is a GET attempt, a non-empty value is a SET
// attempt, and an empty value (present but "") is an UNSET attempt when the
// setting allows clearing at this scope -- otherwise it is left as a SET
// attempt, so that Validate's empty-value rule reports "requires a value"
// instead of silently accepting gibberish.
func deriveOperation(e Expression) Operation {
	value, hasValue := e.Value()
	if !hasValue {
		return Get
	}
	if value != "" {
		return Set
	}
	if e.setting.AllowsEmptyValue(e.scope.Kind) {
		return Unset
	}
	return Set
}

// splitValue separates the right-hand side from a raw expression string on
// the first "=". hasValue is false when there was no "=" at all.
func splitValue(raw string) (left, value string, hasValue bool) {
	idx := strings.IndexByte(raw, '=')
	if idx < 0 {
		return raw, "", false
	}
	return raw[:idx], raw[idx+1:], true
}

// splitScopeTokens splits the portion of an expression before "=" on every
// "." and ":" character, preserving empty tokens so that malformed shapes
// (missing IDs, doubled separators) surface as empty strings rather than
// silently vanishing.
func splitScopeTokens(s string) []string {
	tokens := make([]string, 0, 4)
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '.' || s[i] == ':' {
			tokens = append(tokens, s[start:i])
			start = i + 1
		}
	}
	return append(tokens, s[start:])
}

// parseIDToken reports whether tok matches the grammar's `id := positive
// integer` production shape (digits only, no sign) and, if so, its value.
// Zero is shape-valid but numerically out of range; that distinction is what
// lets Parse tell "stripe.0...." (shape ok, range error) apart from
// "stripe.-1...." (shape invalid, generic structural rejection).
func parseIDToken(tok string) (id int, validShape bool) {
	if !idTokenRx.MatchString(tok) {
		return 0, false
	}
	n, err := strconv.Atoi(tok)
	if err != nil {
		return 0, false
	}
	return n, true
}

// resolveScope matches tokens against the three allowed scope-prefix shapes
// from spec §4.2 (absent, "stripe.<id>", "stripe.<id>.node.<id>") and
// returns the parsed Scope plus the remaining tokens that make up the
// setting_ref. reason carries the two specific "must be greater than 0"
// messages; a false structurallyValid with an empty reason means the input
// doesn't match any of the three shapes at all and gets the bare
// "Invalid input" rejection.
func resolveScope(tokens []string) (scope Scope, remainder []string, structurallyValid bool, reason string) {
	if tokens[0] == "node" {
		// NODE scope is only reachable via "stripe.<id>.node.<id>"; a bare
		// "node...." prefix (without a preceding stripe) is always rejected.
		return Scope{}, nil, false, ""
	}

	if tokens[0] != "stripe" {
		// no scope prefix at all -> CLUSTER
		return ScopeAtCluster(), tokens, true, ""
	}

	if len(tokens) < 2 {
		return Scope{}, nil, false, ""
	}
	stripeID, validShape := parseIDToken(tokens[1])
	if !validShape {
		return Scope{}, nil, false, ""
	}
	if stripeID == 0 {
		return Scope{}, nil, false, "Expected stripe ID to be greater than 0"
	}

	if len(tokens) > 2 && tokens[2] == "node" {
		if len(tokens) < 4 {
			return Scope{}, nil, false, ""
		}
		nodeID, validNodeShape := parseIDToken(tokens[3])
		if !validNodeShape {
			return Scope{}, nil, false, ""
		}
		if nodeID == 0 {
			return Scope{}, nil, false, "Expected node ID to be greater than 0"
		}
		remainder = tokens[4:]
		if len(remainder) > 0 && (remainder[0] == "stripe" || remainder[0] == "node") {
			return Scope{}, nil, false, ""
		}
		return ScopeAtNode(stripeID, nodeID), remainder, true, ""
	}

	remainder = tokens[2:]
	if len(remainder) > 0 && (remainder[0] == "stripe" || remainder[0] == "node") {
		return Scope{}, nil, false, ""
	}
	return ScopeAtStripe(stripeID), remainder, true, ""
}
