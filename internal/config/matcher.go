// SPDX-FileCopyrightText: 2024 SAP SE or an SAP affiliate company
// SPDX-License-Identifier: Apache-2.0

package config

// Match reports whether e, read as a query, matches stored as a previously
// recorded configuration line (spec §4.5). Matching requires the same
// setting name and a scope that e's scope contains (so a CLUSTER-scope query
// matches entries at every scope, a STRIPE-scope query matches that stripe
// and its nodes, and a NODE-scope query matches only that exact node). For
// map settings, an unkeyed query matches any stored entry for that setting,
// whole-map or per-entry alike; a keyed query only matches a stored entry
// that itself carries the same key -- a keyed query never matches a
// whole-map stored entry, since the whole-map form doesn't name that key.
func (e Expression) Match(stored Expression) bool {
	if e.setting.Name != stored.setting.Name {
		return false
	}
	if !e.scope.Contains(stored.scope) {
		return false
	}
	if !e.setting.IsMap {
		return true
	}

	queryKey, queryHasKey := e.Key()
	if !queryHasKey {
		return true
	}
	storedKey, storedHasKey := stored.Key()
	if !storedHasKey {
		return false
	}
	return queryKey == storedKey
}

// MatchText parses storedRaw and matches it against e, per spec §4.5
// ("both sides are parsed into Expressions"). It returns the Parse error
// unchanged if storedRaw is itself malformed.
func (e Expression) MatchText(storedRaw string) (bool, error) {
	stored, err := Parse(storedRaw)
	if err != nil {
		return false, err
	}
	return e.Match(stored), nil
}
