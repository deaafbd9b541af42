// SPDX-FileCopyrightText: 2024 SAP SE or an SAP affiliate company
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"fmt"

	"github.com/sapcc/go-bits/errext"
)

// Relation classifies how two expressions addressing the same setting
// relate to each other (spec §4.6).
type Relation int

const (
	// Independent means the two expressions can coexist (different setting,
	// different scope/ids, or different map keys under the same setting).
	Independent Relation = iota
	// Duplicates means the two expressions target the exact same setting,
	// scope and key (or both lack a key); the later one wins.
	Duplicates
	// Incompatible means the two expressions target the same setting and
	// scope but one uses the whole-map wire form and the other the
	// per-entry form, which cannot be reconciled.
	Incompatible
)

// Relate classifies the relation between a and b per spec §4.6.
func Relate(a, b Expression) Relation {
	if a.setting.Name != b.setting.Name {
		return Independent
	}
	if a.scope != b.scope {
		return Independent
	}
	aKey, aHasKey := a.Key()
	bKey, bHasKey := b.Key()
	if aHasKey != bHasKey {
		if a.setting.IsMap {
			return Incompatible
		}
		return Independent
	}
	if aHasKey && bHasKey && aKey != bKey {
		return Independent
	}
	return Duplicates
}

// CheckDuplicate reports an error if a and b are Duplicates or Incompatible,
// using the single combined wording from spec §4.6: "Incompatible or
// duplicate configurations: <a> and <b>".
func (a Expression) CheckDuplicate(b Expression) error {
	if Relate(a, b) == Independent {
		return nil
	}
	return fmt.Errorf("Incompatible or duplicate configurations: %s and %s", a.Text(), b.Text()) //nolint:stylecheck // exact wording is part of the public contract
}

// DetectAll walks exprs in submission order and resolves conflicts the way a
// change-protocol batch would: true Duplicates are coalesced, keeping the
// later expression and dropping the earlier one silently, while Incompatible
// pairs are rejected and recorded in the returned error set. Expressions are
// kept in order of first submission of their target: a later duplicate takes
// the position of the expression it replaces.
func DetectAll(exprs []Expression) ([]Expression, errext.ErrorSet) {
	var errs errext.ErrorSet
	kept := make([]Expression, 0, len(exprs))

	for _, candidate := range exprs {
		conflictIndex := -1
		for i, existing := range kept {
			switch Relate(candidate, existing) {
			case Duplicates:
				conflictIndex = i
			case Incompatible:
				errs.Addf("incompatible or duplicate configurations: %s and %s", existing.Text(), candidate.Text())
				conflictIndex = -2
			}
			if conflictIndex != -1 {
				break
			}
		}
		switch conflictIndex {
		case -1:
			kept = append(kept, candidate)
		case -2:
			// incompatible: drop the candidate, keep the existing entry
		default:
			kept[conflictIndex] = candidate
		}
	}
	return kept, errs
}
