// SPDX-FileCopyrightText: 2024 SAP SE or an SAP affiliate company
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"testing"

	"github.com/sapcc/go-bits/assert"
)

func mustParse(t *testing.T, raw string) Expression {
	t.Helper()
	expr, err := Parse(raw)
	if err != nil {
		t.Fatalf("Parse(%q) failed: %s", raw, err)
	}
	return expr
}

func TestRelateIndependentDifferentScope(t *testing.T) {
	a := mustParse(t, "stripe.1.backup-dir=foo")
	b := mustParse(t, "stripe.2.backup-dir=bar")
	assert.DeepEqual(t, "relation", Relate(a, b), Independent)
}

func TestRelateDuplicatesSameTarget(t *testing.T) {
	a := mustParse(t, "backup-dir=foo")
	b := mustParse(t, "backup-dir=bar")
	assert.DeepEqual(t, "relation", Relate(a, b), Duplicates)
}

func TestRelateIndependentDifferentMapKeys(t *testing.T) {
	a := mustParse(t, "data-dirs.main=foo")
	b := mustParse(t, "data-dirs.second=bar")
	assert.DeepEqual(t, "relation", Relate(a, b), Independent)
}

func TestRelateIncompatibleWholeMapVsPerEntry(t *testing.T) {
	a := mustParse(t, "offheap-resources.main=1GB")
	b := mustParse(t, "offheap-resources=main:1GB")
	assert.DeepEqual(t, "relation", Relate(a, b), Incompatible)
}

func TestDetectAllCoalescesDuplicatesAndRejectsIncompatible(t *testing.T) {
	exprs := []Expression{
		mustParse(t, "backup-dir=foo"),
		mustParse(t, "backup-dir=bar"),
		mustParse(t, "offheap-resources.main=1GB"),
		mustParse(t, "offheap-resources=main:1GB,second:2GB"),
	}
	kept, errs := DetectAll(exprs)

	assert.DeepEqual(t, "number kept", len(kept), 2)
	value, _ := kept[0].Value()
	assert.DeepEqual(t, "surviving backup-dir value", value, "bar")
	value, _ = kept[1].Value()
	assert.DeepEqual(t, "surviving offheap-resources value (incompatible candidate dropped)", value, "1GB")

	if errs.IsEmpty() {
		t.Fatal("expected the incompatible offheap-resources pair to be reported")
	}
	assert.DeepEqual(t, "error count", len(errs), 1)
}
