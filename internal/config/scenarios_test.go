// SPDX-FileCopyrightText: 2024 SAP SE or an SAP affiliate company
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"testing"

	"github.com/sapcc/go-bits/assert"
)

func oneStripeOneNodeCluster() *Cluster {
	return &Cluster{
		Stripes: []*Stripe{
			{Nodes: []*Node{{}}},
		},
	}
}

// TestScenarioApplySecurityDirAtNodeScope covers spec §8 scenario 1.
func TestScenarioApplySecurityDirAtNodeScope(t *testing.T) {
	expr, err := Parse("stripe.1.node.1:security-dir=foo/bar")
	if err != nil {
		t.Fatal(err)
	}
	assert.DeepEqual(t, "scope kind", expr.Scope().Kind, NodeScope)
	assert.DeepEqual(t, "stripe id", expr.StripeID(), 1)
	assert.DeepEqual(t, "node id", expr.NodeID(), 1)
	assert.DeepEqual(t, "setting name", expr.Setting().Name, "security-dir")
	value, hasValue := expr.Value()
	if !hasValue {
		t.Fatal("expected a value")
	}
	assert.DeepEqual(t, "value", value, "foo/bar")

	cluster := oneStripeOneNodeCluster()
	if err := expr.Apply(cluster); err != nil {
		t.Fatal(err)
	}
	assert.DeepEqual(t, "applied security-dir", cluster.Stripes[0].Nodes[0].SecurityDir, "foo/bar")
}

// TestScenarioDuplicateDetectorIncompatibleMapForms covers spec §8 scenario 2.
func TestScenarioDuplicateDetectorIncompatibleMapForms(t *testing.T) {
	first, err := Parse("offheap-resources.main=1GB")
	if err != nil {
		t.Fatal(err)
	}
	second, err := Parse("offheap-resources=main:1GB")
	if err != nil {
		t.Fatal(err)
	}
	err = second.CheckDuplicate(first)
	if err == nil {
		t.Fatal("expected an incompatibility error")
	}
	expected := "Incompatible or duplicate configurations: " + second.Text() + " and " + first.Text()
	assert.DeepEqual(t, "error message", err.Error(), expected)
}

// TestScenarioValidateRejectsValueOnGet covers spec §8 scenario 3.
func TestScenarioValidateRejectsValueOnGet(t *testing.T) {
	expr, err := parseIgnoringValidation(t, "failover-priority=availability")
	if err != nil {
		t.Fatal(err)
	}
	err = expr.Validate(Get)
	if err == nil {
		t.Fatal("expected an error")
	}
	expected := "Invalid input: 'failover-priority=availability'. Reason: Operation get must not have a value"
	assert.DeepEqual(t, "error message", err.Error(), expected)
}

// parseIgnoringValidation builds an Expression bypassing Parse's own eager
// validation, for tests that want to observe Validate's behavior against an
// operation different from the one implied by the raw text.
func parseIgnoringValidation(t *testing.T, raw string) (Expression, error) {
	t.Helper()
	left, value, hasValue := splitValue(raw)
	tokens := splitScopeTokens(left)
	scope, remainder, ok, reason := resolveScope(tokens)
	if reason != "" || !ok || len(remainder) == 0 {
		t.Fatalf("test setup: could not parse %q", raw)
	}
	setting, err := Lookup(remainder[0])
	if err != nil {
		t.Fatal(err)
	}
	return newExpression(setting, scope, "", false, value, hasValue, raw), nil
}

// TestScenarioLicenseFileIsWriteOnly covers spec §8 scenario 4.
func TestScenarioLicenseFileIsWriteOnly(t *testing.T) {
	_, err := Parse("license-file")
	if err == nil {
		t.Fatal("expected an error")
	}
	assert.DeepEqual(t, "get error", err.Error(), "Invalid input: 'license-file'. Reason: license-file cannot be read or cleared")

	_, err = Parse("license-file=")
	if err == nil {
		t.Fatal("expected an error")
	}
	assert.DeepEqual(t, "empty-set error", err.Error(), "Invalid input: 'license-file='. Reason: license-file requires a value")

	expr, err := Parse("license-file=/path/to/license.xml")
	if err != nil {
		t.Fatal(err)
	}
	value, _ := expr.Value()
	assert.DeepEqual(t, "value", value, "/path/to/license.xml")
}

// TestScenarioApplyRejectsOutOfRangeStripeID covers spec §8 scenario 5.
func TestScenarioApplyRejectsOutOfRangeStripeID(t *testing.T) {
	expr, err := Parse("stripe.2:backup-dir=foo")
	if err != nil {
		t.Fatal(err)
	}
	cluster := oneStripeOneNodeCluster()
	err = expr.Apply(cluster)
	if err == nil {
		t.Fatal("expected an error")
	}
	assert.DeepEqual(t, "error message", err.Error(), "Invalid stripe ID: 2. Cluster contains: 1 stripe(s)")
}

// TestScenarioZeroAndNegativeStripeIDs covers spec §8 scenario 6.
func TestScenarioZeroAndNegativeStripeIDs(t *testing.T) {
	_, err := Parse("stripe.0.backup-dir")
	if err == nil {
		t.Fatal("expected an error")
	}
	assert.DeepEqual(t, "zero id error", err.Error(), "Invalid input: 'stripe.0.backup-dir'. Reason: Expected stripe ID to be greater than 0")

	_, err = Parse("stripe.-1.backup-dir")
	if err == nil {
		t.Fatal("expected an error")
	}
	assert.DeepEqual(t, "negative id error", err.Error(), "Invalid input: 'stripe.-1.backup-dir'")
}

// TestScenarioMatcherWholeMapVsPerEntry covers spec §8 scenario 7.
func TestScenarioMatcherWholeMapVsPerEntry(t *testing.T) {
	const stored = "stripe.1.node.1.data-dirs=main:foo/bar,second:foo/baz"

	wholeMapQuery, err := Parse("data-dirs")
	if err != nil {
		t.Fatal(err)
	}
	matched, err := wholeMapQuery.MatchText(stored)
	if err != nil {
		t.Fatal(err)
	}
	assert.DeepEqual(t, "unkeyed query matches whole-map entry", matched, true)

	perEntryQuery, err := Parse("data-dirs.main")
	if err != nil {
		t.Fatal(err)
	}
	matched, err = perEntryQuery.MatchText(stored)
	if err != nil {
		t.Fatal(err)
	}
	assert.DeepEqual(t, "keyed query does not match whole-map entry", matched, false)
}
