// SPDX-FileCopyrightText: 2024 SAP SE or an SAP affiliate company
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"strings"
	"testing"

	"github.com/sapcc/go-bits/assert"
)

func TestValueOfStaticDefaultsRoundTripToTheirOwnDefault(t *testing.T) {
	names := []string{"node-bind-address", "node-group-bind-address", "client-reconnect-window", "client-lease-duration"}
	for _, name := range names {
		setting, err := Lookup(name)
		if err != nil {
			t.Fatal(err)
		}
		expr, err := ValueOf(name, nil)
		if err != nil {
			t.Fatalf("ValueOf(%q) failed: %s", name, err)
		}
		again, err := Parse(expr.Text())
		if err != nil {
			t.Fatalf("Parse(%q) failed: %s", expr.Text(), err)
		}
		value, _ := again.Value()
		defaultText, _ := setting.DefaultText(nil)
		assert.DeepEqual(t, name+" default round-trips through Parse", value, defaultText)
	}
}

func TestValueOfNodeNameGeneratesTextStartingWithNodePrefix(t *testing.T) {
	supplier := &SequentialIdentifierSupplier{}
	expr, err := ValueOf("node-name", supplier)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(expr.Text(), "stripe.1.node.1.node-name=node-") {
		t.Errorf("expected generated node-name text to start with the node- prefix, got %q", expr.Text())
	}
	value, hasValue := expr.Value()
	if !hasValue || !strings.HasPrefix(value, "node-") {
		t.Errorf("expected generated node-name value to start with node-, got %q", value)
	}
}
