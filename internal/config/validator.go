// SPDX-FileCopyrightText: 2024 SAP SE or an SAP affiliate company
// SPDX-License-Identifier: Apache-2.0

package config

// Validate checks whether op is a legal operation to perform against this
// expression, applying the three rule groups from spec §4.4 in order: value
// shape independent of scope, scope x operation legality (per the catalog),
// and finally the empty-value special case. It returns nil when op is
// applicable, or an *InvalidInputError describing the first rule violated.
//
// Validate is normally invoked by Parse against the implicitly derived
// operation, but it is also exported for callers that already hold a parsed
// Expression and want to check it against an operation requested out of
// band (spec §9's "validate(op) on an already-parsed Expression").
func (e Expression) Validate(op Operation) error {
	raw := e.rawText()
	value, hasValue := e.Value()
	scopeKind := e.scope.Kind
	setting := e.setting

	if (op == Get || op == Unset) && hasValue && value != "" {
		return invalidInputf(raw, "Operation %s must not have a value", op)
	}
	if (op == Set || op == Config) && !hasValue {
		return invalidInputf(raw, "Operation %s requires a value", op)
	}

	if !setting.AllowsAnyOperation(scopeKind) {
		return invalidInputf(raw, "%s does not allow any operation at %s level", setting.Name, scopeKind)
	}
	if !setting.Allows(scopeKind, op) {
		switch {
		case setting.notReadableOrClearable && (op == Get || op == Unset):
			return invalidInputf(raw, "%s cannot be read or cleared", setting.Name)
		case setting.identityFamily && (op == Set || op == Config):
			return invalidInputf(raw, "%s cannot be set at %s level", setting.Name, scopeKind)
		default:
			return invalidInputf(raw, "%s does not allow operation %s at %s level", setting.Name, op, scopeKind)
		}
	}

	if (op == Set || op == Config) && hasValue && value == "" && !setting.AllowsEmptyValue(scopeKind) {
		return invalidInputf(raw, "%s requires a value", setting.Name)
	}

	return nil
}
