// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package filters provides client-side filtering of API Gateway result items.
//
// Filters are specified as key-operator-target expressions and can be
// combined using a configurable delimiter (default: comma, override with
// APIGWCTL_FILTER_DELIM).
//
// Operators include:
//
//   - = : exact match
//   - ~ : case-insensitive match
//   - ^ : prefix match
//   - < : less than (numeric when the value is a number)
//   - > : greater than (numeric when the value is a number)
//   - @ : contains substring, list element or map key
//   - / : regular expression match
//
// Each operator may be negated with a leading !, e.g. "Name!^test".
//
// Examples:
//
//   - "Name=pets-api" : items whose Name equals "pets-api"
//   - "Types=REGIONAL" : items whose endpoint type is REGIONAL
//   - "MinimumCompressionSize>1024"
//   - "Tags@env" : items tagged with an env key
//
// Filter keys are matched case-insensitively against the OutputKey of the
// attrs (see the attrs package). A key that matches no attr is drilled
// directly from the item.
package filters
