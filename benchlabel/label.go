// Copyright 2026 The allocstat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchlabel maps the raw platform and pattern codes carried
// by benchmark records to human-readable display labels, and back.
//
// Both directions are static configuration. Codes absent from the
// tables pass through unchanged, so batches recorded on platforms the
// tables have not caught up with are still processed; the inverse
// direction falls back to a filesystem-safe form of the label so that
// derived artifact names stay stable for unmapped values too.
package benchlabel

import "strings"

// platformLabels maps platform codes to display labels.
var platformLabels = map[string]string{
	"local":       "Local",
	"hpc-cluster": "HPC Cluster",
	"aws-c5":      "AWS c5",
}

// patternLabels maps release-pattern codes to display labels.
var patternLabels = map[string]string{
	"immediate": "Immediate",
	"lifo":      "LIFO",
	"fifo":      "FIFO",
	"random":    "Random",
}

var platformKeys = invert(platformLabels)
var patternKeys = invert(patternLabels)

// invert builds the label-to-code table for a forward table. Two
// codes mapping to one label would make artifact names collide, so
// that is rejected at init.
func invert(forward map[string]string) map[string]string {
	inv := make(map[string]string, len(forward))
	for code, label := range forward {
		if prev, ok := inv[label]; ok {
			panic("benchlabel: label " + label + " maps to both " + prev + " and " + code)
		}
		inv[label] = code
	}
	return inv
}

// Platform returns the display label for a platform code. Unknown
// codes pass through unchanged.
func Platform(code string) string {
	if label, ok := platformLabels[code]; ok {
		return label
	}
	return code
}

// Pattern returns the display label for a pattern code. Unknown codes
// pass through unchanged.
func Pattern(code string) string {
	if label, ok := patternLabels[code]; ok {
		return label
	}
	return code
}

// PlatformKey returns the short key for a platform display label. For
// labels in the table this recovers the original code; anything else
// is reduced to a filesystem-safe key.
func PlatformKey(label string) string {
	if code, ok := platformKeys[label]; ok {
		return code
	}
	return safeKey(label)
}

// PatternKey returns the short key for a pattern display label,
// analogous to PlatformKey.
func PatternKey(label string) string {
	if code, ok := patternKeys[label]; ok {
		return code
	}
	return safeKey(label)
}

// safeKey lowercases s and collapses every run of characters outside
// [a-z0-9._-] to a single underscore, yielding a name usable as a
// file-name component.
func safeKey(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	pending := false
	for _, r := range strings.ToLower(s) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '.', r == '_', r == '-':
			if pending && b.Len() > 0 {
				b.WriteByte('_')
			}
			pending = false
			b.WriteRune(r)
		default:
			pending = true
		}
	}
	return b.String()
}
