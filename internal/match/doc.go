// Package match scores how well one contract field corresponds to another.
//
// The composite score combines four weighted signals:
//   - name: exact, synonym, or normalized Levenshtein similarity of the last path segment
//   - type: the directional compatibility table in compatibility.go
//   - description: Jaccard overlap of lowercased whitespace tokens
//   - format: equality of declared formats
//
// Everything here is a pure function of its inputs and safe for concurrent use.
package match
