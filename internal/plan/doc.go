// Package plan turns two contracts into suggested mapping rules.
//
// Resolution pipeline:
//  1. Flatten both contracts in declaration order
//  2. For each source field, score every target field
//  3. Keep the first-encountered maximum if it is above the acceptance threshold
//  4. Attach a transformation hint and emit a suggested rule
//  5. Order rules by confidence, keeping source order among equals
//
// A Resolver holds configuration only. Every call recomputes from its inputs,
// so the same contracts always produce the same rules in the same order.
package plan
