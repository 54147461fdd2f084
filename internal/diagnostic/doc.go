// Package diagnostic holds the findings produced when mapping rules are
// checked against their contracts.
//
// A Finding is data, not an error: a batch of rules is always validated in
// full and every problem is reported together. Report.Error folds the error
// findings into a single error for callers that need one.
package diagnostic
