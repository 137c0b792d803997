// Package match ranks known frame names by similarity to a misspelled one.
//
// Key functions:
//   - NormalizeFrame: folds a frame name for fuzzy comparison
//   - Sanitize: rewrites an arbitrary string into a valid frame name
//   - Levenshtein: computes edit distance between strings
//   - Rank / Suggest: order known names by similarity
package match
