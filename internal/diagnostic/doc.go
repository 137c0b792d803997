// Package diagnostic provides structured errors and warnings found while
// checking a frame configuration file.
//
// Key capabilities:
//   - Malformed frame names, with a suggested replacement
//   - Missing or malformed geometry on transform entries
//   - Frame pairs declared more than once (the last entry wins)
package diagnostic
