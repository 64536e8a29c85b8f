// Package phone parses loosely formatted North-American phone numbers into
// their area code, prefix, line number and extension, and renders them back
// through %-placeholder templates.
//
// Inputs come in three shapes:
//   - Text: matched against a single tolerant pattern, e.g. "(800) 555-2468 x12"
//   - Mappings: Fields or a map keyed by field name, assigned part by part
//   - Sequences: flattened into the number's packed form
//
// A Normalizer carries the default area code used when an input has none.
// The package-level constructors share a process-wide Normalizer configured
// with SetDefaultAreaCode.
//
// Parsing never fails: text that does not match leaves the parts unset, so
// callers check IsEmpty or HasAreaCode.
package phone
