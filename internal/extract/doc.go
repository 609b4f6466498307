// Package extract converts attachment payloads to plain text.
//
// PDF is the only format with a real conversion path. Payloads of any other
// MIME type produce a deterministic placeholder string instead of parsed
// text; this is documented product behavior, not a stopgap.
package extract
