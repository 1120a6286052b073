// Package document parses external documents into a scene state.
//
// Two tolerant parsers share one field set and one per-dimension
// discriminator idea:
//
//   - Document (ParseXML) queries an attribute-based markup document.
//     A camera element describes dimension d when it carries exactly d
//     attributes; a transformation element carries (d+1)² cell attributes.
//   - Structured (ParseStructured) reads a structured value document
//     (JSON or YAML), matching dimensions by array length instead of
//     attribute count.
//
// Both walk the state chain from the highest configured dimension down to
// the base, mutate matching fields in place, and leave everything else
// untouched: a missing field is never an error, and a malformed field is
// skipped with a warning through the package logger while the prior value
// is retained. Parsing is not transactional — a pass that fails partway
// leaves earlier mutations applied.
//
// Each parser has a companion ApplyModel operation that resolves a model
// descriptor from the document and hands it to the backend registry.
package document
