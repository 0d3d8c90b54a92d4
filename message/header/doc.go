// Package header provides a small, strictly-correct-on-output email header for
// use when building new messages. Fields are kept in the order they are added
// and field names are matched without regard to case.
//
// High-level accessors are provided for the fields a message builder needs:
// addresses (parsed with github.com/zostay/go-addr), dates (parsed leniently
// with github.com/araddon/dateparse as a fallback), the subject (RFC 2047
// encoded when it is not plain ASCII), and the MIME content fields.
package header
