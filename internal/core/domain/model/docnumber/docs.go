// Package docnumber provides the document number value objects for the MES system.
// A document number is a human-readable, uniquely assigned identifier of the form
// "PREFIX-YYYYMMDD-NNN" that embeds the document type and its issue date.
//
// The package defines:
//   - Prefix: a closed enumeration of logical numbering streams
//   - DocumentNumber: an immutable value object that formats a number
//
// Sequence values are allocated by the persistence layer; this package only
// validates and formats them. Counters for distinct prefixes are fully
// independent and reset to 1 at each new calendar day.
package docnumber
