// Package inventory provides the types and functions for tracking a small
// stock inventory. It is designed to be local-first and auditable: the whole
// inventory lives in a single human-readable text file that is loaded in
// memory, worked on during a session, and written back.
//
// The core functionalities include:
//   - Item: a named stock-keeping record with a price, a current stock
//     count and a reorder threshold. Stock never goes negative.
//   - Store: an in-memory collection of items, kept sorted by
//     case-insensitive name, with binary-search lookup, sorted
//     insert-or-replace, and reorder-need filtering.
//   - Data Persistence: encoding and decoding of the store to and from a
//     whitespace-delimited text format with a fixed header line.
//   - Supplier Import: fetching supplier catalogs in JSON and extracting
//     items from them with jsonpath queries.
//
// This package serves as the foundational logic for the `inv` command-line
// tool, ensuring that all operations are consistent and based on a single
// source of truth.
package inventory
