// Package shopping provides the core of a small, local-first shopping ledger.
//
// The core functionalities include:
//   - Ledger Management: an ordered mapping from item name to a LineItem
//     (quantity and unit price) with upsert, removal and enumeration.
//   - Aggregation: subtotal and total cost computation, with tax applied
//     before discount on the running total.
//   - Data Persistence: encoding and decoding of the ledger to and from a
//     comma separated text format, plus a JSON view that can be queried with
//     JSONPath expressions.
//
// This package serves as the foundational logic for the `shop` command-line
// tool. The command line is only a presentation layer: it collects raw
// strings, calls into this package and renders what the Ledger reports.
package shopping
