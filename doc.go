// Package practice provides the functions and types for running the
// day-to-day books of a small legal practice. It is designed to be
// local-first and auditable: everything the office records lives in one
// plain file the practitioner fully owns.
//
// The core functionalities include:
//   - Client Accounts: Registering clients with an agreed professional
//     fee and tracking every charge and payment on a per-client ledger,
//     with the balance always derived from the entries rather than
//     stored.
//   - Notarization Register: Recording commissioner-for-oaths (PJS)
//     transactions in a newest-first register, with monthly revenue
//     totals and a portable share-token snapshot.
//   - Service Price List: Maintaining the office's standard services and
//     prices for quick reuse when billing.
//   - Document Issuance: Producing official receipts, invoices,
//     quotations and account statements with firm branding and a single
//     shared reference counter.
//   - Data Persistence: Encoding the whole practice state as one
//     canonical JSON record, with csv import/export and full
//     backup/restore.
//
// This package serves as the foundational logic for the `hm`
// command-line tool, ensuring that all operations are consistent and
// based on a single source of truth.
package practice
