// Package tabunganku implements the core of a school savings ledger: a roster
// of students and an append-only log of deposit and withdrawal transactions,
// kept mutually consistent so that every student's balance always equals the
// net effect of their transaction history.
//
// The core functionalities include:
//   - Ledger Management: adding and removing students, recording deposits and
//     withdrawals with insufficient-funds protection, and derived queries over
//     the roster and the transaction history.
//   - Import Reconciliation: turning untrusted tabular input (spreadsheet or
//     CSV rows) into validated student records.
//   - Summary Building: producing the small, bounded snapshot of the ledger
//     handed to the AI advisory assistant.
//   - Data Persistence: encoding and decoding the roster and the transaction
//     history to and from versioned JSON files.
//
// This package serves as the foundational logic for the `tabungan`
// command-line tool; the presentation layer never mutates balances directly.
package tabunganku
