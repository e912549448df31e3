// Package expense provides the types and functions to keep track of personal
// expenses in a single, human-readable JSON file.
//
// The core functionalities include:
//   - Records: an Expense is an amount, a description and the instant it was
//     recorded, identified by a positive integer that is never reused.
//   - Persistence: a Store loads the whole Collection in memory and writes it
//     back atomically, as a pretty-printed JSON array.
//   - Computations: id assignment, monthly filtering and exact decimal totals
//     are pure functions over a Collection.
//   - Operations: a Tracker validates user input and applies add, list,
//     summary, update and delete to a Store.
//
// This package serves as the foundational logic for the `expense` command-line
// tool.
package expense
