// Package store provides SQLite-backed storage for the calculation history.
//
// Every CLI computation can be appended as a Calculation record: the command
// that ran, the rendered input, and the rendered output, plus a JSON detail
// blob with the exact parameters. The history is strictly optional; the
// conversion library itself never touches the store.
//
// # Database Configuration
//
//   - WAL mode: concurrent reads during writes
//   - synchronous=NORMAL: balance durability/performance
//   - busy_timeout=5000: wait for locks up to 5 seconds
//   - single-connection pool: SQLite allows one writer at a time
package store
