// Package fintrack provides the computation core of a personal finance
// tracker: recurring subscriptions, income entries, interest projections and
// household cost splitting. It is designed to be local-first and auditable,
// keeping all data in human-readable files under the user's control.
//
// The core functionalities include:
//   - Calendar Arithmetic: a calendar Date value type with clamped month
//     stepping, period boundaries and range queries, free of timezone drift.
//   - Recurrence Materialization: expanding stored recurrence rules into
//     concrete dated occurrences within a query range, without ever
//     persisting the generated occurrences.
//   - Billing Cycle Resolution: computing a subscription's next due date and
//     cancellation deadline from its interval and notice period.
//   - Projection Calculators: a compound-interest timeline simulator with
//     inflation, tax and contribution growth; a proportional cost-splitting
//     engine for shared household costs; and a shift-based income calculator.
//   - Data Persistence: encoding and decoding tracker records to and from a
//     human-readable, version-controllable JSONL file.
//
// Every computation is a pure function of its inputs and an explicit
// reference date: nothing in this package holds mutable state between calls,
// so all of it is safe to call concurrently. This package serves as the
// foundational logic for the `fin` command-line tool.
package fintrack
