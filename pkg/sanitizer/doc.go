// Package sanitizer normalizes free-text request fields before validation
// and storage.
//
// All functions are idempotent: applying them twice gives the same result.
// Invalid input is handled by returning an empty or best-effort string,
// never an error; validation decides whether the result is acceptable.
package sanitizer
