// Package agent contains the specialist handlers a routed turn is
// dispatched to: Technical, Billing and General. Each handler owns a small
// ordered keyword table (first match wins, case-insensitive substring
// matching) and an optional secondary check. Handlers are pure functions
// over (query, state); a table miss is a defined business outcome producing
// a clarification response, never an error.
package agent
