// Package router implements the coordinator for the support workflow. A
// turn moves through five phases in a fixed order: initialize the thread
// state, classify the query, apply the routing policy, dispatch to a
// specialist handler, and finalize by recording the turn and persisting the
// state. Turns on the same thread are serialized; different threads proceed
// concurrently.
package router
