// Package session houses concrete implementations of core.SessionStore.
// The interface itself (and the ConversationState struct) live in the core
// package to centralize domain contracts. Keeping only implementations here
// prevents higher level packages (router, agents) from depending on
// concrete storage.
//
// The in-memory store lives at the package root; durable backends (Redis,
// SQLite, DynamoDB) live in sub-packages so only the wiring layer decides
// which implementation to instantiate.
package session
