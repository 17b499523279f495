// Package core contains the domain contracts of SupportMesh: the
// conversation state record, its closed label enumerations, the error
// taxonomy and the interfaces implemented by sibling packages (Classifier,
// SessionStore, Handler). Implementations live outside core so higher level
// packages (router, agents) never depend on concrete storage or model
// backends - only the wiring layer decides what to instantiate.
package core
