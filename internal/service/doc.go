// Package service contains the application-specific use cases and business
// logic. It orchestrates interactions between domain objects and the stores
// (defined in internal/store) to fulfill application features.
//
// Services receive dependencies through constructor injection and translate
// store and source errors into application-level errors for API responses.
// The concrete services live in subpackages: session issues and validates
// session tokens, deck drives the flashcard operations over a session's
// vocabulary store and card.
package service
