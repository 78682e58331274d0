// Package memory provides the in-memory implementations of the store
// interfaces. All state lives in process memory and is lost on restart;
// the viewer intentionally persists nothing across sessions.
package memory
