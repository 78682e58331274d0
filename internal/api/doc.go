// Package api handles incoming HTTP requests, routing, request validation,
// and response formatting. It translates HTTP concerns into calls on the
// session and deck services and maps their errors onto sanitized status
// responses.
package api
