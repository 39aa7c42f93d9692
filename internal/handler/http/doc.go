// Package http implements the HTTP transport layer of the application.
//
// It exposes route wiring, request handlers, and middleware for the
// server-rendered notes app. Cross-cutting concerns such as request
// tracing, access logging, response compression, and session cookie
// handling run in this package before requests are delegated to the
// form pipeline and the service layer.
//
// Mutating routes share one pipeline: decode the (possibly multipart)
// body, validate the CSRF token, run the honeypot guard, validate the
// form against its schema, and only then call the mutation service.
// Successful mutations answer with a 303 redirect, optionally stashing a
// flash notification; rejected ones answer with a JSON error tree.
package http
