// Package server is the HTTP front end: it keeps a form controller per
// visitor and renders it as a plain HTML page that posts back to itself.
package server
