// Package vanilla renders the form as a plain HTML page using pongo2
// templates. The page posts back to the server for every interaction and
// fades the success notice with CSS, so it needs no client-side script.
package vanilla
