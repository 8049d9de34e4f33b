// Package history records completed encodes in a SQLite database so past
// runs can be listed and compared.
package history
