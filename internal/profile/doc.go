// Package profile owns connection parameters: the scheme://host:port
// [/password] URL form this library accepts, and a TOML-backed store
// of named profiles on disk.
//
// Ownership boundary:
//   - parsing/validating the URL form
//   - the named-profile store (load/save/template) persisted as TOML
package profile
