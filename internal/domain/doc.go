// Package domain contains the core entities of the pegword application:
// users, workspaces (the UI's "tabs"), and the word entries that fill a
// workspace's 100-slot peg table. Entities validate themselves; persistence
// and transport concerns live elsewhere.
package domain
