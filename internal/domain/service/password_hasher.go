// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

// PasswordHasher derives the stored password digest. The output is
// deterministic so that credentials can be verified by lookup.
type PasswordHasher interface {
	Hash(username, password string) string
}
