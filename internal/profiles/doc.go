// Package profiles holds named git identities and persists them to a TOML
// document.
//
// A Store keeps profiles in insertion order. Mutations only touch memory;
// Save writes the whole store atomically, so a failed or interrupted save
// leaves the previous file intact.
//
// The document looks like:
//
//	current_profile = "work"
//
//	[profiles.work]
//	user_name = "Jane Smith"
//	email = "jane@company.com"
//	signing_key = "ABC123"
//
// Documents written by older releases used "name" instead of "user_name";
// Load accepts either.
package profiles
