// Package session holds the signed-in user of the running client.
//
// A Store is created once per process, hydrated from the local metadata
// table at startup and passed explicitly to the route guard, the services
// and the views. Every mutation (login, logout, onboarding completion, karma
// credit) is written through to the persisted record before it becomes
// visible in memory, so a reload always observes the last successful change.
//
// The persisted record is a compact HS256 JWT sealed with the installation's
// device key. Its claims carry a schema version and the flat user object:
//
//	{"v": 1, "user": {"id": "...", "email": "...", "name": "...", "role": "donor",
//	                  "karmaPoints": 45, "preferences": ["food", "money"]}}
//
// A record that fails signature, version or shape checks is treated as
// absent.
package session
