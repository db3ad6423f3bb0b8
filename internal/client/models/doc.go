// Package models defines the client-side domain types: users and their
// role-keyed profiles, assistance requests, donations and the records that
// back the local account directory.
package models
