// Package cli provides the interactive BiteShare terminal client.
//
// The client is a REPL over the navigation surface of the web app. Every
// page change goes through the route guard, so the same access rules apply:
// protected pages send signed-out users to the login page and resume after
// sign-in, and role-restricted pages show an access-denied screen that can
// be left with back or relogin.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
