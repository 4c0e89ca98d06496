// Package cli implements the interactive admin panel client.
//
// The REPL mirrors the panel's navigation: "open <path>" moves between
// screens, and the guard decides on every navigation whether the screen is
// admitted, bounced to /login (remembering where to return), or sent back
// to the dashboard. Record commands (list, add, edit, delete) operate on
// whatever screen is current.
//
// On start the persisted session is rehydrated before the first prompt, so
// a previously logged-in user lands already authenticated.
package cli
