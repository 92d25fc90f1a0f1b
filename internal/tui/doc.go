// Package tui holds the command and subscription algebra shared by every
// program in the app. Commands and subscriptions are plain data; the runtime
// shell interprets them, so update functions stay pure and testable.
package tui
