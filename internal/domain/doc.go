// Package domain contains shared domain types used across entity sub-packages.
// Entity-specific types live in sub-packages (domain/todo). This root package
// holds the sentinel errors and typed errors that every layer uses to report
// failures without knowing about HTTP or storage details.
package domain
