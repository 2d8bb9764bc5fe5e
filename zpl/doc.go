// Package zpl parses raw ZPL label text into an ordered sequence of typed
// commands.
//
// The grammar is deliberately lax where real printer firmware is lax: most
// parameters are optional and positional, a truncated parameter list is
// accepted as-is, and unrecognized two-character commands are captured as
// Unsupported commands instead of failing the whole parse. Mandatory
// parameters (box dimensions, font identifiers, the custom image payload)
// fail hard with a line-accurate ParseError.
package zpl
