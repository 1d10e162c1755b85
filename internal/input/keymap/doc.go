// Package keymap maps key sequences to command names, one prefix tree
// per editing mode. Sequences are written in the notation of the key
// package; looking one up walks the tree and reports whether it misses,
// prefixes a longer binding, or names a command.
package keymap
