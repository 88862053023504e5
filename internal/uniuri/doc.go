// Package uniuri generates random identifiers for staged upload blobs.
// Keys are drawn from crypto/rand with rejection sampling, so every
// character of the alphabet is equally likely.
package uniuri
