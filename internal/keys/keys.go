// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The protectconf Authors

// Package keys loads and derives the server-side-encryption keys referenced
// by the sse_key option of a resolved configuration. A master key is exactly
// 32 bytes; when sse_key_is_master is set, per-file keys are derived from it
// so that no two objects in a remote store share an encryption key.
package keys

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"golang.org/x/crypto/hkdf"
)

// Size is the required length of a master key in bytes.
const Size = 32

var (
	// ErrKeyNotFound is returned by [Load] when the key file does not exist.
	ErrKeyNotFound = errors.New("sse key file not found")

	// ErrKeySize is returned when key material is not exactly [Size] bytes.
	ErrKeySize = errors.New("sse key must be exactly 32 bytes")
)

// Key is a 256-bit encryption key.
type Key [Size]byte

// Load reads a master key from the file at path. A single trailing newline
// is tolerated, since keys are commonly stored in editor-created text files.
// Returns [ErrKeyNotFound] if the file is missing and [ErrKeySize] if the
// remaining material is not exactly [Size] bytes.
func Load(path string) (Key, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Key{}, fmt.Errorf("%w: %s", ErrKeyNotFound, path)
		}
		return Key{}, fmt.Errorf("read sse key %s: %w", path, err)
	}
	return Parse(trimOneNewline(raw))
}

// Parse validates raw key material and returns it as a [Key]. Returns
// [ErrKeySize] if the material is not exactly [Size] bytes.
func Parse(raw []byte) (Key, error) {
	if len(raw) != Size {
		return Key{}, fmt.Errorf("%w (got %d)", ErrKeySize, len(raw))
	}
	var k Key
	copy(k[:], raw)
	return k, nil
}

// Generate returns a fresh random key read from the OS CSPRNG.
func Generate() (Key, error) {
	var k Key
	if _, err := io.ReadFull(rand.Reader, k[:]); err != nil {
		return Key{}, fmt.Errorf("generate sse key: %w", err)
	}
	return k, nil
}

// PerFile derives the encryption key for a single remote object from the
// master key. Derivation is HKDF-SHA256 with the object URL as the info
// string, so every URL maps to a stable, unique key and the master key is
// never used for bulk encryption directly.
func (k Key) PerFile(url string) (Key, error) {
	r := hkdf.New(sha256.New, k[:], nil, []byte(url))

	var derived Key
	if _, err := io.ReadFull(r, derived[:]); err != nil {
		return Key{}, fmt.Errorf("derive key for %s: %w", url, err)
	}
	return derived, nil
}

// Fingerprint returns a short hex identifier for the key: the first 8 bytes
// of its SHA-256 digest. Safe to log and to show in UIs; the key itself
// cannot be recovered from it.
func (k Key) Fingerprint() string {
	sum := sha256.Sum256(k[:])
	return hex.EncodeToString(sum[:8])
}

// WriteBase64 writes the key to w as standard Base64 followed by a newline.
func (k Key) WriteBase64(w io.Writer) error {
	_, err := fmt.Fprintln(w, base64.StdEncoding.EncodeToString(k[:]))
	return err
}

// String implements [fmt.Stringer]. It returns the fingerprint rather than
// the key material so that accidental logging never leaks the key.
func (k Key) String() string {
	return "sse-key:" + k.Fingerprint()
}

// trimOneNewline strips at most one trailing "\n" or "\r\n" from b.
func trimOneNewline(b []byte) []byte {
	if n := len(b); n > 0 && b[n-1] == '\n' {
		b = b[:n-1]
		if n := len(b); n > 0 && b[n-1] == '\r' {
			b = b[:n-1]
		}
	}
	return b
}
