//
//  Copyright 2012 Dmitry Kolesnikov, All Rights Reserved
//
//  Licensed under the Apache License, Version 2.0 (the "License");
//  you may not use this file except in compliance with the License.
//  You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
//  Unless required by applicable law or agreed to in writing, software
//  distributed under the License is distributed on an "AS IS" BASIS,
//  WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
//  See the License for the specific language governing permissions and
//  limitations under the License.
//

package cuid2

import (
	"fmt"

	"golang.org/x/crypto/sha3"
)

// Bounds of the identifier length, number of characters including the
// letter prefix.
const (
	DefaultLength = 24
	MinLength     = 4
	MaxLength     = 32
)

// InvalidLengthError is returned when the requested identifier length is
// outside of [MinLength, MaxLength].
type InvalidLengthError struct {
	Length   int
	Min, Max int
}

func (e *InvalidLengthError) Error() string {
	return fmt.Sprintf("invalid length %d, must be between %d and %d", e.Length, e.Min, e.Max)
}

// HashError is returned when the cryptographic hash primitive fails. It is
// distinct from InvalidLengthError so that callers can tell configuration
// mistakes from environment faults. The condition is not retried, it is
// expected only under catastrophic library faults.
type HashError struct {
	Err error
}

func (e *HashError) Error() string {
	return fmt.Sprintf("sha3-512 failed: %s", e.Err)
}

func (e *HashError) Unwrap() error { return e.Err }

// Gen allocates identifiers over a private counter and fingerprint. It is
// stateless per call and safe for concurrent use, the only shared state is
// the monotonic sequence and the two one-time initialization barriers.
type Gen struct {
	platform    Platform
	ticker      func() int64
	counter     *Counter
	fingerprint *Fingerprint
}

// Config option of the generator. Config options allow to define custom
// strategies to supply platform facilities or ⟨𝒕⟩ timestamps.
type Config func(*Gen)

// WithPlatform binds the generator to an explicit platform implementation.
func WithPlatform(platform Platform) Config {
	return func(gen *Gen) {
		gen.platform = platform
	}
}

// WithClock configures a custom ⟨𝒕⟩ generator function, the value is a
// signed count of 100-nanosecond intervals since the Unix epoch.
func WithClock(ticker func() int64) Config {
	return func(gen *Gen) {
		gen.ticker = ticker
	}
}

// New creates an instance of the generator with a private counter and
// fingerprint, both lazily initialized on first allocation.
func New(opts ...Config) *Gen {
	gen := &Gen{platform: Host, ticker: unixTicks}
	for _, opt := range opts {
		opt(gen)
	}

	gen.counter = NewCounter(gen.platform)
	gen.fingerprint = NewFingerprint(gen.platform)
	return gen
}

// default process-wide generator
var gen = New()

// Generate allocates an identifier using the process-wide generator. The
// optional argument defines the identifier length, DefaultLength otherwise.
func Generate(length ...int) (string, error) {
	return gen.Generate(length...)
}

// Generate allocates an identifier of the requested length: a lowercase
// letter followed by length - 1 base-36 characters of the SHA3-512 digest
// over timestamp, sequence, fingerprint and fresh randomness.
func (gen *Gen) Generate(length ...int) (string, error) {
	n := DefaultLength
	if len(length) > 0 {
		n = length[0]
	}
	if n < MinLength || n > MaxLength {
		return "", &InvalidLengthError{Length: n, Min: MinLength, Max: MaxLength}
	}

	t := gen.ticker()

	seq, err := gen.counter.Next()
	if err != nil {
		return "", err
	}

	fingerprint := gen.fingerprint.Get()

	entropy := make([]byte, n)
	if err := gen.platform.RandomBytes(entropy); err != nil {
		return "", err
	}

	var prefix [1]byte
	if err := gen.platform.RandomBytes(prefix[:]); err != nil {
		return "", err
	}

	input := make([]byte, 0, 16+len(fingerprint)+n)
	input = appendInt64(input, t)
	input = appendInt64(input, seq)
	input = append(input, fingerprint...)
	input = append(input, entropy...)

	hash := sha3.New512()
	if _, err := hash.Write(input); err != nil {
		return "", &HashError{Err: err}
	}
	encoded := EncodeBase36(hash.Sum(nil))

	id := make([]byte, 0, n)
	id = append(id, 'a'+prefix[0]%26)
	if len(encoded) >= n-1 {
		id = append(id, encoded[:n-1]...)
	} else {
		// unreachable with a 512-bit digest, kept for hash-width changes
		id = append(id, encoded...)
	}

	return string(id), nil
}
