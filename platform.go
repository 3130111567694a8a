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
	"crypto/rand"
	"encoding/binary"
	"encoding/hex"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/pkg/errors"
)

// Platform is an abstraction of host facilities consumed by the library:
// the entropy source and the process identity (hostname, process id,
// environment). The core algorithm depends only on this interface, the
// default implementation is bound to the operating system.
type Platform interface {
	// RandomBytes fills the buffer with cryptographically secure randomness.
	RandomBytes(b []byte) error
	// RandomInt64 returns 8 random bytes interpreted as little-endian signed integer.
	RandomInt64() (int64, error)
	// Hostname returns the system hostname. It never fails, if the hostname
	// cannot be retrieved a synthesized random value is returned instead.
	Hostname() string
	// ProcessID returns the OS process id, stable for the process lifetime.
	ProcessID() uint32
	// Environ returns all environment variables sorted ascending by key.
	Environ() []EnvVar
}

// EnvVar is a single environment variable.
type EnvVar struct {
	Key   string
	Value string
}

// Host is the default instance of Platform bound to the operating system.
var Host Platform = host{}

type host struct{}

func (host) RandomBytes(b []byte) error {
	if _, err := io.ReadFull(rand.Reader, b); err != nil {
		return errors.Wrap(err, "entropy source failed")
	}
	return nil
}

func (p host) RandomInt64() (int64, error) {
	var b [8]byte
	if err := p.RandomBytes(b[:]); err != nil {
		return 0, err
	}
	return int64(binary.LittleEndian.Uint64(b[:])), nil
}

func (p host) Hostname() string {
	name, err := os.Hostname()
	if err != nil || name == "" {
		return p.randomHostname()
	}
	return name
}

// randomHostname synthesizes a 16 hex character fallback hostname.
// Hostname is a uniqueness aid, not a security boundary, so a zeroed
// buffer after an entropy fault is still acceptable here.
func (p host) randomHostname() string {
	var b [8]byte
	_ = p.RandomBytes(b[:])
	return hex.EncodeToString(b[:])
}

func (host) ProcessID() uint32 {
	return uint32(os.Getpid())
}

func (host) Environ() []EnvVar {
	environ := os.Environ()

	seen := make(map[string]struct{}, len(environ))
	seq := make([]EnvVar, 0, len(environ))

	for _, kv := range environ {
		key, val, ok := strings.Cut(kv, "=")
		if !ok {
			continue
		}
		// duplicate keys: first occurrence wins
		if _, has := seen[key]; has {
			continue
		}
		seen[key] = struct{}{}
		seq = append(seq, EnvVar{Key: key, Value: val})
	}

	sort.Slice(seq, func(i, j int) bool { return seq[i].Key < seq[j].Key })
	return seq
}
