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

/*
Package cuid2 generates collision-resistant, roughly sortable, url-safe
unique identifiers suitable as database keys and distributed-system tokens.

Key features

↣ identifiers are opaque base-36 strings (0-9a-z), always starting with a
lowercase letter, so they are valid symbols in most programming languages,
safe in urls and on case-insensitive file systems.

↣ identifiers are allocated without a central authority, each process
contributes its own fingerprint and a randomly seeded monotonic sequence.

↣ identifiers are uniformly distributed, the visible string is a hash of
the inputs rather than the inputs themselves, leaking neither the host
identity nor the allocation rate.

↣ the length is configurable from 4 to 32 characters (24 by default),
trading storage footprint against collision probability.

Identity schema

Each identifier is derived from four components, concatenated and hashed
with FIPS-202 SHA3-512:

	 8 byte        8 byte       variable       n byte
	|------------|------------|--------------|------------|
	     ⟨𝒕⟩          ⟨𝒔⟩           ⟨𝒇⟩           ⟨𝒓⟩

↣ ⟨𝒕⟩ is a signed count of 100-nanosecond intervals since the Unix epoch,
serialized little-endian. It makes identifiers approximately sortable by
allocation time.

↣ ⟨𝒔⟩ is a process-wide monotonic sequence, serialized little-endian. It is
seeded once per process from cryptographic randomness so that restarts do
not replay the sequence, and incremented atomically so that concurrent
allocations never observe the same value.

↣ ⟨𝒇⟩ is the process fingerprint, an immutable byte sequence derived once
from hostname, process id and sorted environment. It separates identifiers
allocated by distinct processes and hosts.

↣ ⟨𝒓⟩ is n bytes of cryptographically secure randomness, drawn fresh for
every identifier, where n equals the requested length.

The 64-byte digest is encoded as a base-36 number, truncated to length - 1
characters and prefixed with a random lowercase letter.

Usage

The library exposes a single operation:

	id, err := cuid2.Generate()    // 24 characters
	id, err := cuid2.Generate(32)  // maximum length

Applications requiring a private sequence and fingerprint, or deterministic
behavior in tests, construct an own generator:

	gen := cuid2.New(
		cuid2.WithPlatform(platform),
		cuid2.WithClock(func() int64 { return 0 }),
	)
	id, err := gen.Generate()
*/
package cuid2
