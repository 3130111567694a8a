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

import "sync"

// Fingerprint is the immutable ⟨𝒇⟩ component, a byte sequence identifying
// the allocating process: hostname, process id and environment. It is
// computed once on first use and cached for the process lifetime, identical
// process environment yields identical fingerprint.
type Fingerprint struct {
	platform Platform

	init  sync.Once
	bytes []byte
}

// NewFingerprint creates the fingerprint over given platform. The value is
// not computed until the first call to Get.
func NewFingerprint(platform Platform) *Fingerprint {
	return &Fingerprint{platform: platform}
}

// Get returns the cached fingerprint bytes: hostname, process id as 4 bytes
// little-endian, then each environment variable as key=value, pairs sorted
// ascending by key and concatenated without separator. Safe for concurrent
// use, the computation happens exactly once. Callers must not mutate the
// returned slice.
func (fp *Fingerprint) Get() []byte {
	fp.init.Do(func() {
		hostname := fp.platform.Hostname()
		environ := fp.platform.Environ()

		size := len(hostname) + 4
		for _, v := range environ {
			size += len(v.Key) + 1 + len(v.Value)
		}

		buf := make([]byte, 0, size)
		buf = append(buf, hostname...)
		buf = appendUint32(buf, fp.platform.ProcessID())
		for _, v := range environ {
			buf = append(buf, v.Key...)
			buf = append(buf, '=')
			buf = append(buf, v.Value...)
		}

		fp.bytes = buf
	})

	return fp.bytes
}
