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

package cuid2_test

import (
	"os"
	"testing"

	"github.com/fogfish/cuid2"
	"github.com/fogfish/it/v2"
)

func TestHostRandomBytes(t *testing.T) {
	a := make([]byte, 32)
	b := make([]byte, 32)

	it.Then(t).Should(
		it.Nil(cuid2.Host.RandomBytes(a)),
		it.Nil(cuid2.Host.RandomBytes(b)),
	)

	it.Then(t).ShouldNot(
		it.Equal(string(a), string(b)),
	)
}

func TestHostRandomInt64(t *testing.T) {
	seen := map[int64]struct{}{}
	for i := 0; i < 10; i++ {
		val, err := cuid2.Host.RandomInt64()
		it.Then(t).Should(it.Nil(err))
		seen[val] = struct{}{}
	}

	it.Then(t).Should(
		it.True(len(seen) > 1),
	)
}

func TestHostHostname(t *testing.T) {
	hostname := cuid2.Host.Hostname()

	it.Then(t).Should(
		it.True(len(hostname) > 0),
		it.Equal(hostname, cuid2.Host.Hostname()),
	)
}

func TestHostProcessID(t *testing.T) {
	it.Then(t).Should(
		it.Equal(cuid2.Host.ProcessID(), uint32(os.Getpid())),
		it.Equal(cuid2.Host.ProcessID(), cuid2.Host.ProcessID()),
	)
}

func TestHostEnviron(t *testing.T) {
	t.Setenv("CONFIG_CUID2_PROBE", "probe")

	environ := cuid2.Host.Environ()

	it.Then(t).Should(
		it.True(len(environ) > 0),
	)

	seen := false
	for i, v := range environ {
		if i > 0 {
			it.Then(t).Should(
				it.True(environ[i-1].Key < v.Key),
			)
		}
		if v.Key == "CONFIG_CUID2_PROBE" {
			seen = true
			it.Then(t).Should(
				it.Equal(v.Value, "probe"),
			)
		}
	}

	it.Then(t).Should(
		it.True(seen),
	)
}
