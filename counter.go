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
	"sync"
	"sync/atomic"

	"github.com/pkg/errors"
)

// odd multiplier spreading the visible starting point of the sequence
const seedMultiplier = 476782367

// Counter is a monotonic ⟨𝒔⟩ sequence shared by all allocations of one
// generator. It is seeded lazily from cryptographic randomness so that
// process restarts do not replay the sequence. Values are strictly
// increasing by 1 until the silent int64 wraparound.
type Counter struct {
	platform Platform

	init  sync.Once
	err   error
	value atomic.Int64
}

// NewCounter creates the sequence over given platform. The seed is not
// drawn until the first call to Next.
func NewCounter(platform Platform) *Counter {
	return &Counter{platform: platform}
}

// Next returns the next value of the sequence. Safe for concurrent use,
// concurrent callers each observe a distinct value. The call fails only
// if the entropy source failed to seed the sequence.
func (c *Counter) Next() (int64, error) {
	c.init.Do(func() {
		seed, err := c.platform.RandomInt64()
		if err != nil {
			c.err = errors.Wrap(err, "failed to seed counter")
			return
		}
		c.value.Store(seed * seedMultiplier)
	})
	if c.err != nil {
		return 0, c.err
	}

	return c.value.Add(1) - 1, nil
}
