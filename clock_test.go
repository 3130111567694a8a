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
	"testing"
	"time"

	"github.com/fogfish/it/v2"
)

func TestUnixTicks(t *testing.T) {
	a := unixTicks()
	time.Sleep(time.Millisecond)
	b := unixTicks()

	// 10⁷ ticks per second
	sec := time.Now().Unix() - a/10_000_000

	it.Then(t).Should(
		it.True(a > 0),
		it.True(b > a),
		it.True(sec >= 0 && sec <= 1),
	)
}
