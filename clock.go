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

import "time"

// nanoseconds per 100-nanosecond tick
const tick = 100

// unixTicks returns the ⟨𝒕⟩ component, current time as signed count of
// 100-nanosecond intervals since the Unix epoch. The value is not monotonic
// across clock adjustments but effectively monotonic in practice, which is
// sufficient for approximate chronological ordering of identifiers.
func unixTicks() int64 {
	return time.Now().UnixNano() / tick
}
