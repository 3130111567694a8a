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
	"encoding/binary"
	"math/big"
)

// EncodeBase36 encodes a byte sequence as a base-36 number. The input is
// interpreted as a non-negative arbitrary-precision integer in big-endian
// byte order and repeatedly divided by 36, each remainder mapping to a
// character of the alphabet 0-9a-z. Empty input or an input of value zero
// yields "0", no other encoding carries leading zeros.
func EncodeBase36(data []byte) string {
	if len(data) == 0 {
		return "0"
	}

	num := new(big.Int).SetBytes(data)
	if num.Sign() == 0 {
		return "0"
	}

	return num.Text(36)
}

// appendInt64 appends the two's-complement value as 8 bytes little-endian
func appendInt64(buf []byte, v int64) []byte {
	return binary.LittleEndian.AppendUint64(buf, uint64(v))
}

// appendUint32 appends the value as 4 bytes little-endian
func appendUint32(buf []byte, v uint32) []byte {
	return binary.LittleEndian.AppendUint32(buf, v)
}
