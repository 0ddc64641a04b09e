// Copyright 2024 The Erigon Authors
// This file is part of Erigon.
//
// Erigon is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Erigon is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with Erigon. If not, see <http://www.gnu.org/licenses/>.

package utils

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/golang/snappy"
)

// ErrDecodedTooLarge is returned when the length announced by a snappy block
// header exceeds the caller's bound.
var ErrDecodedTooLarge = errors.New("snappy decoded length exceeds limit")

func BytesToBytes4(b []byte) (ret [4]byte) {
	copy(ret[:], b)
	return
}

func Uint64ToLE(i uint64) []byte {
	buf := make([]byte, 8)
	binary.LittleEndian.PutUint64(buf, i)
	return buf
}

// DecompressSnappy decodes a snappy block. The decoded length is read from the
// block header and checked against maxLen before anything is allocated.
func DecompressSnappy(data []byte, maxLen uint64) ([]byte, error) {
	lenDecoded, err := snappy.DecodedLen(data)
	if errors.Is(err, snappy.ErrTooLarge) {
		return nil, fmt.Errorf("%w: %v", ErrDecodedTooLarge, err)
	}
	if err != nil {
		return nil, err
	}
	if uint64(lenDecoded) > maxLen {
		return nil, fmt.Errorf("%w: %d > %d", ErrDecodedTooLarge, lenDecoded, maxLen)
	}
	decodedData := make([]byte, lenDecoded)

	return snappy.Decode(decodedData, data)
}

func CompressSnappy(data []byte) []byte {
	return snappy.Encode(nil, data)
}

// MaxEncodedLenSnappy is the worst case size of CompressSnappy(data) for len(data) == srcLen,
// or -1 if srcLen is too large to be encoded.
func MaxEncodedLenSnappy(srcLen int) int {
	return snappy.MaxEncodedLen(srcLen)
}
