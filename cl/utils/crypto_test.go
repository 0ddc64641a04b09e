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

package utils_test

import (
	"encoding/hex"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/erigontech/caplin-gossip/cl/utils"
)

func TestSha256(t *testing.T) {
	// FIPS 180-2 "abc" vector, fed in pieces.
	hash := utils.Sha256([]byte("a"), []byte("b"), []byte("c"))
	require.Equal(t, "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad", hex.EncodeToString(hash[:]))
	require.Equal(t, hash, utils.Sha256([]byte("abc")))
}

func TestSha256Concurrent(t *testing.T) {
	expected := utils.Sha256([]byte("gossip"))
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				if utils.Sha256([]byte("gossip")) != expected {
					t.Error("hash mismatch")
					return
				}
			}
		}()
	}
	wg.Wait()
}
