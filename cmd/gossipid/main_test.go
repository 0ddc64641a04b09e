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

package main

import (
	"bytes"
	"encoding/hex"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/erigontech/caplin-gossip/cl/gossip"
	"github.com/erigontech/caplin-gossip/cl/utils"
)

const testTopic = "/eth2/4a26c58b/beacon_block/ssz_snappy"

func runApp(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	app := newApp()
	app.Writer = &out
	app.Reader = strings.NewReader(stdin)
	err := app.Run(append([]string{"gossipid"}, args...))
	return out.String(), err
}

func TestFastID(t *testing.T) {
	out, err := runApp(t, "", "fast-id", hex.EncodeToString([]byte("hello")))
	require.NoError(t, err)
	require.Equal(t, "2<?24=;:5?;0:30>\n", out)

	out, err = runApp(t, "0x68656c6c6f\n", "fast-id")
	require.NoError(t, err)
	require.Equal(t, "2<?24=;:5?;0:30>\n", out)
}

func TestMsgID(t *testing.T) {
	data := hex.EncodeToString(utils.CompressSnappy(make([]byte, 20)))

	out, err := runApp(t, "", "msg-id", "--fork", "phase0", "--topic", testTopic, data)
	require.NoError(t, err)
	require.Equal(t, "32edb6022c0921d99aa347e9cda5dc2db413f557 Mu22AiwJIdmao0fpzaXcLbQT9Vc=\n", out)

	out, err = runApp(t, "", "msg-id", "--fork", "altair", "--topic", testTopic, data)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(out, "b466d6238742d52d7cc4eaf93c415fe681312521 "))

	out, err = runApp(t, "", "msg-id", "--topic", testTopic, hex.EncodeToString([]byte("not snappy")))
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(out, "6601bbaeb51667e8affacfec1ad6a8804cb2c581 "))

	_, err = runApp(t, "", "msg-id", "--fork", "fulu", "--topic", testTopic, data)
	require.Error(t, err)

	_, err = runApp(t, "", "msg-id", data)
	require.Error(t, err)
}

func TestCompressRoundTrip(t *testing.T) {
	payload := hex.EncodeToString(bytes.Repeat([]byte("hello"), 20))

	compressed, err := runApp(t, "", "compress", payload)
	require.NoError(t, err)

	out, err := runApp(t, compressed, "decompress")
	require.NoError(t, err)
	require.Equal(t, payload+"\n", out)
}

func TestDecompressBound(t *testing.T) {
	data := hex.EncodeToString(utils.CompressSnappy(make([]byte, 20)))

	_, err := runApp(t, "", "decompress", "--max-size", "16B", data)
	require.ErrorIs(t, err, gossip.ErrPayloadTooLarge)

	_, err = runApp(t, "", "decompress", "--max-size", "20B", data)
	require.NoError(t, err)

	_, err = runApp(t, "", "decompress", "zz")
	require.Error(t, err)
}

func TestConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gossip.yaml")
	require.NoError(t, os.WriteFile(path, []byte("network: minimal\ngossip_max_size: 16B\n"), 0o600))

	_, err := runApp(t, "", "--config", path, "compress", hex.EncodeToString(make([]byte, 20)))
	require.ErrorIs(t, err, gossip.ErrPayloadTooLarge)

	_, err = runApp(t, "", "--network", "nope", "compress", "00")
	require.Error(t, err)
}

func TestMsgIDFromTopicName(t *testing.T) {
	data := hex.EncodeToString(utils.CompressSnappy(make([]byte, 20)))

	byTopic, err := runApp(t, "", "msg-id", "--fork", "altair", "--topic", testTopic, data)
	require.NoError(t, err)
	byName, err := runApp(t, "", "msg-id", "--fork", "altair", "--fork-digest", "0x4a26c58b", "--topic-name", "beacon_block", data)
	require.NoError(t, err)
	require.Equal(t, byTopic, byName)

	_, err = runApp(t, "", "msg-id", "--fork-digest", "4a26c58b", "--topic-name", "beacon_blockz", data)
	require.Error(t, err)
	_, err = runApp(t, "", "msg-id", "--fork-digest", "4a26c5", "--topic-name", "beacon_block", data)
	require.Error(t, err)
	_, err = runApp(t, "", "msg-id", "--topic", testTopic, "--topic-name", "beacon_block", data)
	require.Error(t, err)
}

func TestTopics(t *testing.T) {
	out, err := runApp(t, "", "topics", "--fork-digest", "4a26c58b", "--attestation-subnets", "2", "--sync-committee-subnets", "1", "--blob-sidecar-subnets", "0")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, len(gossip.AllTopicNames(2, 1, 0)))
	require.Equal(t, testTopic, lines[0])
	require.Contains(t, lines, "/eth2/4a26c58b/beacon_attestation_1/ssz_snappy")
	require.Contains(t, lines, "/eth2/4a26c58b/sync_committee_0/ssz_snappy")

	_, err = runApp(t, "", "topics")
	require.Error(t, err)
}

func TestCompressMaxSize(t *testing.T) {
	payload := hex.EncodeToString(make([]byte, 20))

	_, err := runApp(t, "", "compress", "--max-size", "16B", payload)
	require.ErrorIs(t, err, gossip.ErrPayloadTooLarge)

	_, err = runApp(t, "", "compress", "--max-size", "20B", payload)
	require.NoError(t, err)

	_, err = runApp(t, "", "compress", "--max-size", "4GB", payload)
	require.Error(t, err)
	_, err = runApp(t, "", "decompress", "--max-size", "0B", payload)
	require.Error(t, err)
}
