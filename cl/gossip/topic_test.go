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

package gossip

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGossipTopicRoundTrip(t *testing.T) {
	topic := GossipTopic{
		ForkDigest: [4]byte{0x4a, 0x26, 0xc5, 0x8b},
		Name:       TopicNameBeaconBlock,
		CodecStr:   SSZSnappyCodec,
	}
	require.Equal(t, testBlockTopic, topic.Topic())

	parsed, err := ParseTopic(testBlockTopic)
	require.NoError(t, err)
	require.Equal(t, topic, parsed)
}

func TestParseTopicInvalid(t *testing.T) {
	for _, s := range []string{
		"",
		"/eth2/abcd",
		"eth2/4a26c58b/beacon_block/ssz_snappy",
		"/eth3/4a26c58b/beacon_block/ssz_snappy",
		"/eth2/4a26c5/beacon_block/ssz_snappy",
		"/eth2/zz26c58b/beacon_block/ssz_snappy",
		"/eth2/4a26c58b//ssz_snappy",
		"/eth2/4a26c58b/beacon_block/ssz_snappy/extra",
	} {
		_, err := ParseTopic(s)
		require.Error(t, err, s)
	}
}

func TestTopicNameHelpers(t *testing.T) {
	require.Equal(t, "beacon_attestation_3", TopicNameBeaconAttestation(3))
	require.Equal(t, "blob_sidecar_1", TopicNameBlobSidecar(1))
	require.Equal(t, "sync_committee_2", TopicNameSyncCommittee(2))

	for _, name := range []string{
		TopicNameBeaconBlock,
		TopicNameSyncCommitteeContributionAndProof,
		TopicNameBeaconAttestation(63),
		TopicNameBlobSidecar(0),
		TopicNameSyncCommittee(3),
	} {
		require.True(t, IsKnownTopicName(name), name)
	}
	for _, name := range []string{"", "beacon_blocks", "beacon_attestation_", "beacon_attestation_x", "blob_sidecar_01", "sync_committee_-1"} {
		require.False(t, IsKnownTopicName(name), name)
	}
}

func TestNewSSZSnappyTopic(t *testing.T) {
	topic, err := NewSSZSnappyTopic([4]byte{0x4a, 0x26, 0xc5, 0x8b}, TopicNameBeaconBlock)
	require.NoError(t, err)
	require.Equal(t, testBlockTopic, topic.Topic())

	_, err = NewSSZSnappyTopic([4]byte{0x4a, 0x26, 0xc5, 0x8b}, "beacon_blockz")
	require.Error(t, err)
}

func TestAllTopicNames(t *testing.T) {
	names := AllTopicNames(64, 4, 6)
	require.Len(t, names, len(globalTopicNames)+64+4+6)
	require.Contains(t, names, "beacon_attestation_63")
	require.Contains(t, names, "sync_committee_3")
	require.Contains(t, names, "blob_sidecar_5")
	require.NotContains(t, names, "blob_sidecar_6")
	for _, name := range names {
		require.True(t, IsKnownTopicName(name), name)
	}
	require.Len(t, AllTopicNames(0, 0, 0), len(globalTopicNames))
}
