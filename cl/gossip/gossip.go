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
	"fmt"
	"strconv"
	"strings"
)

const (
	TopicNameBeaconBlock                       = "beacon_block"
	TopicNameBeaconAggregateAndProof           = "beacon_aggregate_and_proof"
	TopicNameVoluntaryExit                     = "voluntary_exit"
	TopicNameProposerSlashing                  = "proposer_slashing"
	TopicNameAttesterSlashing                  = "attester_slashing"
	TopicNameBlsToExecutionChange              = "bls_to_execution_change"
	TopicNameSyncCommitteeContributionAndProof = "sync_committee_contribution_and_proof"

	TopicNameLightClientFinalityUpdate   = "light_client_finality_update"
	TopicNameLightClientOptimisticUpdate = "light_client_optimistic_update"

	topicNamePrefixBlobSidecar       = "blob_sidecar_"
	topicNamePrefixBeaconAttestation = "beacon_attestation_"
	topicNamePrefixSyncCommittee     = "sync_committee_"
)

var globalTopicNames = map[string]struct{}{
	TopicNameBeaconBlock:                       {},
	TopicNameBeaconAggregateAndProof:           {},
	TopicNameVoluntaryExit:                     {},
	TopicNameProposerSlashing:                  {},
	TopicNameAttesterSlashing:                  {},
	TopicNameBlsToExecutionChange:              {},
	TopicNameSyncCommitteeContributionAndProof: {},
	TopicNameLightClientFinalityUpdate:         {},
	TopicNameLightClientOptimisticUpdate:       {},
}

func TopicNameBlobSidecar(subnet uint64) string {
	return topicNamePrefixBlobSidecar + strconv.FormatUint(subnet, 10)
}

func TopicNameBeaconAttestation(subnet uint64) string {
	return topicNamePrefixBeaconAttestation + strconv.FormatUint(subnet, 10)
}

func TopicNameSyncCommittee(subnet uint64) string {
	return topicNamePrefixSyncCommittee + strconv.FormatUint(subnet, 10)
}

// subnetOf returns the subnet of a subnet-scoped topic name such as
// beacon_attestation_3.
func subnetOf(name string) (uint64, bool) {
	for _, prefix := range []string{topicNamePrefixBlobSidecar, topicNamePrefixBeaconAttestation, topicNamePrefixSyncCommittee} {
		digits, ok := strings.CutPrefix(name, prefix)
		if !ok || digits == "" {
			continue
		}
		subnet, err := strconv.ParseUint(digits, 10, 64)
		if err != nil || strconv.FormatUint(subnet, 10) != digits {
			return 0, false
		}
		return subnet, true
	}
	return 0, false
}

// IsKnownTopicName reports whether name is one of the consensus gossip topic
// names, either global or subnet-scoped.
func IsKnownTopicName(name string) bool {
	if _, ok := globalTopicNames[name]; ok {
		return true
	}
	_, ok := subnetOf(name)
	return ok
}

// NewSSZSnappyTopic builds the ssz_snappy topic for name under a fork digest.
func NewSSZSnappyTopic(forkDigest [4]byte, name string) (GossipTopic, error) {
	if !IsKnownTopicName(name) {
		return GossipTopic{}, fmt.Errorf("unknown topic name %q", name)
	}
	return GossipTopic{ForkDigest: forkDigest, Name: name, CodecStr: SSZSnappyCodec}, nil
}

// AllTopicNames lists every topic name of a fork given its subnet counts.
func AllTopicNames(attestationSubnets, syncCommitteeSubnets, blobSidecarSubnets uint64) []string {
	names := []string{
		TopicNameBeaconBlock,
		TopicNameBeaconAggregateAndProof,
		TopicNameVoluntaryExit,
		TopicNameProposerSlashing,
		TopicNameAttesterSlashing,
		TopicNameBlsToExecutionChange,
		TopicNameSyncCommitteeContributionAndProof,
		TopicNameLightClientFinalityUpdate,
		TopicNameLightClientOptimisticUpdate,
	}
	for i := uint64(0); i < attestationSubnets; i++ {
		names = append(names, TopicNameBeaconAttestation(i))
	}
	for i := uint64(0); i < syncCommitteeSubnets; i++ {
		names = append(names, TopicNameSyncCommittee(i))
	}
	for i := uint64(0); i < blobSidecarSubnets; i++ {
		names = append(names, TopicNameBlobSidecar(i))
	}
	return names
}
