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
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/erigontech/caplin-gossip/cl/clparams"
	"github.com/erigontech/caplin-gossip/cl/utils"
)

const (
	topicPrefix    = "eth2"
	SSZSnappyCodec = "ssz_snappy"
)

type GossipTopic struct {
	ForkDigest [4]byte
	Name       string
	CodecStr   string
}

func (t *GossipTopic) Topic() string {
	return fmt.Sprintf("/%s/%x/%s/%s", topicPrefix, t.ForkDigest, t.Name, t.CodecStr)
}

// ParseTopic splits a topic of the form /eth2/<fork digest>/<name>/<codec>.
// Callers computing message ids never need this, the TopicCache is keyed on the raw string.
func ParseTopic(topic string) (GossipTopic, error) {
	parts := strings.Split(topic, "/")
	if len(parts) != 5 || parts[0] != "" || parts[1] != topicPrefix {
		return GossipTopic{}, fmt.Errorf("invalid topic %q", topic)
	}
	if len(parts[2]) != 8 {
		return GossipTopic{}, fmt.Errorf("invalid fork digest in topic %q", topic)
	}
	digest, err := hex.DecodeString(parts[2])
	if err != nil {
		return GossipTopic{}, fmt.Errorf("invalid fork digest in topic %q: %w", topic, err)
	}
	if parts[3] == "" || parts[4] == "" {
		return GossipTopic{}, fmt.Errorf("invalid topic %q", topic)
	}
	return GossipTopic{ForkDigest: utils.BytesToBytes4(digest), Name: parts[3], CodecStr: parts[4]}, nil
}

// TopicForkInfo is what a TopicResolver knows about a topic.
type TopicForkInfo struct {
	Fork clparams.StateVersion
}
