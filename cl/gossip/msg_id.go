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
	"encoding/base64"
	"fmt"

	"github.com/erigontech/caplin-gossip/cl/clparams"
	"github.com/erigontech/caplin-gossip/cl/utils"
)

const (
	MessageIDLength   = 20
	FastMessageIDSize = 16
)

// fastMsgIDEmpty is returned for messages without data. Every empty message
// shares it, which is fine as long as no topic carries empty payloads.
const fastMsgIDEmpty = "0000000000000000"

// MessageID is the network-wide content id of a gossip message.
type MessageID [MessageIDLength]byte

func (id MessageID) String() string {
	return MsgIDToString(id[:])
}

// FastMsgID is a cheap id over the raw wire bytes, used only to skip
// duplicates before decompression. It has no fork awareness and must never
// stand in for MsgID.
//
// The first 8 bytes of SHA256(data) are split into nibbles, each mapped to
// the character '0'+n, so the result only uses the characters 0-9 : ; < = > ?.
func FastMsgID(data []byte) string {
	if len(data) == 0 {
		return fastMsgIDEmpty
	}
	h := utils.Sha256(data)
	var id [FastMessageIDSize]byte
	for i := 0; i < FastMessageIDSize/2; i++ {
		id[2*i] = h[i]>>4 + '0'
		id[2*i+1] = h[i]&0x0f + '0'
	}
	return string(id[:])
}

// MsgID derives the message id of a decompressed payload. The fork is looked
// up through the resolver, topic strings are never parsed here.
func MsgID(resolver TopicResolver, topic string, decompressed []byte) (MessageID, error) {
	info, err := resolver.Resolve(topic)
	if err != nil {
		return MessageID{}, err
	}
	return MsgIDForFork(info.Fork, topic, decompressed)
}

// MsgIDForFork computes the message id for a fork:
//
//	phase0:  SHA256(MESSAGE_DOMAIN_VALID_SNAPPY + snappy_decompress(message.data))[:20]
//	altair+: SHA256(MESSAGE_DOMAIN_VALID_SNAPPY + uint_to_bytes(uint64(len(message.topic))) + message.topic + snappy_decompress(message.data))[:20]
//
// decompressed must be the output of a successful inbound transform, ids over
// compressed bytes would not converge across snappy implementations.
func MsgIDForFork(fork clparams.StateVersion, topic string, decompressed []byte) (MessageID, error) {
	var h [32]byte
	switch {
	case fork.Before(clparams.AltairVersion):
		h = utils.Sha256(clparams.MessageDomainValidSnappy[:], decompressed)
	case !clparams.LatestStateVersion.Before(fork):
		h = utils.Sha256(clparams.MessageDomainValidSnappy[:], utils.Uint64ToLE(uint64(len(topic))), []byte(topic), decompressed)
	default:
		return MessageID{}, fmt.Errorf("%w: %s", ErrUnsupportedFork, fork)
	}
	var id MessageID
	copy(id[:], h[:MessageIDLength])
	return id, nil
}

// InvalidSnappyMsgID is the id given to messages whose data failed the inbound
// transform. Phase0 topics hash the raw data only; every later fork, and any
// fork this package does not know about, also mixes in the topic.
func InvalidSnappyMsgID(fork clparams.StateVersion, topic string, raw []byte) MessageID {
	var h [32]byte
	if fork.Before(clparams.AltairVersion) {
		h = utils.Sha256(clparams.MessageDomainInvalidSnappy[:], raw)
	} else {
		h = utils.Sha256(clparams.MessageDomainInvalidSnappy[:], utils.Uint64ToLE(uint64(len(topic))), []byte(topic), raw)
	}
	var id MessageID
	copy(id[:], h[:MessageIDLength])
	return id
}

// MsgIDToString renders a message id for logs and string keyed caches.
func MsgIDToString(id []byte) string {
	return base64.StdEncoding.EncodeToString(id)
}
