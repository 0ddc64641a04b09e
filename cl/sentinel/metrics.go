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

package sentinel

import "github.com/erigontech/caplin-gossip/metrics"

var (
	// fast id -> message id cache
	gossipFastMsgIDHit  = metrics.GetOrCreateCounter("gossip_fast_msg_id_hit")
	gossipFastMsgIDMiss = metrics.GetOrCreateCounter("gossip_fast_msg_id_miss")
	// ids derived with MESSAGE_DOMAIN_INVALID_SNAPPY
	gossipInvalidMsgID = metrics.GetOrCreateCounter("gossip_msg_id_invalid_snappy")

	gossipRejectedDecode   = metrics.GetOrCreateCounter(`gossip_inbound_rejected{reason="decode"}`)
	gossipRejectedTooLarge = metrics.GetOrCreateCounter(`gossip_inbound_rejected{reason="too_large"}`)
	gossipIgnoredTopic     = metrics.GetOrCreateCounter(`gossip_inbound_ignored{reason="unresolved_topic"}`)
	gossipIgnoredDuplicate = metrics.GetOrCreateCounter(`gossip_inbound_ignored{reason="duplicate"}`)

	gossipPublished        = metrics.GetOrCreateCounter("gossip_outbound_published")
	gossipPublishTooLarge  = metrics.GetOrCreateCounter(`gossip_outbound_rejected{reason="too_large"}`)
	gossipFastMsgIDEntries = metrics.GetOrCreateGauge("gossip_fast_msg_id_cache_entries")
)
