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

	"github.com/puzpuzpuz/xsync/v4"

	"github.com/erigontech/caplin-gossip/cl/clparams"
)

//go:generate mockgen -typed=true -destination=./topic_resolver_mock.go -package=gossip . TopicResolver
type TopicResolver interface {
	// Resolve returns the fork the topic belongs to, or an error wrapping
	// ErrUnknownTopic. Implementations must be safe for concurrent use.
	Resolve(topic string) (TopicForkInfo, error)
}

// TopicCache is a TopicResolver backed by explicit registrations. Reads never
// block, so it can be consulted from the pubsub message id hook while topics
// for an upcoming fork are being registered.
type TopicCache struct {
	topics *xsync.Map[string, TopicForkInfo]
}

func NewTopicCache() *TopicCache {
	return &TopicCache{topics: xsync.NewMap[string, TopicForkInfo]()}
}

func (c *TopicCache) Register(topic GossipTopic, fork clparams.StateVersion) string {
	s := topic.Topic()
	c.RegisterTopic(s, fork)
	return s
}

// RegisterDigest registers the ssz_snappy topics for names under forkDigest.
// Nothing is registered if any name is unknown.
func (c *TopicCache) RegisterDigest(forkDigest [4]byte, fork clparams.StateVersion, names ...string) ([]string, error) {
	topics := make([]GossipTopic, 0, len(names))
	for _, name := range names {
		topic, err := NewSSZSnappyTopic(forkDigest, name)
		if err != nil {
			return nil, err
		}
		topics = append(topics, topic)
	}
	out := make([]string, 0, len(topics))
	for _, topic := range topics {
		out = append(out, c.Register(topic, fork))
	}
	return out, nil
}

func (c *TopicCache) RegisterTopic(topic string, fork clparams.StateVersion) {
	c.topics.Store(topic, TopicForkInfo{Fork: fork})
}

func (c *TopicCache) Unregister(topic string) {
	c.topics.Delete(topic)
}

func (c *TopicCache) Resolve(topic string) (TopicForkInfo, error) {
	info, ok := c.topics.Load(topic)
	if !ok {
		return TopicForkInfo{}, fmt.Errorf("%w: %s", ErrUnknownTopic, topic)
	}
	return info, nil
}

func (c *TopicCache) Len() int {
	return c.topics.Size()
}

// Topics returns the registered topic strings in no particular order.
func (c *TopicCache) Topics() []string {
	out := make([]string, 0, c.topics.Size())
	c.topics.Range(func(topic string, _ TopicForkInfo) bool {
		out = append(out, topic)
		return true
	})
	return out
}
