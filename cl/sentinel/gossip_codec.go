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

import (
	"context"
	"errors"
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/jellydator/ttlcache/v3"
	"github.com/ledgerwatch/log/v3"
	pubsub "github.com/libp2p/go-libp2p-pubsub"
	pubsubpb "github.com/libp2p/go-libp2p-pubsub/pb"
	"github.com/libp2p/go-libp2p/core/host"
	"github.com/libp2p/go-libp2p/core/peer"

	"github.com/erigontech/caplin-gossip/cl/clparams"
	"github.com/erigontech/caplin-gossip/cl/gossip"
	"github.com/erigontech/caplin-gossip/cl/utils"
)

// rpcFrameOverhead leaves room for the protobuf framing around a maximally
// sized compressed payload.
const rpcFrameOverhead = 1024

// MessageHandler is invoked for every message that passed the inbound
// transform. data is already decompressed.
type MessageHandler func(ctx context.Context, pid peer.ID, topic string, data []byte) pubsub.ValidationResult

// GossipCodec plugs message ids and the snappy payload transform into gossipsub.
type GossipCodec struct {
	cfg       *clparams.NetworkConfig
	resolver  gossip.TopicResolver
	transform *gossip.DataTransformSnappy

	// topic/fast id -> message id, consulted before decompressing anything.
	fastMsgIDs *ttlcache.Cache[string, string]
	// message ids the application already accepted.
	accepted *lru.Cache[gossip.MessageID, struct{}]

	logger log.Logger
}

func NewGossipCodec(cfg *clparams.NetworkConfig, resolver gossip.TopicResolver, logger log.Logger) (*GossipCodec, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	accepted, err := lru.New[gossip.MessageID, struct{}](cfg.FastMsgIDCacheSize)
	if err != nil {
		return nil, err
	}
	fastMsgIDs := ttlcache.New[string, string](
		ttlcache.WithTTL[string, string](cfg.SeenTTL),
		ttlcache.WithCapacity[string, string](uint64(cfg.FastMsgIDCacheSize)),
		ttlcache.WithDisableTouchOnHit[string, string](),
	)
	go fastMsgIDs.Start()

	return &GossipCodec{
		cfg:        cfg,
		resolver:   resolver,
		transform:  gossip.NewDataTransformSnappy(cfg.GossipMaxSize),
		fastMsgIDs: fastMsgIDs,
		accepted:   accepted,
		logger:     logger,
	}, nil
}

// Close stops the expiration loop of the fast id cache.
func (g *GossipCodec) Close() {
	g.fastMsgIDs.Stop()
}

func (g *GossipCodec) Transform() *gossip.DataTransformSnappy {
	return g.transform
}

func (g *GossipCodec) PubsubOptions() []pubsub.Option {
	opts := []pubsub.Option{
		pubsub.WithMessageIdFn(g.MsgIDFn),
		pubsub.WithMessageSignaturePolicy(pubsub.StrictNoSign),
		pubsub.WithNoAuthor(),
		pubsub.WithSeenMessagesTTL(g.cfg.SeenTTL),
	}
	if maxEncoded := utils.MaxEncodedLenSnappy(int(g.cfg.GossipMaxSize.Bytes())); maxEncoded > 0 {
		opts = append(opts, pubsub.WithMaxMessageSize(maxEncoded+rpcFrameOverhead))
	}
	return opts
}

// NewGossipSub creates a gossipsub router wired to the codec.
func NewGossipSub(ctx context.Context, h host.Host, codec *GossipCodec, extra ...pubsub.Option) (*pubsub.PubSub, error) {
	return pubsub.NewGossipSub(ctx, h, append(codec.PubsubOptions(), extra...)...)
}

// MsgIDFn is the gossipsub message id function. Duplicates of a message seen
// within SeenTTL are answered from the fast id cache without decompressing.
func (g *GossipCodec) MsgIDFn(pmsg *pubsubpb.Message) string {
	topic := pmsg.GetTopic()
	key := topic + "/" + gossip.FastMsgID(pmsg.Data)
	if item := g.fastMsgIDs.Get(key); item != nil {
		gossipFastMsgIDHit.Inc()
		return item.Value()
	}
	gossipFastMsgIDMiss.Inc()

	id, resolved := g.msgID(topic, pmsg.Data)
	if resolved {
		// the fallback id of an unresolved topic must not outlive a later registration
		g.fastMsgIDs.Set(key, string(id[:]), ttlcache.DefaultTTL)
		gossipFastMsgIDEntries.SetInt(g.fastMsgIDs.Len())
	}
	return string(id[:])
}

// msgID derives the id of a message. resolved is false when the topic is not
// registered and the id was derived with an assumed fork.
func (g *GossipCodec) msgID(topic string, data []byte) (id gossip.MessageID, resolved bool) {
	info, err := g.resolver.Resolve(topic)
	if err != nil {
		// Without a fork we cannot know the layout, assume the current one.
		gossipInvalidMsgID.Inc()
		return gossip.InvalidSnappyMsgID(clparams.AltairVersion, topic, data), false
	}
	decoded, err := g.transform.InboundTransform(topic, data)
	if err != nil {
		gossipInvalidMsgID.Inc()
		return gossip.InvalidSnappyMsgID(info.Fork, topic, data), true
	}
	id, err = gossip.MsgIDForFork(info.Fork, topic, decoded)
	if err != nil {
		gossipInvalidMsgID.Inc()
		g.logger.Warn("[Gossip] Could not compute message id", "topic", topic, "fork", info.Fork, "err", err)
		return gossip.InvalidSnappyMsgID(info.Fork, topic, data), true
	}
	return id, true
}

// Validator decompresses the message, derives its id and hands the payload
// to handler. The decompressed payload is left in msg.ValidatorData.
func (g *GossipCodec) Validator(handler MessageHandler) pubsub.ValidatorEx {
	return func(ctx context.Context, pid peer.ID, msg *pubsub.Message) pubsub.ValidationResult {
		topic := msg.GetTopic()
		decoded, err := g.transform.InboundTransform(topic, msg.GetData())
		if err != nil {
			if errors.Is(err, gossip.ErrPayloadTooLarge) {
				gossipRejectedTooLarge.Inc()
			} else {
				gossipRejectedDecode.Inc()
			}
			g.logger.Trace("[Gossip] Rejecting message", "topic", topic, "peer", pid, "err", err)
			return pubsub.ValidationReject
		}

		id, err := gossip.MsgID(g.resolver, topic, decoded)
		if err != nil {
			// Registration gap on our side, the peer is not at fault.
			gossipIgnoredTopic.Inc()
			g.logger.Debug("[Gossip] Ignoring message", "topic", topic, "err", err)
			return pubsub.ValidationIgnore
		}
		if g.accepted.Contains(id) {
			gossipIgnoredDuplicate.Inc()
			return pubsub.ValidationIgnore
		}

		msg.ValidatorData = decoded
		result := pubsub.ValidationAccept
		if handler != nil {
			result = handler(ctx, pid, topic, decoded)
		}
		if result == pubsub.ValidationAccept {
			g.accepted.Add(id, struct{}{})
		}
		return result
	}
}

// Join registers the codec validator for topic and joins it.
func (g *GossipCodec) Join(ps *pubsub.PubSub, topic string, handler MessageHandler) (*pubsub.Topic, error) {
	validator := (func(context.Context, peer.ID, *pubsub.Message) pubsub.ValidationResult)(g.Validator(handler))
	if err := ps.RegisterTopicValidator(topic, validator); err != nil {
		return nil, fmt.Errorf("register validator for %s: %w", topic, err)
	}
	t, err := ps.Join(topic)
	if err != nil {
		if unregErr := ps.UnregisterTopicValidator(topic); unregErr != nil {
			g.logger.Warn("[Gossip] Could not unregister validator", "topic", topic, "err", unregErr)
		}
		return nil, fmt.Errorf("join %s: %w", topic, err)
	}
	return t, nil
}

// Publish compresses data and publishes it on topic. Oversized payloads are
// refused before compression.
func (g *GossipCodec) Publish(ctx context.Context, topic *pubsub.Topic, data []byte) error {
	compressed, err := g.transform.OutboundTransform(topic.String(), data)
	if err != nil {
		gossipPublishTooLarge.Inc()
		return err
	}
	if err := topic.Publish(ctx, compressed); err != nil {
		return err
	}
	gossipPublished.Inc()
	return nil
}
