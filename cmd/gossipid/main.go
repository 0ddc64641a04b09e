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

// gossipid computes gossipsub message ids and runs the gossip payload
// transform on hex encoded input.
package main

import (
	"bufio"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ledgerwatch/log/v3"
	"github.com/urfave/cli/v2"

	"github.com/erigontech/caplin-gossip/cl/clparams"
	"github.com/erigontech/caplin-gossip/cl/gossip"
	"github.com/erigontech/caplin-gossip/cl/utils"
	"github.com/erigontech/caplin-gossip/turbo/logging"
)

var (
	networkFlag = &cli.StringFlag{
		Name:  "network",
		Usage: "Network whose gossip parameters are used (mainnet, sepolia, holesky, minimal)",
		Value: string(clparams.MainnetNetwork),
	}
	configFlag = &cli.StringFlag{
		Name:  "config",
		Usage: "Path to a .yaml or .toml network config overriding --network",
	}
	forkFlag = &cli.StringFlag{
		Name:  "fork",
		Usage: "Fork the topic belongs to (phase0, altair, ..., electra)",
		Value: clparams.AltairVersion.String(),
	}
	topicFlag = &cli.StringFlag{
		Name:  "topic",
		Usage: "Full gossip topic, e.g. /eth2/4a26c58b/beacon_block/ssz_snappy",
	}
	forkDigestFlag = &cli.StringFlag{
		Name:  "fork-digest",
		Usage: "Hex fork digest, used with --topic-name instead of --topic",
	}
	topicNameFlag = &cli.StringFlag{
		Name:  "topic-name",
		Usage: "Topic name, e.g. beacon_block or beacon_attestation_3",
	}
	attestationSubnetsFlag = &cli.Uint64Flag{
		Name:  "attestation-subnets",
		Usage: "Number of beacon attestation subnets",
		Value: 64,
	}
	syncCommitteeSubnetsFlag = &cli.Uint64Flag{
		Name:  "sync-committee-subnets",
		Usage: "Number of sync committee subnets",
		Value: 4,
	}
	blobSidecarSubnetsFlag = &cli.Uint64Flag{
		Name:  "blob-sidecar-subnets",
		Usage: "Number of blob sidecar subnets",
		Value: 6,
	}
	maxSizeFlag = &cli.StringFlag{
		Name:  "max-size",
		Usage: "Override the decompressed size bound, e.g. 10MB",
	}
)

func main() {
	app := newApp()
	if err := app.Run(os.Args); err != nil {
		_, printErr := fmt.Fprintln(os.Stderr, err)
		if printErr != nil {
			log.Warn("Fprintln error", "err", printErr)
		}
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "gossipid",
		Usage: "Compute consensus layer gossip message ids",
		Flags: append([]cli.Flag{networkFlag, configFlag}, logging.Flags...),
		Before: func(ctx *cli.Context) error {
			logging.SetupLoggerCtx("gossipid", ctx, true)
			return nil
		},
		Commands: []*cli.Command{
			{
				Name:      "fast-id",
				Usage:     "Print the fast message id of raw message data",
				ArgsUsage: "[hex]",
				Action:    runFastID,
			},
			{
				Name:      "msg-id",
				Usage:     "Print the canonical message id of snappy compressed message data",
				ArgsUsage: "[hex]",
				Flags:     []cli.Flag{forkFlag, topicFlag, forkDigestFlag, topicNameFlag, maxSizeFlag},
				Action:    runMsgID,
			},
			{
				Name:   "topics",
				Usage:  "List the ssz_snappy topics of a fork digest",
				Flags:  []cli.Flag{forkDigestFlag, attestationSubnetsFlag, syncCommitteeSubnetsFlag, blobSidecarSubnetsFlag},
				Action: runTopics,
			},
			{
				Name:      "compress",
				Usage:     "Apply the outbound transform",
				ArgsUsage: "[hex]",
				Flags:     []cli.Flag{maxSizeFlag},
				Action:    runCompress,
			},
			{
				Name:      "decompress",
				Usage:     "Apply the inbound transform",
				ArgsUsage: "[hex]",
				Flags:     []cli.Flag{maxSizeFlag},
				Action:    runDecompress,
			},
		},
	}
}

func networkConfig(ctx *cli.Context) (*clparams.NetworkConfig, error) {
	if path := ctx.String(configFlag.Name); path != "" {
		return clparams.LoadNetworkConfig(path)
	}
	return clparams.GetNetworkConfigByName(ctx.String(networkFlag.Name))
}

func transform(ctx *cli.Context) (*gossip.DataTransformSnappy, error) {
	cfg, err := networkConfig(ctx)
	if err != nil {
		return nil, err
	}
	maxSize := cfg.GossipMaxSize
	if s := ctx.String(maxSizeFlag.Name); s != "" {
		if err := maxSize.UnmarshalText([]byte(s)); err != nil {
			return nil, fmt.Errorf("invalid --%s %q: %w", maxSizeFlag.Name, s, err)
		}
		cfg.GossipMaxSize = maxSize
		if err := cfg.Validate(); err != nil {
			return nil, fmt.Errorf("invalid --%s: %w", maxSizeFlag.Name, err)
		}
	}
	return gossip.NewDataTransformSnappy(cfg.GossipMaxSize), nil
}

func forkDigest(ctx *cli.Context) ([4]byte, error) {
	s := strings.TrimPrefix(ctx.String(forkDigestFlag.Name), "0x")
	b, err := hex.DecodeString(s)
	if err != nil || len(b) != 4 {
		return [4]byte{}, fmt.Errorf("--%s must be 4 hex encoded bytes, got %q", forkDigestFlag.Name, s)
	}
	return utils.BytesToBytes4(b), nil
}

// resolverFor registers the topic selected on the command line under fork.
func resolverFor(ctx *cli.Context, fork clparams.StateVersion) (*gossip.TopicCache, string, error) {
	cache := gossip.NewTopicCache()
	if topic := ctx.String(topicFlag.Name); topic != "" {
		if ctx.IsSet(topicNameFlag.Name) || ctx.IsSet(forkDigestFlag.Name) {
			return nil, "", fmt.Errorf("--%s excludes --%s and --%s", topicFlag.Name, forkDigestFlag.Name, topicNameFlag.Name)
		}
		cache.RegisterTopic(topic, fork)
		return cache, topic, nil
	}
	if !ctx.IsSet(forkDigestFlag.Name) || !ctx.IsSet(topicNameFlag.Name) {
		return nil, "", fmt.Errorf("either --%s or both --%s and --%s are required", topicFlag.Name, forkDigestFlag.Name, topicNameFlag.Name)
	}
	digest, err := forkDigest(ctx)
	if err != nil {
		return nil, "", err
	}
	topics, err := cache.RegisterDigest(digest, fork, ctx.String(topicNameFlag.Name))
	if err != nil {
		return nil, "", err
	}
	return cache, topics[0], nil
}

// readInput decodes the first argument, or stdin when there is none, as hex.
func readInput(ctx *cli.Context) ([]byte, error) {
	var s string
	if ctx.Args().Present() {
		s = ctx.Args().First()
	} else {
		r := ctx.App.Reader
		if r == nil {
			r = os.Stdin
		}
		raw, err := io.ReadAll(bufio.NewReader(r))
		if err != nil {
			return nil, err
		}
		s = string(raw)
	}
	s = strings.TrimPrefix(strings.TrimSpace(s), "0x")
	data, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("input is not hex: %w", err)
	}
	return data, nil
}

func runFastID(ctx *cli.Context) error {
	data, err := readInput(ctx)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(ctx.App.Writer, gossip.FastMsgID(data))
	return err
}

func runMsgID(ctx *cli.Context) error {
	fork, err := clparams.StringToClVersion(ctx.String(forkFlag.Name))
	if err != nil {
		return err
	}
	resolver, topic, err := resolverFor(ctx, fork)
	if err != nil {
		return err
	}
	data, err := readInput(ctx)
	if err != nil {
		return err
	}
	t, err := transform(ctx)
	if err != nil {
		return err
	}

	var id gossip.MessageID
	decoded, err := t.InboundTransform(topic, data)
	if err != nil {
		log.Debug("[Gossip] Payload does not decode, using invalid snappy domain", "topic", topic, "err", err)
		id = gossip.InvalidSnappyMsgID(fork, topic, data)
	} else if id, err = gossip.MsgID(resolver, topic, decoded); err != nil {
		return err
	}
	_, err = fmt.Fprintf(ctx.App.Writer, "%s %s\n", hex.EncodeToString(id[:]), id)
	return err
}

func runTopics(ctx *cli.Context) error {
	digest, err := forkDigest(ctx)
	if err != nil {
		return err
	}
	names := gossip.AllTopicNames(
		ctx.Uint64(attestationSubnetsFlag.Name),
		ctx.Uint64(syncCommitteeSubnetsFlag.Name),
		ctx.Uint64(blobSidecarSubnetsFlag.Name),
	)
	for _, name := range names {
		topic, err := gossip.NewSSZSnappyTopic(digest, name)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintln(ctx.App.Writer, topic.Topic()); err != nil {
			return err
		}
	}
	return nil
}

func runCompress(ctx *cli.Context) error {
	data, err := readInput(ctx)
	if err != nil {
		return err
	}
	t, err := transform(ctx)
	if err != nil {
		return err
	}
	out, err := t.OutboundTransform("", data)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(ctx.App.Writer, hex.EncodeToString(out))
	return err
}

func runDecompress(ctx *cli.Context) error {
	data, err := readInput(ctx)
	if err != nil {
		return err
	}
	t, err := transform(ctx)
	if err != nil {
		return err
	}
	out, err := t.InboundTransform("", data)
	if err != nil {
		if errors.Is(err, gossip.ErrPayloadTooLarge) {
			return fmt.Errorf("%w (bound %s)", err, t.MaxSizePerMessage().HR())
		}
		return err
	}
	_, err = fmt.Fprintln(ctx.App.Writer, hex.EncodeToString(out))
	return err
}
