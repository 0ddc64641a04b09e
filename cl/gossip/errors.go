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

import "errors"

var (
	// ErrPayloadTooLarge is returned by both directions of the payload
	// transform when a decompressed message would exceed the size bound.
	ErrPayloadTooLarge = errors.New("gossip payload too large")
	// ErrDecode is returned for structurally invalid snappy input.
	ErrDecode = errors.New("gossip payload decode error")
	// ErrUnknownTopic is returned when the topic was never registered.
	ErrUnknownTopic = errors.New("unknown gossip topic")
	// ErrUnsupportedFork is returned when a topic resolves to a fork with no
	// message id rule.
	ErrUnsupportedFork = errors.New("unsupported fork for gossip message id")
)
