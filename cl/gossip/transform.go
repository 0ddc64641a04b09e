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
	"errors"
	"fmt"

	"github.com/c2h5oh/datasize"

	"github.com/erigontech/caplin-gossip/cl/utils"
)

// DataTransformSnappy sits on the wire boundary: every gossip payload is
// snappy compressed regardless of topic, and the same size bound applies to
// what we accept and what we publish.
type DataTransformSnappy struct {
	maxSizePerMessage uint64
}

func NewDataTransformSnappy(maxSizePerMessage datasize.ByteSize) *DataTransformSnappy {
	return &DataTransformSnappy{maxSizePerMessage: maxSizePerMessage.Bytes()}
}

func (d *DataTransformSnappy) MaxSizePerMessage() datasize.ByteSize {
	return datasize.ByteSize(d.maxSizePerMessage)
}

// InboundTransform decompresses data received from peers. It is the reverse of
// OutboundTransform. The topic does not affect decoding.
func (d *DataTransformSnappy) InboundTransform(topic string, data []byte) ([]byte, error) {
	decoded, err := utils.DecompressSnappy(data, d.maxSizePerMessage)
	if errors.Is(err, utils.ErrDecodedTooLarge) {
		return nil, fmt.Errorf("%w: %w", ErrPayloadTooLarge, err)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	return decoded, nil
}

// OutboundTransform compresses data to be published. The size is checked
// before compressing.
func (d *DataTransformSnappy) OutboundTransform(topic string, data []byte) ([]byte, error) {
	if uint64(len(data)) > d.maxSizePerMessage {
		return nil, fmt.Errorf("%w: ssz_snappy encoded data length %d > %d", ErrPayloadTooLarge, len(data), d.maxSizePerMessage)
	}
	return utils.CompressSnappy(data), nil
}
