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

package clparams

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/c2h5oh/datasize"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

type NetworkType string

const (
	MainnetNetwork NetworkType = "mainnet"
	SepoliaNetwork NetworkType = "sepolia"
	HoleskyNetwork NetworkType = "holesky"
	MinimalNetwork NetworkType = "minimal"
)

var (
	// MessageDomainValidSnappy prefixes the hash input of ids derived from a
	// successfully decompressed payload.
	MessageDomainValidSnappy = [4]byte{0x01, 0x00, 0x00, 0x00}
	// MessageDomainInvalidSnappy prefixes the hash input of ids derived from
	// raw data that failed decompression.
	MessageDomainInvalidSnappy = [4]byte{0x00, 0x00, 0x00, 0x00}
)

// MaxGossipMaxSize is the first size a snappy block can no longer describe.
const MaxGossipMaxSize datasize.ByteSize = 0xffffffff

// NetworkConfig holds the tunable gossip parameters of a network. The message
// domains above are protocol constants and are not part of it.
type NetworkConfig struct {
	GossipMaxSize      datasize.ByteSize // Maximum allowed size of a decompressed gossip message.
	SeenTTL            time.Duration     // How long a fast message id is remembered.
	FastMsgIDCacheSize int               // Number of fast id -> message id mappings kept around.
}

var NetworkConfigs = map[NetworkType]NetworkConfig{
	MainnetNetwork: {
		GossipMaxSize:      10 * datasize.MB,
		SeenTTL:            12 * 32 * 2 * time.Second,
		FastMsgIDCacheSize: 1 << 14,
	},
	SepoliaNetwork: {
		GossipMaxSize:      10 * datasize.MB,
		SeenTTL:            12 * 32 * 2 * time.Second,
		FastMsgIDCacheSize: 1 << 14,
	},
	HoleskyNetwork: {
		GossipMaxSize:      10 * datasize.MB,
		SeenTTL:            12 * 32 * 2 * time.Second,
		FastMsgIDCacheSize: 1 << 14,
	},
	MinimalNetwork: {
		GossipMaxSize:      1 * datasize.MB,
		SeenTTL:            6 * 8 * 2 * time.Second,
		FastMsgIDCacheSize: 1 << 10,
	},
}

// GetNetworkConfigByName returns a copy of the built-in config for the given network.
func GetNetworkConfigByName(name string) (*NetworkConfig, error) {
	cfg, ok := NetworkConfigs[NetworkType(strings.ToLower(name))]
	if !ok {
		return nil, fmt.Errorf("unknown network %q", name)
	}
	return &cfg, nil
}

// networkConfigFile is the on-disk representation. Every field is optional and
// falls back to the base network.
type networkConfigFile struct {
	Network            string             `yaml:"network" toml:"network"`
	GossipMaxSize      *datasize.ByteSize `yaml:"gossip_max_size" toml:"gossip_max_size"`
	SeenTTLSeconds     *uint64            `yaml:"seen_ttl_seconds" toml:"seen_ttl_seconds"`
	FastMsgIDCacheSize *int               `yaml:"fast_msg_id_cache_size" toml:"fast_msg_id_cache_size"`
}

// LoadNetworkConfig reads a YAML (.yaml/.yml) or TOML (.toml) file.
func LoadNetworkConfig(path string) (*NetworkConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var file networkConfigFile
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	case ".toml":
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&file); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("unsupported config file extension %q", ext)
	}
	return file.apply()
}

func (f *networkConfigFile) apply() (*NetworkConfig, error) {
	network := f.Network
	if network == "" {
		network = string(MainnetNetwork)
	}
	cfg, err := GetNetworkConfigByName(network)
	if err != nil {
		return nil, err
	}
	if f.GossipMaxSize != nil {
		cfg.GossipMaxSize = *f.GossipMaxSize
	}
	if f.SeenTTLSeconds != nil {
		cfg.SeenTTL = time.Duration(*f.SeenTTLSeconds) * time.Second
	}
	if f.FastMsgIDCacheSize != nil {
		cfg.FastMsgIDCacheSize = *f.FastMsgIDCacheSize
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *NetworkConfig) Validate() error {
	if c.GossipMaxSize == 0 {
		return errors.New("gossip_max_size must be positive")
	}
	if c.GossipMaxSize >= MaxGossipMaxSize {
		return fmt.Errorf("gossip_max_size %s exceeds the snappy block limit %s", c.GossipMaxSize.HR(), MaxGossipMaxSize.HR())
	}
	if c.FastMsgIDCacheSize <= 0 {
		return errors.New("fast_msg_id_cache_size must be positive")
	}
	if c.SeenTTL <= 0 {
		return errors.New("seen_ttl_seconds must be positive")
	}
	return nil
}
