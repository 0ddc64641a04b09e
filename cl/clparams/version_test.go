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
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStateVersionRoundTrip(t *testing.T) {
	for v := Phase0Version; v <= ElectraVersion; v++ {
		parsed, err := StringToClVersion(ClVersionToString(v))
		require.NoError(t, err)
		require.Equal(t, v, parsed)
	}
	_, err := StringToClVersion("fulu")
	require.Error(t, err)
	require.Equal(t, "unknown(42)", StateVersion(42).String())
}

func TestStateVersionOrdering(t *testing.T) {
	require.True(t, BellatrixVersion.AfterOrEqual(AltairVersion))
	require.True(t, AltairVersion.AfterOrEqual(AltairVersion))
	require.True(t, Phase0Version.Before(AltairVersion))
	require.False(t, DenebVersion.Before(CapellaVersion))
	require.False(t, LatestStateVersion.Before(ElectraVersion))
	require.True(t, LatestStateVersion.Before(StateVersion(6)))
}
