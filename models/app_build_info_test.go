// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppBuildInfo_MarshalJSON(t *testing.T) {
	info := NewAppBuildInfo("1.0.0", "", "abc123")

	b, err := json.Marshal(info)
	require.NoError(t, err)

	assert.JSONEq(t, `{"version":"1.0.0","date":"N/A","commit":"abc123"}`, string(b))
	assert.Equal(t, "N/A", info.BuildDate())
}
