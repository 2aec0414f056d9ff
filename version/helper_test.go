// Copyright Elasticsearch B.V. and/or licensed to Elasticsearch B.V. under one
// or more contributor license agreements. Licensed under the Elastic License 2.0;
// you may not use this file except in compliance with the Elastic License 2.0.

package version

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGetDefaultVersion(t *testing.T) {
	assert.Equal(t, defaultVersion, GetDefaultVersion())

	qualifier = "rc1"
	t.Cleanup(func() { qualifier = "" })
	assert.Equal(t, defaultVersion+"-rc1", GetDefaultVersion())
}

func TestBuildTime(t *testing.T) {
	assert.True(t, BuildTime().IsZero(), "unparsable build time must map to zero time")

	orig := buildTime
	t.Cleanup(func() { buildTime = orig })
	buildTime = "2024-06-01T12:00:00Z"
	assert.Equal(t, time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC), BuildTime())
}

func TestCommit(t *testing.T) {
	assert.Equal(t, "unknown", Commit())
}
