// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package logger

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetupLevels(t *testing.T) {
	var buf bytes.Buffer
	restore := Setup(Config{Writer: &buf})
	L().Debug("hidden")
	L().Info("shown", "k", "v")
	restore()

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
	assert.Contains(t, buf.String(), "k=v")

	buf.Reset()
	restore = Setup(Config{Writer: &buf, Debug: true})
	L().Debug("visible")
	restore()
	assert.Contains(t, buf.String(), "visible")

	buf.Reset()
	L().Info("after restore")
	assert.Empty(t, buf.String())
}
