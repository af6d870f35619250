// Copyright (c) 2025 Jeremy Hahn
// Copyright (c) 2025 Automate The Things, LLC
//
// This file is part of go-attest.
//
// go-attest is dual-licensed:
//
// 1. GNU Affero General Public License v3.0 (AGPL-3.0)
//    See LICENSE file or visit https://www.gnu.org/licenses/agpl-3.0.html
//
// 2. Commercial License
//    Contact licensing@automatethethings.com for commercial licensing options.

package logging

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDebugSuppressedByDefault(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, false)

	logger.Debugf("hidden %d", 1)
	assert.Empty(t, buf.String())

	logger.Infof("shown %d", 2)
	assert.Contains(t, buf.String(), "shown 2")
}

func TestDebugEnabled(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, true)

	logger.Debugf("key file is %s", "/tmp/private.pem")
	assert.Contains(t, buf.String(), "level=DEBUG")
	assert.Contains(t, buf.String(), "key file is /tmp/private.pem")
}

func TestWarnf(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, false)

	logger.Warnf("could not load certs from %s", "/missing.pem")
	assert.Contains(t, buf.String(), "level=WARN")
	assert.Contains(t, buf.String(), "/missing.pem")
}
