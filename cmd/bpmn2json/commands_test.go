// MIT License
//
// Copyright (c) 2023 Lack
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	json "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vine-io/bpmn/api"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cfg := writeConfig(t, "logLevel: error\n")

	cmd := newRootCmd()
	out := bytes.NewBuffer(nil)
	cmd.SetOut(out)
	cmd.SetErr(bytes.NewBuffer(nil))
	cmd.SetArgs(append([]string{"--config", cfg}, args...))

	err := cmd.Execute()
	return out.String(), err
}

func TestConvert(t *testing.T) {
	out, err := run(t, "convert", "../../testdata/compensation.bpmn")
	require.NoError(t, err)

	data := []byte(out)
	assert.Equal(t, "BPMNDiagram", json.Get(data, "stencil", "id").ToString())
	assert.Equal(t, 10, json.Get(data, "childShapes").Size())
	assert.Equal(t, "Task_Book", json.Get(data, "childShapes", 0, "outgoing", 0, "resourceId").ToString())
}

func TestConvert_Output(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")

	out, err := run(t, "convert", "-o", path, "--indent", "0", "../../testdata/compensation.bpmn")
	require.NoError(t, err)
	assert.Empty(t, out)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.False(t, strings.Contains(string(data), "\n"))
	assert.Equal(t, 10, json.Get(data, "childShapes").Size())
}

func TestConvert_MissingShapes(t *testing.T) {
	_, err := run(t, "convert", "../../testdata/collaboration.bpmn")
	if assert.Error(t, err) {
		assert.True(t, api.IsCode(err, api.StatusNotFound))
	}

	out, err := run(t, "convert", "--skip-missing", "--pool-size", "1", "../../testdata/collaboration.bpmn")
	require.NoError(t, err)
	assert.Equal(t, 0, json.Get([]byte(out), "childShapes").Size())
}

func TestFormat(t *testing.T) {
	out, err := run(t, "format", "../../testdata/collaboration.bpmn")
	require.NoError(t, err)
	assert.Contains(t, out, "<bpmn:definitions")
	assert.Contains(t, out, "<bpmn:messageFlow")
	assert.NotContains(t, out, "laneSet")

	_, err = run(t, "format", "--strict", "../../testdata/collaboration.bpmn")
	if assert.Error(t, err) {
		assert.True(t, api.IsCode(err, api.StatusNotImplemented))
	}
}

func TestValidate(t *testing.T) {
	out, err := run(t, "validate", "../../testdata/compensation.bpmn")
	require.NoError(t, err)
	assert.Equal(t, "../../testdata/compensation.bpmn is valid\n", out)

	_, err = run(t, "validate", "../../testdata/missing.bpmn")
	assert.Error(t, err)

	_, err = run(t, "validate", "--log-level", "loud", "../../testdata/compensation.bpmn")
	assert.Error(t, err)
}
