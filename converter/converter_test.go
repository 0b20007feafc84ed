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

package converter

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/golang/mock/gomock"
	json "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vine-io/bpmn/api"
	"github.com/vine-io/bpmn/bpmn"
	"github.com/vine-io/bpmn/diagram"
	"github.com/vine-io/bpmn/diagram/mock"
)

func loadDefinitions(t *testing.T, name string) *bpmn.Definitions {
	t.Helper()
	data, err := os.ReadFile("../testdata/" + name)
	require.NoError(t, err)
	d, err := bpmn.FromBytes(data)
	require.NoError(t, err)
	return d
}

func childIDs(shape *diagram.Shape) []string {
	ids := make([]string, 0, len(shape.ChildShapes))
	for _, child := range shape.ChildShapes {
		ids = append(ids, child.ResourceID)
	}
	return ids
}

func TestPlaneLookup(t *testing.T) {
	d := loadDefinitions(t, "compensation.bpmn")
	lookup := NewPlaneLookup(d)
	assert.Equal(t, 11, lookup.Len())

	bounds, err := lookup.Bounds("StartEvent_1")
	if assert.NoError(t, err) {
		assert.Equal(t, diagram.NewBounds(12.5, 102, 36, 36), bounds)
	}

	_, err = lookup.Bounds("Flow_1")
	assert.True(t, api.IsCode(err, api.StatusNotFound))

	assert.Equal(t, 0, NewPlaneLookup(nil).Len())
}

func TestConverter_Convert(t *testing.T) {
	d := loadDefinitions(t, "compensation.bpmn")

	c, err := New(WithPoolSize(2))
	require.NoError(t, err)
	defer c.Release()

	canvas, err := c.Convert(context.TODO(), d)
	if !assert.NoError(t, err) {
		return
	}

	assert.Equal(t, CanvasStencil, canvas.Stencil)
	assert.Equal(t, "Definitions_1", canvas.GetProperty("name"))
	assert.Equal(t, []string{
		"StartEvent_1", "Task_Book", "Gateway_1", "EndEvent_1", "ThrowEvent_Comp",
		"EndEvent_2", "Boundary_Comp", "Boundary_Err", "Task_Undo", "Task_Undo2",
	}, childIDs(canvas))

	gw, ok := canvas.Child("Gateway_1")
	if assert.True(t, ok) {
		assert.Equal(t, []string{"EndEvent_1", "ThrowEvent_Comp"}, gw.OutgoingIDs())
		assert.Equal(t, "Flow_4", gw.GetProperty("default"))
	}
	comp, ok := canvas.Child("Boundary_Comp")
	if assert.True(t, ok) {
		assert.Equal(t, []string{"Task_Undo"}, comp.OutgoingIDs())
	}
	errBoundary, _ := canvas.Child("Boundary_Err")
	assert.Empty(t, errBoundary.OutgoingIDs())

	stats := c.Stats()
	assert.Equal(t, int64(1), stats.Processes)
	assert.Equal(t, int64(10), stats.Shapes)
	assert.Equal(t, int64(0), stats.Failed)

	data, err := json.Marshal(canvas)
	if assert.NoError(t, err) {
		assert.Equal(t, CanvasStencil, json.Get(data, "stencil", "id").ToString())
		assert.Equal(t, 10, json.Get(data, "childShapes").Size())
		assert.Equal(t, "Task_Undo", json.Get(data, "childShapes", 6, "outgoing", 0, "resourceId").ToString())
	}
}

func TestConverter_MissingShapes(t *testing.T) {
	d := loadDefinitions(t, "collaboration.bpmn")

	c, err := New()
	require.NoError(t, err)
	defer c.Release()

	_, err = c.Convert(context.TODO(), d)
	assert.True(t, api.IsCode(err, api.StatusNotFound))
	assert.Equal(t, int64(1), c.Stats().Failed)

	skipping, err := New(WithSkipMissing(true), WithPoolSize(0))
	require.NoError(t, err)
	defer skipping.Release()

	canvas, err := skipping.Convert(context.TODO(), d)
	if assert.NoError(t, err) {
		assert.Empty(t, canvas.ChildShapes)
	}
	stats := skipping.Stats()
	assert.Equal(t, int64(2), stats.Processes)
	assert.Equal(t, int64(10), stats.Skipped)
}

func TestConverter_LookupError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	d := loadDefinitions(t, "collaboration.bpmn")
	lookupErr := api.InternalServerError("renderer unavailable")

	lookup := mock.NewMockShapeCoordinateLookup(ctrl)
	lookup.EXPECT().Bounds(gomock.Any()).DoAndReturn(func(id string) (diagram.Bounds, error) {
		if id == "Task_Bill" {
			return diagram.Bounds{}, lookupErr
		}
		return diagram.NewBounds(0, 0, 100, 80), nil
	}).AnyTimes()

	c, err := New(WithLookup(lookup), WithSkipMissing(true))
	require.NoError(t, err)
	defer c.Release()

	_, err = c.Convert(context.TODO(), d)
	assert.True(t, errors.Is(err, lookupErr))
	assert.Equal(t, int64(0), c.Stats().Skipped)
}

func TestConverter_Cancel(t *testing.T) {
	d := loadDefinitions(t, "compensation.bpmn")

	c, err := New()
	require.NoError(t, err)
	defer c.Release()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = c.Convert(ctx, d)
	assert.True(t, errors.Is(err, context.Canceled))

	_, err = c.Convert(context.TODO(), nil)
	assert.True(t, api.IsCode(err, api.StatusBadRequest))
}

func TestConverter_Released(t *testing.T) {
	d := loadDefinitions(t, "compensation.bpmn")

	c, err := New()
	require.NoError(t, err)
	c.Release()

	_, err = c.Convert(context.TODO(), d)
	require.Error(t, err)
	assert.True(t, api.IsCode(err, api.StatusInternalServerError))
	assert.Contains(t, api.FromErr(err).Caller, "converter.go")
	assert.Equal(t, int64(1), c.Stats().Failed)
}
