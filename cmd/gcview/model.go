package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/gekko3d/gcview"
	"github.com/gekko3d/gcview/core"
)

// parseBounds reads "minx,miny,minz,maxx,maxy,maxz".
func parseBounds(s string) (core.Bounds, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 6 {
		return core.Bounds{}, fmt.Errorf("bounds: want 6 comma separated numbers, got %d", len(parts))
	}
	var v [6]float64
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return core.Bounds{}, fmt.Errorf("bounds: %w", err)
		}
		v[i] = f
	}
	b := core.Bounds{Min: mgl64.Vec3{v[0], v[1], v[2]}, Max: mgl64.Vec3{v[3], v[4], v[5]}}
	if b.Max[0] < b.Min[0] || b.Max[1] < b.Min[1] || b.Max[2] < b.Min[2] {
		return core.Bounds{}, fmt.Errorf("bounds: min %v exceeds max %v", b.Min, b.Max)
	}
	return b, nil
}

// modelFromFlags builds the model notification a loader would send.
// ok is false when no model was described.
func modelFromFlags(layers int, bounds string) (gcview.ModelInfo, bool, error) {
	if layers == 0 && bounds == "" {
		return gcview.ModelInfo{}, false, nil
	}
	if layers < 0 {
		return gcview.ModelInfo{}, false, fmt.Errorf("layers: must not be negative, got %d", layers)
	}
	info := gcview.ModelInfo{Layers: layers}
	if bounds != "" {
		b, err := parseBounds(bounds)
		if err != nil {
			return gcview.ModelInfo{}, false, err
		}
		info.Bounds = b
	}
	return info, true, nil
}
