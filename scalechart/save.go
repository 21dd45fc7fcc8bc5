// Copyright 2024 The Scaleplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scalechart

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
	"gonum.org/v1/plot/vg/vgpdf"
	"gonum.org/v1/plot/vg/vgsvg"

	"github.com/hpctools/scaleplot/scalefmt"
)

// Save renders p to name+"."+ext and returns the path written. Any
// directory embedded in name is created first. The format is chosen
// by ext: png, pdf, or svg.
func Save(p *plot.Plot, name, ext string, cfg Config) (string, error) {
	w := cfg.width()
	h := w * 3 / 4

	var can vg.CanvasWriterTo
	switch strings.ToLower(ext) {
	case "png":
		can = vgimg.PngCanvas{Canvas: vgimg.NewWith(
			vgimg.UseWH(w, h),
			vgimg.UseBackgroundColor(cfg.Style.Background),
		)}
	case "pdf":
		can = vgpdf.New(w, h)
	case "svg":
		can = vgsvg.New(w, h)
	default:
		return "", scalefmt.Configf("unsupported file extension %q (want png, pdf, or svg)", ext)
	}

	dc := draw.New(can)
	if !cfg.Tight {
		pad := vg.Points(10)
		dc = draw.Crop(dc, pad, -pad, pad, -pad)
	}
	p.Draw(dc)

	path := name + "." + ext
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0777); err != nil {
			return "", err
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	if _, err := can.WriteTo(f); err != nil {
		f.Close()
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return "", err
	}
	return path, nil
}

// Window renders p to a temporary PNG and opens it in the platform
// image viewer, waiting for the viewer to return.
func Window(p *plot.Plot, name string, cfg Config) error {
	dir, err := os.MkdirTemp("", "scaleplot")
	if err != nil {
		return err
	}
	path, err := Save(p, filepath.Join(dir, name), "png", cfg)
	if err != nil {
		return err
	}

	var viewer string
	switch runtime.GOOS {
	case "darwin":
		viewer = "open"
	case "windows":
		viewer = "explorer"
	default:
		viewer = "xdg-open"
	}
	cmd := exec.Command(viewer, path)
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("display %s: %w", path, err)
	}
	return nil
}
