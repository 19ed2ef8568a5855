//go:build !ebiten

package ui

import "image"

// Overlay is a no-op placeholder used when the ebiten build tag is absent.
type Overlay struct{}

// NewOverlay constructs a stub overlay.
func NewOverlay(image.Rectangle) *Overlay { return &Overlay{} }

// SetVisible is a no-op in headless builds.
func (o *Overlay) SetVisible(bool) {}

// Update never activates the button in headless builds.
func (o *Overlay) Update() bool { return false }

// Draw is a no-op placeholder.
func (o *Overlay) Draw(any) {}
