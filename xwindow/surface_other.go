//go:build !linux
// +build !linux

package xwindow

import (
	"fmt"

	"github.com/edgebar/edgebar/bar"
	"github.com/edgebar/edgebar/common"
)

// Surface is an unusable stand-in on non-Linux platforms: this bar only
// ever runs against an X11 server.
type Surface struct{}

// New always fails on non-Linux platforms.
func New(name, monitor string, x, y, width, height int32, bg common.Color, transparent bool) (*Surface, error) {
	return nil, fmt.Errorf("xwindow: X11 is only supported on linux")
}

func (s *Surface) Width() int32                                  { return 0 }
func (s *Surface) Height() int32                                 { return 0 }
func (s *Surface) FillRect(x, y, w, h int32, c common.Color)      {}
func (s *Surface) DrawText(x, y int32, text string, c common.Color) {}
func (s *Surface) TextWidth(text string) int32                   { return 0 }
func (s *Surface) Flush()                                        {}
func (s *Surface) Map()                                          {}
func (s *Surface) Unmap()                                        {}
func (s *Surface) Events() <-chan bar.WindowEvent                { return nil }
func (s *Surface) Close() error                                  { return nil }

var _ bar.Surface = (*Surface)(nil)
