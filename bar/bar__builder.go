package bar

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/edgebar/edgebar/common"
)

type newBarOptions struct {
	Name          string
	Surface       Surface
	Margins       Margins
	Background    common.Color
	Transparent   bool
	ReverseScroll bool
	IPCEnabled    bool
	IPCRequests   <-chan IPCRequest
	Log           *logrus.Logger
}

// NewBarOption customizes a Bar built by NewBar.
type NewBarOption func(*newBarOptions)

// NameOpt sets the bar's name. The bar only stores it; the IPC socket path
// is derived from the name by the caller that creates the listener.
func NameOpt(name string) NewBarOption {
	return func(o *newBarOptions) { o.Name = name }
}

// SurfaceOpt sets the drawing surface the bar composites onto. Required.
func SurfaceOpt(s Surface) NewBarOption {
	return func(o *newBarOptions) { o.Surface = s }
}

// MarginsOpt sets the left/right/internal layout margins.
func MarginsOpt(m Margins) NewBarOption {
	return func(o *newBarOptions) { o.Margins = m }
}

// BackgroundOpt sets the bar's background color.
func BackgroundOpt(c common.Color) NewBarOption {
	return func(o *newBarOptions) { o.Background = c }
}

// TransparentOpt sets whether the bar was created with a translucent
// background.
func TransparentOpt(transparent bool) NewBarOption {
	return func(o *newBarOptions) { o.Transparent = transparent }
}

// ReverseScrollOpt sets whether scroll-wheel button mapping is reversed.
func ReverseScrollOpt(reverse bool) NewBarOption {
	return func(o *newBarOptions) { o.ReverseScroll = reverse }
}

// IPCOpt wires the channel of accepted IPC requests into the bar's
// multiplexer. Pass a nil channel to run with IPC disabled.
func IPCOpt(requests <-chan IPCRequest) NewBarOption {
	return func(o *newBarOptions) {
		o.IPCEnabled = requests != nil
		o.IPCRequests = requests
	}
}

// LogOpt sets the logger the bar and its repaint/event machinery write to.
// Defaults to logrus.StandardLogger() if omitted.
func LogOpt(log *logrus.Logger) NewBarOption {
	return func(o *newBarOptions) { o.Log = log }
}

// NewBar constructs a Bar over an already-created Surface, publishes the
// process-wide Info snapshot, and wires the stream multiplexer. The window
// is expected to already be mapped; NewBar does not call Map itself.
func NewBar(options ...NewBarOption) (*Bar, error) {
	opts := &newBarOptions{
		Log: logrus.StandardLogger(),
	}
	for _, opt := range options {
		opt(opts)
	}

	if opts.Surface == nil {
		return nil, errors.New("bar: SurfaceOpt is required")
	}

	width := opts.Surface.Width()
	height := opts.Surface.Height()

	PublishInfo(Info{
		Width:       width,
		Height:      height,
		Background:  opts.Background,
		Transparent: opts.Transparent,
	})

	b := &Bar{
		name:          opts.Name,
		surface:       opts.Surface,
		width:         width,
		height:        height,
		bg:            opts.Background,
		margins:       opts.Margins,
		reverseScroll: opts.ReverseScroll,
		ipcEnabled:    opts.IPCEnabled,
		log:           opts.Log,
		mapped:        true,
		centerState:   CenterStateCenter,
		ext: extents{
			left:         opts.Margins.Left,
			centerStart:  width / 2,
			centerCursor: width / 2,
			right:        width,
		},
	}
	b.mux = NewMultiplexer(opts.Surface.Events(), opts.IPCRequests)

	return b, nil
}

// RegisterPanelStream wires a panel's asynchronous update stream into the
// bar's multiplexer. region/index must match the slot AddPanel returned.
func (b *Bar) RegisterPanelStream(ctx context.Context, region Region, index int, stream <-chan *DrawInfo) {
	b.mux.Register(ctx, region, index, stream)
}
