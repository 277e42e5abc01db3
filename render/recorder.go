package render

// OpKind identifies a recorded drawing call
type OpKind uint8

const (
	OpClear OpKind = iota
	OpFillRect
	OpStrokeLine
	OpFillCircle
	OpRadialGradient
)

// Op is a single recorded drawing call
// Field use depends on Kind: rects use X0,Y0 as origin and X1,Y1 as size,
// circles and gradients use X0,Y0 as centre and R as radius
type Op struct {
	Kind   OpKind
	X0, Y0 float64
	X1, Y1 float64
	R      float64
	Width  float64
	Color  RGB
	Alpha  float64
	Stops  []GradientStop
}

// Recorder is a display-list Surface
// Hosts that own their own draw callback record a frame and replay it later
type Recorder struct {
	width, height int
	ops           []Op
}

// NewRecorder creates a recorder reporting the given size
func NewRecorder(width, height int) *Recorder {
	return &Recorder{width: width, height: height}
}

// Resize changes the reported size and drops the recorded ops, as Canvas.Resize clears
func (r *Recorder) Resize(width, height int) {
	r.width, r.height = width, height
	r.ops = r.ops[:0]
}

// Size implements Surface
func (r *Recorder) Size() (int, int) {
	return r.width, r.height
}

// Clear implements Surface, it also drops previously recorded ops
func (r *Recorder) Clear() {
	r.ops = r.ops[:0]
	r.ops = append(r.ops, Op{Kind: OpClear})
}

func (r *Recorder) FillRect(x, y, w, h float64, c RGB, alpha float64) {
	r.ops = append(r.ops, Op{Kind: OpFillRect, X0: x, Y0: y, X1: w, Y1: h, Color: c, Alpha: alpha})
}

func (r *Recorder) StrokeLine(x0, y0, x1, y1, width float64, c RGB, alpha float64) {
	r.ops = append(r.ops, Op{Kind: OpStrokeLine, X0: x0, Y0: y0, X1: x1, Y1: y1, Width: width, Color: c, Alpha: alpha})
}

func (r *Recorder) FillCircle(cx, cy, radius float64, c RGB, alpha float64) {
	r.ops = append(r.ops, Op{Kind: OpFillCircle, X0: cx, Y0: cy, R: radius, Color: c, Alpha: alpha})
}

func (r *Recorder) FillRadialGradient(cx, cy, radius float64, stops []GradientStop) {
	// Stops are caller-owned scratch, keep a private copy
	cp := make([]GradientStop, len(stops))
	copy(cp, stops)
	r.ops = append(r.ops, Op{Kind: OpRadialGradient, X0: cx, Y0: cy, R: radius, Stops: cp})
}

// Ops returns the recorded calls since the last Clear
func (r *Recorder) Ops() []Op {
	return r.ops
}

// Count returns the number of recorded ops of kind k
func (r *Recorder) Count(k OpKind) int {
	n := 0
	for i := range r.ops {
		if r.ops[i].Kind == k {
			n++
		}
	}
	return n
}

// Replay issues the recorded calls against dst in order
func (r *Recorder) Replay(dst Surface) {
	for i := range r.ops {
		op := &r.ops[i]
		switch op.Kind {
		case OpClear:
			dst.Clear()
		case OpFillRect:
			dst.FillRect(op.X0, op.Y0, op.X1, op.Y1, op.Color, op.Alpha)
		case OpStrokeLine:
			dst.StrokeLine(op.X0, op.Y0, op.X1, op.Y1, op.Width, op.Color, op.Alpha)
		case OpFillCircle:
			dst.FillCircle(op.X0, op.Y0, op.R, op.Color, op.Alpha)
		case OpRadialGradient:
			dst.FillRadialGradient(op.X0, op.Y0, op.R, op.Stops)
		}
	}
}

// CopyFrom replaces the recorded ops with a copy of src's, used to hand a finished frame to a draw thread
func (r *Recorder) CopyFrom(src *Recorder) {
	r.width, r.height = src.width, src.height
	r.ops = append(r.ops[:0], src.ops...)
}
