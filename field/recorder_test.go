package field

import "image/color"

// op is one recorded drawing call
type op struct {
	kind       string // clear, fill, stroke, line, gradient
	x, y, r    float64
	x1, y1     float64
	width      float64
	color      color.NRGBA
	stopsCount int
}

// recorder is a Surface that remembers every call in order
type recorder struct {
	ops []op
}

func (r *recorder) Clear() { r.ops = append(r.ops, op{kind: "clear"}) }

func (r *recorder) FillCircle(x, y, rad float64, c color.NRGBA) {
	r.ops = append(r.ops, op{kind: "fill", x: x, y: y, r: rad, color: c})
}

func (r *recorder) StrokeCircle(x, y, rad, width float64, c color.NRGBA) {
	r.ops = append(r.ops, op{kind: "stroke", x: x, y: y, r: rad, width: width, color: c})
}

func (r *recorder) Line(x0, y0, x1, y1, width float64, c color.NRGBA) {
	r.ops = append(r.ops, op{kind: "line", x: x0, y: y0, x1: x1, y1: y1, width: width, color: c})
}

func (r *recorder) RadialGradient(x, y, rad float64, stops []GradientStop) {
	r.ops = append(r.ops, op{kind: "gradient", x: x, y: y, r: rad, stopsCount: len(stops)})
}

func (r *recorder) count(kind string) int {
	n := 0
	for _, o := range r.ops {
		if o.kind == kind {
			n++
		}
	}
	return n
}

func (r *recorder) reset() { r.ops = r.ops[:0] }
