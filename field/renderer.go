package field

import (
	"fmt"

	"github.com/lixenwraith/particlefield/parameter"
	"github.com/lixenwraith/particlefield/render"
)

// Renderer paints one frame of particle state onto a surface, it never mutates particles
type Renderer struct {
	slow, medium, fast render.RGB
	connection         render.RGB
	background         render.RGB
	opaque             bool
	palette            []render.RGB

	stops [3]render.GradientStop
}

// NewRenderer resolves the hex colors of cfg
func NewRenderer(cfg *Config) (*Renderer, error) {
	r := &Renderer{}
	var err error
	if r.slow, err = render.ParseColor(cfg.Colors.Slow); err != nil {
		return nil, fmt.Errorf("slow color: %w", err)
	}
	if r.medium, err = render.ParseColor(cfg.Colors.Medium); err != nil {
		return nil, fmt.Errorf("medium color: %w", err)
	}
	if r.fast, err = render.ParseColor(cfg.Colors.Fast); err != nil {
		return nil, fmt.Errorf("fast color: %w", err)
	}
	if r.connection, err = render.ParseColor(cfg.Colors.Connection); err != nil {
		return nil, fmt.Errorf("connection color: %w", err)
	}
	if cfg.Colors.Background != "" {
		if r.background, err = render.ParseColor(cfg.Colors.Background); err != nil {
			return nil, fmt.Errorf("background color: %w", err)
		}
		r.opaque = true
	}
	r.palette = make([]render.RGB, 0, len(cfg.Colors.Palette))
	for _, hex := range cfg.Colors.Palette {
		c, err := render.ParseColor(hex)
		if err != nil {
			return nil, fmt.Errorf("palette color: %w", err)
		}
		r.palette = append(r.palette, c)
	}
	return r, nil
}

// Render clears the surface (and paints the opaque background if set), then draws links, then bodies (glow first when enabled)
// A zero-size surface yields a blank frame
func (r *Renderer) Render(s render.Surface, ps []Particle, links []Link, cfg *Config) {
	w, h := s.Size()
	if w <= 0 || h <= 0 {
		return
	}

	s.Clear()
	if r.opaque {
		s.FillRect(0, 0, float64(w), float64(h), r.background, 1)
	}

	if cfg.Connections {
		for _, l := range links {
			alpha := LinkOpacity(l.Dist, cfg.ConnectionDistance) * cfg.Colors.ConnectionAlpha
			if alpha <= 0 {
				continue
			}
			a, b := ps[l.A].Pos, ps[l.B].Pos
			s.StrokeLine(a.X, a.Y, b.X, b.Y, parameter.ConnectionLineWidth, r.connection, alpha)
		}
	}

	for i := range ps {
		p := &ps[i]
		col := r.ParticleColor(p, cfg)
		alpha := ParticleAlpha(p.Connections)

		if cfg.Glow {
			r.stops[0] = render.GradientStop{Offset: 0, Color: render.LerpLab(col, render.RGBWhite, 0.25), Alpha: alpha * parameter.GlowAlpha}
			r.stops[1] = render.GradientStop{Offset: 0.4, Color: col, Alpha: alpha * parameter.GlowAlpha * 0.5}
			r.stops[2] = render.GradientStop{Offset: 1, Color: col, Alpha: 0}
			s.FillRadialGradient(p.Pos.X, p.Pos.Y, p.Radius*cfg.GlowScale, r.stops[:])
		}
		s.FillCircle(p.Pos.X, p.Pos.Y, p.Radius, col, alpha)
	}
}

// ParticleColor selects the body color by palette or speed bucket
func (r *Renderer) ParticleColor(p *Particle, cfg *Config) render.RGB {
	if cfg.ColorMode == ColorPalette && len(r.palette) > 0 {
		return r.palette[p.ID%len(r.palette)]
	}
	ratio := 0.0
	if cfg.MaxSpeed > 0 {
		ratio = p.Speed / cfg.MaxSpeed
	}
	switch {
	case ratio < parameter.SpeedRatioMedium:
		return r.slow
	case ratio < parameter.SpeedRatioFast:
		return r.medium
	default:
		return r.fast
	}
}

// LinkOpacity is the linear fade 1 - d/maxDistance, zero at or beyond maxDistance
func LinkOpacity(d, maxDistance float64) float64 {
	if maxDistance <= 0 || d >= maxDistance {
		return 0
	}
	return 1 - d/maxDistance
}

// ParticleAlpha grows with connection count, capped at full opacity
func ParticleAlpha(connections int) float64 {
	return min(1, parameter.ParticleBaseAlpha+float64(connections)*parameter.ParticleAlphaPerConnection)
}
