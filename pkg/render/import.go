package render

import (
	"encoding/xml"
	"io"
	"strconv"
	"strings"

	"github.com/darasoba/iconset-builder/pkg/errors"
	"github.com/darasoba/iconset-builder/pkg/geom"
	"github.com/darasoba/iconset-builder/pkg/scene"
)

// svgElem is a permissive view of an SVG element tree. Unknown elements
// and attributes pass through untouched and are skipped during conversion.
type svgElem struct {
	XMLName xml.Name

	ViewBox string `xml:"viewBox,attr"`
	Width   string `xml:"width,attr"`
	Height  string `xml:"height,attr"`

	D      string `xml:"d,attr"`
	X      string `xml:"x,attr"`
	Y      string `xml:"y,attr"`
	RX     string `xml:"rx,attr"`
	CX     string `xml:"cx,attr"`
	CY     string `xml:"cy,attr"`
	R      string `xml:"r,attr"`
	RYAttr string `xml:"ry,attr"`
	Points string `xml:"points,attr"`
	X1     string `xml:"x1,attr"`
	Y1     string `xml:"y1,attr"`
	X2     string `xml:"x2,attr"`
	Y2     string `xml:"y2,attr"`
	Fill   string `xml:"fill,attr"`
	Stroke string `xml:"stroke,attr"`
	SWidth string `xml:"stroke-width,attr"`

	Children []svgElem `xml:",any"`
}

// ImportSVG parses SVG bytes into a frame holding one scene node per
// supported element (path, rect, circle, ellipse, polygon, polyline, line).
// Unsupported elements are skipped; paths with arc commands are rejected.
func ImportSVG(r io.Reader, name string) (*scene.Frame, error) {
	var root svgElem
	if err := xml.NewDecoder(r).Decode(&root); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "parse svg")
	}
	if root.XMLName.Local != "svg" {
		return nil, errors.New(errors.ErrCodeInvalidFormat, "root element is not <svg>")
	}

	w, h, err := svgDimensions(root)
	if err != nil {
		return nil, err
	}

	frame := scene.NewFrame(name, w, h)
	frame.Fills = []scene.Paint{}

	var walk func(el svgElem) error
	walk = func(el svgElem) error {
		for _, c := range el.Children {
			n, err := convertElem(c)
			if err != nil {
				return err
			}
			if n != nil {
				frame.AppendChild(n)
			}
			if c.XMLName.Local == "g" || c.XMLName.Local == "svg" {
				if err := walk(c); err != nil {
					return err
				}
			}
		}
		return nil
	}
	if err := walk(root); err != nil {
		return nil, err
	}

	if len(frame.Children()) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidFormat, "svg contains no supported geometry")
	}
	return frame, nil
}

// svgDimensions resolves the canvas size from viewBox or width/height.
func svgDimensions(root svgElem) (float64, float64, error) {
	if root.ViewBox != "" {
		fields := strings.Fields(strings.ReplaceAll(root.ViewBox, ",", " "))
		if len(fields) == 4 {
			w, errW := strconv.ParseFloat(fields[2], 64)
			h, errH := strconv.ParseFloat(fields[3], 64)
			if errW == nil && errH == nil && w > 0 && h > 0 {
				return w, h, nil
			}
		}
		return 0, 0, errors.New(errors.ErrCodeInvalidFormat, "malformed viewBox")
	}

	w := attrFloat(root.Width, 0)
	h := attrFloat(root.Height, 0)
	if w <= 0 || h <= 0 {
		return 0, 0, errors.New(errors.ErrCodeInvalidFormat, "svg has no viewBox or width/height")
	}
	return w, h, nil
}

// convertElem maps one SVG element to a scene node, or nil to skip it.
func convertElem(el svgElem) (scene.Node, error) {
	switch el.XMLName.Local {
	case "path":
		return convertPath(el)
	case "rect":
		r := scene.NewRectangle("rect", attrFloat(el.Width, 0), attrFloat(el.Height, 0))
		r.CornerRadius = attrFloat(el.RX, 0)
		r.SetPosition(attrFloat(el.X, 0), attrFloat(el.Y, 0))
		applyStroke(r, el)
		return r, nil
	case "circle":
		rad := attrFloat(el.R, 0)
		c := scene.NewEllipse("circle", 2*rad, 2*rad)
		c.SetPosition(attrFloat(el.CX, 0)-rad, attrFloat(el.CY, 0)-rad)
		applyStroke(c, el)
		return c, nil
	case "ellipse":
		rx := attrFloat(el.RX, 0)
		ry := attrFloat(el.RYAttr, rx)
		e := scene.NewEllipse("ellipse", 2*rx, 2*ry)
		e.SetPosition(attrFloat(el.CX, 0)-rx, attrFloat(el.CY, 0)-ry)
		applyStroke(e, el)
		return e, nil
	case "polygon", "polyline":
		return convertPoly(el)
	case "line":
		x1, y1 := attrFloat(el.X1, 0), attrFloat(el.Y1, 0)
		x2, y2 := attrFloat(el.X2, 0), attrFloat(el.Y2, 0)
		var p geom.Path
		p.Move(geom.Point{X: x1, Y: y1})
		p.Line(geom.Point{X: x2, Y: y2})
		b := p.Bounds()
		p = p.Transformed(geom.Translate(-b.MinX, -b.MinY))
		v := scene.NewVector("line", p)
		v.SetPosition(b.MinX, b.MinY)
		v.Filled = false
		v.EnableStroke(attrFloat(el.SWidth, 1))
		return v, nil
	default:
		return nil, nil
	}
}

func convertPath(el svgElem) (scene.Node, error) {
	if el.D == "" {
		return nil, nil
	}
	p, err := geom.ParsePath(el.D)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "path data")
	}

	// Re-origin the geometry so the node's position carries the offset.
	b := p.Bounds()
	p = p.Transformed(geom.Translate(-b.MinX, -b.MinY))

	v := scene.NewVector("path", p)
	v.SetPosition(b.MinX, b.MinY)
	v.Filled = el.Fill != "none"
	applyStroke(v, el)
	return v, nil
}

func convertPoly(el svgElem) (scene.Node, error) {
	fields := strings.Fields(strings.ReplaceAll(el.Points, ",", " "))
	if len(fields) < 4 || len(fields)%2 != 0 {
		return nil, errors.New(errors.ErrCodeInvalidFormat, "malformed points attribute")
	}

	var p geom.Path
	for i := 0; i < len(fields); i += 2 {
		x, errX := strconv.ParseFloat(fields[i], 64)
		y, errY := strconv.ParseFloat(fields[i+1], 64)
		if errX != nil || errY != nil {
			return nil, errors.New(errors.ErrCodeInvalidFormat, "malformed points attribute")
		}
		if i == 0 {
			p.Move(geom.Point{X: x, Y: y})
		} else {
			p.Line(geom.Point{X: x, Y: y})
		}
	}
	if el.XMLName.Local == "polygon" {
		p.Close()
	}

	b := p.Bounds()
	p = p.Transformed(geom.Translate(-b.MinX, -b.MinY))
	v := scene.NewVector(el.XMLName.Local, p)
	v.SetPosition(b.MinX, b.MinY)
	v.Filled = el.XMLName.Local == "polygon" && el.Fill != "none"
	applyStroke(v, el)
	return v, nil
}

// strokeEnabler is satisfied by shapes that can switch on stroking.
type strokeEnabler interface {
	EnableStroke(weight float64)
}

// applyStroke enables stroking when the element declares a stroke color.
func applyStroke(n scene.Node, el svgElem) {
	if el.Stroke == "" || el.Stroke == "none" {
		return
	}
	if s, ok := n.(strokeEnabler); ok {
		s.EnableStroke(attrFloat(el.SWidth, 1))
	}
}

// attrFloat parses a numeric attribute, tolerating a px suffix.
func attrFloat(s string, def float64) float64 {
	s = strings.TrimSuffix(strings.TrimSpace(s), "px")
	if s == "" {
		return def
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return def
	}
	return v
}
