package eartist

import (
	"encoding/json"
	"fmt"

	"seehuhn.de/go/geom/vec"
)

// GenomeRecord is the serialised form of a [Genome].
// The field names are stable. Fitness is written when known and ignored
// when reading.
type GenomeRecord struct {
	Height     int           `json:"height"`
	Width      int           `json:"width"`
	Background ColorRecord   `json:"background"`
	Shapes     []ShapeRecord `json:"shapes"`
	Fitness    *float64      `json:"fitness,omitempty"`
}

// ShapeRecord holds one shape, tagged by its type name.
type ShapeRecord struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

// ColorRecord is the serialised form of a [Color].
type ColorRecord struct {
	R float64 `json:"r"`
	G float64 `json:"g"`
	B float64 `json:"b"`
	A float64 `json:"a"`
}

// PointRecord is the serialised form of a point; X is the row and Y the
// column.
type PointRecord struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type triangleData struct {
	P1    PointRecord `json:"p1"`
	P2    PointRecord `json:"p2"`
	P3    PointRecord `json:"p3"`
	Color ColorRecord `json:"color"`
}

type circleData struct {
	Center PointRecord `json:"center"`
	Radius float64     `json:"radius"`
	Color  ColorRecord `json:"color"`
}

type rectangleData struct {
	P1    PointRecord `json:"p1"`
	P2    PointRecord `json:"p2"`
	Color ColorRecord `json:"color"`
}

// Type tags used in shape records.
const (
	tagTriangle  = "Triangle"
	tagCircle    = "Circle"
	tagRectangle = "Rectangle"
)

// Record returns the serialisable state of g.
func (g *Genome) Record() (*GenomeRecord, error) {
	rec := &GenomeRecord{
		Height:     g.Height,
		Width:      g.Width,
		Background: colorRecord(g.Background),
		Shapes:     make([]ShapeRecord, 0, len(g.shapes)),
	}
	if g.valid {
		f := g.fitness
		rec.Fitness = &f
	}
	for _, s := range g.shapes {
		sr, err := shapeRecord(s)
		if err != nil {
			return nil, err
		}
		rec.Shapes = append(rec.Shapes, sr)
	}
	return rec, nil
}

// FromRecord reconstructs a genome. The fitness of the result is not
// computed.
func FromRecord(rec *GenomeRecord) (*Genome, error) {
	g := NewGenome(rec.Height, rec.Width, rec.Background.color())
	g.shapes = make([]Shape, 0, len(rec.Shapes))
	for i, sr := range rec.Shapes {
		s, err := sr.shape()
		if err != nil {
			return nil, fmt.Errorf("shape %d: %w", i, err)
		}
		g.shapes = append(g.shapes, s)
	}
	return g, nil
}

// MarshalJSON implements the [json.Marshaler] interface.
func (g *Genome) MarshalJSON() ([]byte, error) {
	rec, err := g.Record()
	if err != nil {
		return nil, err
	}
	return json.Marshal(rec)
}

// UnmarshalJSON implements the [json.Unmarshaler] interface.
func (g *Genome) UnmarshalJSON(data []byte) error {
	rec := &GenomeRecord{}
	if err := json.Unmarshal(data, rec); err != nil {
		return err
	}
	res, err := FromRecord(rec)
	if err != nil {
		return err
	}
	*g = *res
	return nil
}

func shapeRecord(s Shape) (ShapeRecord, error) {
	var tag string
	var data any
	switch s := s.(type) {
	case *Triangle:
		tag = tagTriangle
		data = triangleData{
			P1:    pointRecord(s.P1),
			P2:    pointRecord(s.P2),
			P3:    pointRecord(s.P3),
			Color: colorRecord(s.Color),
		}
	case *Circle:
		tag = tagCircle
		data = circleData{
			Center: pointRecord(s.Center),
			Radius: s.Radius,
			Color:  colorRecord(s.Color),
		}
	case *Rectangle:
		tag = tagRectangle
		data = rectangleData{
			P1:    pointRecord(s.P1),
			P2:    pointRecord(s.P2),
			Color: colorRecord(s.Color),
		}
	default:
		panic(fmt.Sprintf("eartist: cannot serialise shape of type %T", s))
	}
	raw, err := json.Marshal(data)
	if err != nil {
		return ShapeRecord{}, err
	}
	return ShapeRecord{Type: tag, Data: raw}, nil
}

func (sr ShapeRecord) shape() (Shape, error) {
	switch sr.Type {
	case tagTriangle:
		var d triangleData
		if err := json.Unmarshal(sr.Data, &d); err != nil {
			return nil, err
		}
		return &Triangle{
			P1:    d.P1.point(),
			P2:    d.P2.point(),
			P3:    d.P3.point(),
			Color: d.Color.color(),
		}, nil
	case tagCircle:
		var d circleData
		if err := json.Unmarshal(sr.Data, &d); err != nil {
			return nil, err
		}
		return &Circle{
			Center: d.Center.point(),
			Radius: d.Radius,
			Color:  d.Color.color(),
		}, nil
	case tagRectangle:
		var d rectangleData
		if err := json.Unmarshal(sr.Data, &d); err != nil {
			return nil, err
		}
		return &Rectangle{
			P1:    d.P1.point(),
			P2:    d.P2.point(),
			Color: d.Color.color(),
		}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownShapeKind, sr.Type)
}

func colorRecord(c Color) ColorRecord {
	return ColorRecord{R: c.R, G: c.G, B: c.B, A: c.A}
}

func (c ColorRecord) color() Color {
	return Color{R: c.R, G: c.G, B: c.B, A: c.A}
}

func pointRecord(p vec.Vec2) PointRecord {
	return PointRecord{X: p.X, Y: p.Y}
}

func (p PointRecord) point() vec.Vec2 {
	return vec.Vec2{X: p.X, Y: p.Y}
}
