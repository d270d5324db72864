package geom

import (
	"encoding/json"
	"fmt"
)

// The interchange form for every type is a flat JSON array with a fixed
// field order and no type tag: the consumer must know which type it is
// decoding.
//
//	Coordinate [x, y]
//	Size       [width, height]
//	Rect       [left, top, width, height]
//	Box        [top, right, bottom, left]

func (c *Coordinate) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]float64{c.X, c.Y})
}

func (c *Coordinate) UnmarshalJSON(data []byte) error {
	var arr []float64
	if err := json.Unmarshal(data, &arr); err != nil {
		return err
	}
	if len(arr) != 2 {
		return fmt.Errorf("geom: coordinate array has %d elements, want 2", len(arr))
	}
	c.X, c.Y = arr[0], arr[1]
	return nil
}

func (s *Size) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]float64{s.Width, s.Height})
}

func (s *Size) UnmarshalJSON(data []byte) error {
	var arr []float64
	if err := json.Unmarshal(data, &arr); err != nil {
		return err
	}
	if len(arr) != 2 {
		return fmt.Errorf("geom: size array has %d elements, want 2", len(arr))
	}
	s.Width, s.Height = arr[0], arr[1]
	return nil
}

func (r *Rect) MarshalJSON() ([]byte, error) {
	return json.Marshal([4]float64{r.Left, r.Top, r.Width, r.Height})
}

func (r *Rect) UnmarshalJSON(data []byte) error {
	var arr []float64
	if err := json.Unmarshal(data, &arr); err != nil {
		return err
	}
	if len(arr) != 4 {
		return fmt.Errorf("geom: rect array has %d elements, want 4", len(arr))
	}
	r.Left, r.Top, r.Width, r.Height = arr[0], arr[1], arr[2], arr[3]
	return nil
}

func (b *Box) MarshalJSON() ([]byte, error) {
	return json.Marshal([4]float64{b.Top, b.Right, b.Bottom, b.Left})
}

func (b *Box) UnmarshalJSON(data []byte) error {
	var arr []float64
	if err := json.Unmarshal(data, &arr); err != nil {
		return err
	}
	if len(arr) != 4 {
		return fmt.Errorf("geom: box array has %d elements, want 4", len(arr))
	}
	b.Top, b.Right, b.Bottom, b.Left = arr[0], arr[1], arr[2], arr[3]
	return nil
}
