package enums

import (
	"fmt"
	"math"
)

// Shape is a sealed union of Circle and Rectangle, each with its own fields.
type Shape interface {
	Area() float64
	fmt.Stringer
	isShape()
}

type Circle struct {
	Radius float64
}

type Rectangle struct {
	Width, Height float64
}

func (Circle) isShape()    {}
func (Rectangle) isShape() {}

func (c Circle) Area() float64    { return math.Pi * c.Radius * c.Radius }
func (r Rectangle) Area() float64 { return r.Width * r.Height }

func (c Circle) String() string { return fmt.Sprintf("Circle(r=%.2f)", c.Radius) }
func (r Rectangle) String() string {
	return fmt.Sprintf("Rectangle(w=%.2f, h=%.2f)", r.Width, r.Height)
}

// TotalArea sums the area of every shape in the slice.
func TotalArea(shapes []Shape) float64 {
	total := 0.0
	for _, s := range shapes {
		total += s.Area()
	}
	return total
}
