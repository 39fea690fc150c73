// Package shapes provides ready-made shape builders for the common 2D
// primitives, in filled and stroked variants.
//
// Each primitive is a small parameter struct implementing
// [tessmesh.ShapeBuilder]. The Default* constructors return a struct with
// the library defaults filled in; any field can be overridden afterwards:
//
//	circle := shapes.DefaultFillCircle()
//	circle.Center = curve.Point{X: -100}
//	mesh, err := tessmesh.BuildOne(circle)
//
// Structs built as plain literals use the zero value of unset fields, not
// the library defaults. Options fields are pointers; nil selects the tess
// package defaults.
package shapes
