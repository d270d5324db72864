/*
Package geom provides the planar value types used for layout and
hit-testing: Coordinate (point/vector), Size (extent), Rect
(origin+extent rectangle) and Box (edge-offset rectangle), together
with the rectangle region algebra (edge-inclusive intersection,
difference into at most four disjoint bands, bounding union).

All four types are mutable structs of plain float64 fields. Mutating
methods take pointer receivers and return the receiver so calls chain;
package-level functions provide the allocating counterparts and use nil
to signal "no result". Numeric inputs are never validated: NaN and Inf
propagate through the arithmetic unchanged.

Values are not synchronized. Sharing one instance across goroutines and
mutating it concurrently is the caller's problem; the fields are plain
numbers, so the worst outcome is a last-write-wins race.
*/
package geom
