package heap

import "errors"

// ErrAllFixedMesh indicates QMinStar was requested on a heap whose polygons
// are all fixed, for which no improvable quality number exists.
var ErrAllFixedMesh = errors.New("heap: qMinStar is undefined when every polygon is fixed")
