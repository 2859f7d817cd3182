// Package pathfind defines sentinel errors for the pathfind subpackage
// of github.com/katalvlaran/coinwalk.
package pathfind

import "errors"

// ErrNoPath indicates the traversal exhausted its frontier without
// reaching the goal cell: the two cells are not connected. This is
// fatal for the whole expectation pipeline; full reachability among
// coin cells is a precondition.
var ErrNoPath = errors.New("pathfind: no path between cells")
