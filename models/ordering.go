package models

// PositionAssignment reassigns the display position of one row of an
// orderable table. A reorder is a batch of assignments applied in one
// transaction; callers supply a full, consistent assignment since the
// renumberer does not validate density or uniqueness of the result.
type PositionAssignment struct {
	Id       int64 `json:"id" binding:"required"`
	Position int   `json:"position"`
}
