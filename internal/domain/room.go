package domain

import "time"

// Room represents a bookable studio room with configured operating hours.
// OpenTime and CloseTime are stored as full timestamps but only their
// time-of-day component is semantically meaningful; the schedule grid
// re-anchors them onto each rendered calendar date.
type Room struct {
	ID        string
	Location  string
	OpenTime  time.Time
	CloseTime time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasOperatingHours returns true if the room's configured hours describe a
// non-empty day. A room violating openTime < closeTime simply has no
// bookable slots, it is not an error.
func (r *Room) HasOperatingHours() bool {
	openH, openM := r.OpenTime.Hour(), r.OpenTime.Minute()
	closeH, closeM := r.CloseTime.Hour(), r.CloseTime.Minute()
	return openH*60+openM < closeH*60+closeM
}

// RoomUpdate набор изменяемых полей комнаты (nil - поле не меняется)
type RoomUpdate struct {
	Location  *string
	OpenTime  *time.Time
	CloseTime *time.Time
}
