// Package queue defines message payloads exchanged over the message broker.
package queue

// VisitorCheckedInEvent is published when a visitor is successfully checked
// in. It carries enough information for downstream consumers (for example a
// notifier that texts the room owner that a guest has arrived) without
// querying the primary database.
type VisitorCheckedInEvent struct {
    VisitorID       uint64 `json:"visitor_id"`
    Name            string `json:"name"`
    RoomNumber      string `json:"room_number"`
    Purpose         string `json:"purpose"`
    RoomOwnerMobile string `json:"room_owner_mobile"`
    BuildingID      uint64 `json:"building_id"`
    RecordedBy      uint64 `json:"recorded_by"`
    EntryTime       string `json:"entry_time"`
}
