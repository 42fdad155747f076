package state

import "github.com/nhle/marketing-hub/internal/model"

// Notifications is an ordered notification sequence with read tracking.
// Insertion order is display order; records are never removed.
type Notifications struct {
	items []model.Notification
}

// NewNotifications copies seed into a new sequence.
func NewNotifications(seed []model.Notification) *Notifications {
	items := make([]model.Notification, len(seed))
	copy(items, seed)
	return &Notifications{items: items}
}

// UnreadCount returns the number of records not yet read.
func (n *Notifications) UnreadCount() int {
	count := 0
	for _, item := range n.items {
		if !item.Read {
			count++
		}
	}
	return count
}

// MarkRead marks the record with the given id as read. Unknown ids are ignored.
func (n *Notifications) MarkRead(id int) {
	for i := range n.items {
		if n.items[i].ID == id {
			n.items[i].Read = true
			return
		}
	}
}

// MarkAllRead marks every record as read.
func (n *Notifications) MarkAllRead() {
	for _, item := range n.items {
		n.MarkRead(item.ID)
	}
}

// All returns a copy of the sequence in display order.
func (n *Notifications) All() []model.Notification {
	out := make([]model.Notification, len(n.items))
	copy(out, n.items)
	return out
}

// Len returns the number of records.
func (n *Notifications) Len() int {
	return len(n.items)
}
