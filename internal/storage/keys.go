package storage

// Logical keys, one per collection plus the session pointer. Backends may
// namespace these but the names themselves are fixed.
const (
	KeyTeams         = "teams"
	KeyPlayers       = "players"
	KeyEvents        = "events"
	KeyAnnouncements = "announcements"
	KeyUsers         = "users"
	KeySession       = "session"
)

// CollectionKeys lists every collection key, in seeding order. The
// session key is deliberately excluded: it is a scalar pointer, never a
// collection.
func CollectionKeys() []string {
	return []string{KeyTeams, KeyPlayers, KeyEvents, KeyAnnouncements, KeyUsers}
}
