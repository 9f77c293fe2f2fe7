package service

// Broadcaster interface for WebSocket broadcasting (avoids import cycle)
type Broadcaster interface {
	Broadcast(event string, payload interface{})
	BroadcastToUser(userID string, event string, payload interface{})
}
