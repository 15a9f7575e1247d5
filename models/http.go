package models

// InsertNotificationsRequest is the body of POST /insert_notifications.
type InsertNotificationsRequest struct {
	// Messages is the ordered list of notification texts to append.
	// Must not be empty.
	Messages []string `json:"messages"`
}

// InsertNotificationsResponse reports how many notifications were stored.
type InsertNotificationsResponse struct {
	Inserted int `json:"inserted"`
}

// NotificationsResponse is returned by GET /get_all_notifications.
type NotificationsResponse struct {
	Notifications []Notification `json:"notifications"`
	Length        int            `json:"length"`
}

// SensorReadingsResponse is returned by the sensor read endpoints.
type SensorReadingsResponse struct {
	Category SensorCategory  `json:"category"`
	Readings []SensorReading `json:"readings"`
	Length   int             `json:"length"`
}

// HealthResponse is returned by GET /health.
type HealthResponse struct {
	Status string `json:"status"`
}

// MessageResponse carries a user-facing message for JSON clients.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse carries a user-facing error for JSON clients.
type ErrorResponse struct {
	Error string `json:"error"`
}

// VersionResponse is returned by GET /version.
type VersionResponse struct {
	Version string `json:"version"`
	Date    string `json:"date"`
	Commit  string `json:"commit"`
}
