package models

// DashboardView is everything the dashboard pages render. Optional readings
// are nil when the category holds no data or could not be fetched.
type DashboardView struct {
	Session       Session         `json:"session"`
	Environment   *SensorReading  `json:"environment,omitempty"`
	Levels        *SensorReading  `json:"levels,omitempty"`
	Sanitization  *SensorReading  `json:"sanitization,omitempty"`
	Growth        *SensorReading  `json:"growth,omitempty"`
	Notifications []Notification  `json:"notifications"`
	Images        []string        `json:"images"`
	Admin         *AdminDashboard `json:"admin,omitempty"`
}

// AdminDashboard holds the extra data shown to admins.
type AdminDashboard struct {
	Users     []User `json:"users"`
	UserCount int    `json:"user_count"`
}
