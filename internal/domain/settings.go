package domain

// Settings holds user-tunable application preferences
type Settings struct {
	Currency    string `json:"currency"`
	DarkMode    bool   `json:"darkMode"`
	AutoRefresh bool   `json:"autoRefresh"`
	// RefreshInterval is the auto-refresh period in minutes
	RefreshInterval int `json:"refreshInterval"`
}

// DefaultSettings returns the settings used when nothing has been stored
func DefaultSettings() Settings {
	return Settings{
		Currency:        "USD",
		DarkMode:        true,
		AutoRefresh:     false,
		RefreshInterval: 15,
	}
}
