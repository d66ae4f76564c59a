package models

// Known setting keys.
const (
	SettingGymName      = "gym_name"
	SettingDefaultStaff = "default_staff"
	SettingCurrency     = "currency"
)

// AppSetting is a key-value pair for front-desk preferences.
type AppSetting struct {
	Key       string `json:"key" db:"setting_key"`
	Value     string `json:"value" db:"setting_value"`
	UpdatedAt string `json:"updated_at" db:"updated_at"`
}

// BackupInfo describes one database backup file.
type BackupInfo struct {
	Path      string `json:"path"`
	Checksum  string `json:"checksum"`
	CreatedAt string `json:"created_at"`
	SizeBytes int64  `json:"size_bytes"`
}
