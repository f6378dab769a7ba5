package models

// AdminCredentials is the admin login payload.
type AdminCredentials struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AdminAuthResponse carries the session token issued after a successful login.
type AdminAuthResponse struct {
	Token string `json:"token"`
	Email string `json:"email"`
}

// Setting is a key/value row from the settings table. The only key the
// application currently uses is "admin_email".
type Setting struct {
	Key   string `bson:"key" json:"key"`
	Value string `bson:"value" json:"value"`
}

// SettingAdminEmail is the settings key holding the notification mailbox.
const SettingAdminEmail = "admin_email"

// CSVImportSummary reports the outcome of a partner CSV import batch.
type CSVImportSummary struct {
	Success int `json:"success"`
	Errors  int `json:"errors"`
	Total   int `json:"total"`
}
