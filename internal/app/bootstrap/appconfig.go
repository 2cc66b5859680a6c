// internal/app/bootstrap/appconfig.go
package bootstrap

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// WAFFLE's CoreConfig handles framework-level settings (ports, TLS,
// logging, CORS). AppConfig is everything specific to ClubHub: the
// Mongo connection, the Cloudinary account used for image offload, and
// the Google Sheet backing ticket verification.
type AppConfig struct {
	// MongoDB connection configuration
	MongoURI         string // MongoDB connection string (e.g., mongodb://localhost:27017)
	MongoDatabase    string // Database name within MongoDB
	MongoMaxPoolSize uint64 // Max connection pool size
	MongoMinPoolSize uint64 // Min connection pool size

	// Cloudinary configuration. Blank cloud name disables uploads; the
	// API still runs, image fields just stay empty.
	CloudinaryCloud  string // Cloudinary cloud name
	CloudinaryKey    string // Cloudinary API key
	CloudinarySecret string // Cloudinary API secret
	CloudinaryFolder string // Folder prefix for uploaded assets

	// Google Sheets configuration for ticket verification.
	SheetID     string // Spreadsheet ID
	SheetRange  string // A1-notation read range for the API fallback
	SheetAPIKey string // API key for the Sheets API (blank disables that tier)
}
