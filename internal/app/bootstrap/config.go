// internal/app/bootstrap/config.go
package bootstrap

import (
	"fmt"

	"github.com/dalemusser/waffle/config"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.uber.org/zap"
)

// appConfigKeys defines the configuration keys for ClubHub.
// These are loaded via WAFFLE's config system with support for:
//   - Config files: mongo_uri, sheet_id, etc.
//   - Environment variables: CLUBHUB_MONGO_URI, CLUBHUB_SHEET_ID, etc.
//   - Command-line flags: --mongo_uri, --sheet_id, etc.
var appConfigKeys = []config.AppKey{
	{Name: "mongo_uri", Default: "mongodb://localhost:27017", Desc: "MongoDB connection URI"},
	{Name: "mongo_database", Default: "clubhub", Desc: "MongoDB database name"},
	{Name: "mongo_max_pool_size", Default: 100, Desc: "MongoDB max connection pool size (default: 100)"},
	{Name: "mongo_min_pool_size", Default: 10, Desc: "MongoDB min connection pool size (default: 10)"},

	// Cloudinary configuration
	{Name: "cloudinary_cloud", Default: "", Desc: "Cloudinary cloud name (blank disables image uploads)"},
	{Name: "cloudinary_key", Default: "", Desc: "Cloudinary API key"},
	{Name: "cloudinary_secret", Default: "", Desc: "Cloudinary API secret"},
	{Name: "cloudinary_folder", Default: "clubhub", Desc: "Cloudinary folder for uploaded assets"},

	// Google Sheets configuration
	{Name: "sheet_id", Default: "", Desc: "Google Sheet ID for ticket verification"},
	{Name: "sheet_range", Default: "Sheet1!A:E", Desc: "A1-notation range for the Sheets API fallback"},
	{Name: "sheet_api_key", Default: "", Desc: "Google Sheets API key (blank disables the API tier)"},
}

// LoadConfig loads WAFFLE core config and app-specific config.
//
// WAFFLE's config.LoadWithAppConfig handles:
//   - Loading from .env files
//   - Loading from config.yaml/json/toml files
//   - Reading environment variables (WAFFLE_* for core, CLUBHUB_* for app)
//   - Parsing command-line flags
//   - Merging with precedence: flags > env > files > defaults
func LoadConfig(logger *zap.Logger) (*config.CoreConfig, AppConfig, error) {
	coreCfg, appValues, err := config.LoadWithAppConfig(logger, "CLUBHUB", appConfigKeys)
	if err != nil {
		return nil, AppConfig{}, err
	}

	appCfg := AppConfig{
		MongoURI:         appValues.String("mongo_uri"),
		MongoDatabase:    appValues.String("mongo_database"),
		MongoMaxPoolSize: uint64(appValues.Int("mongo_max_pool_size")),
		MongoMinPoolSize: uint64(appValues.Int("mongo_min_pool_size")),

		CloudinaryCloud:  appValues.String("cloudinary_cloud"),
		CloudinaryKey:    appValues.String("cloudinary_key"),
		CloudinarySecret: appValues.String("cloudinary_secret"),
		CloudinaryFolder: appValues.String("cloudinary_folder"),

		SheetID:     appValues.String("sheet_id"),
		SheetRange:  appValues.String("sheet_range"),
		SheetAPIKey: appValues.String("sheet_api_key"),
	}

	return coreCfg, appCfg, nil
}

// ValidateConfig performs app-specific config validation.
//
// ClubHub validates the MongoDB URI format to catch configuration
// errors early, before attempting to connect. Cloudinary credentials
// are checked for partial configuration: all or nothing.
func ValidateConfig(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) error {
	if err := wafflemongo.ValidateURI(appCfg.MongoURI); err != nil {
		logger.Error("invalid MongoDB URI", zap.Error(err))
		return fmt.Errorf("invalid MongoDB URI: %w", err)
	}

	if appCfg.CloudinaryCloud != "" {
		if appCfg.CloudinaryKey == "" || appCfg.CloudinarySecret == "" {
			return fmt.Errorf("cloudinary_cloud is set but cloudinary_key/cloudinary_secret are missing")
		}
	}

	return nil
}
