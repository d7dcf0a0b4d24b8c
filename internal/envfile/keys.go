package envfile

// FileName is the persisted configuration file inside a Brewblox directory.
const FileName = ".env"

// Keys persisted in a Brewblox directory's .env file.
const (
	ReleaseKey     = "BREWBLOX_RELEASE"
	CfgVersionKey  = "BREWBLOX_CFG_VERSION"
	SkipConfirmKey = "BREWBLOX_SKIP_CONFIRM"
)

// CurrentCfgVersion is the schema version written by a fresh init.
// Upgrades bump this after migrating directory contents.
const CurrentCfgVersion = "0.0.0"
