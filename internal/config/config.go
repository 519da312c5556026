package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	PlaceholderToken   = "YOUR_TOKEN_HERE"
	PlaceholderBaseID  = "YOUR_BASE_ID_HERE"
	PlaceholderTableID = "YOUR_TABLE_ID_HERE"

	DefaultEnvFile = ".env"
	DefaultOutFile = ".tmp/leads.json"
)

type Config struct {
	// Airtable
	AirtableBaseURL string
	AirtableToken   string
	AirtableBaseID  string
	AirtableTableID string
	RequestsPerSec  float64
	HTTPTimeout     time.Duration

	// Snapshot
	OutFile string

	// SFTP
	SFTPHost                  string
	SFTPPort                  int
	SFTPUser                  string
	SFTPPass                  string
	SFTPDir                   string
	SFTPKnownHosts            string
	SFTPInsecureIgnoreHostKey bool
}

// LoadEnvFile copies key=value pairs from path into the process environment,
// overriding values already set. A missing file is not an error.
func LoadEnvFile(path string) (bool, error) {
	if path == "" {
		return false, nil
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("config: stat env file %s: %w", path, err)
	}
	if err := godotenv.Overload(path); err != nil {
		return false, fmt.Errorf("config: load env file %s: %w", path, err)
	}
	return true, nil
}

func Load() Config {
	knownHosts := os.Getenv("SFTP_KNOWN_HOSTS")

	return Config{
		// Airtable
		AirtableBaseURL: getenv("AIRTABLE_API_URL", "https://api.airtable.com"),
		AirtableToken:   getenv("AIRTABLE_TOKEN", PlaceholderToken),
		AirtableBaseID:  getenv("AIRTABLE_BASE_ID", PlaceholderBaseID),
		AirtableTableID: getenv("AIRTABLE_TABLE_ID", PlaceholderTableID),
		RequestsPerSec:  getenvFloat("AIRTABLE_REQUESTS_PER_SEC", 5),
		HTTPTimeout:     getenvDuration("LEADS_HTTP_TIMEOUT", 0),

		// Snapshot
		OutFile: getenv("LEADS_OUT_FILE", DefaultOutFile),

		// SFTP; host keys are checked by default once known_hosts is given
		SFTPHost:                  os.Getenv("SFTP_HOST"),
		SFTPPort:                  getenvInt("SFTP_PORT", 22),
		SFTPUser:                  os.Getenv("SFTP_USER"),
		SFTPPass:                  os.Getenv("SFTP_PASS"),
		SFTPDir:                   getenv("SFTP_DIR", "/inbound"),
		SFTPKnownHosts:            knownHosts,
		SFTPInsecureIgnoreHostKey: getenvBool("SFTP_INSECURE_IGNORE_HOSTKEY", knownHosts == ""),
	}
}

// HasPlaceholders reports whether any Airtable identifier is still unset.
func (c Config) HasPlaceholders() bool {
	return c.AirtableToken == PlaceholderToken ||
		c.AirtableBaseID == PlaceholderBaseID ||
		c.AirtableTableID == PlaceholderTableID
}

func getenv(k, def string) string {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	return v
}

func getenvInt(k string, def int) int {
	v, err := strconv.Atoi(os.Getenv(k))
	if err != nil {
		return def
	}
	return v
}

func getenvFloat(k string, def float64) float64 {
	v, err := strconv.ParseFloat(os.Getenv(k), 64)
	if err != nil {
		return def
	}
	return v
}

func getenvBool(k string, def bool) bool {
	v, err := strconv.ParseBool(os.Getenv(k))
	if err != nil {
		return def
	}
	return v
}

// getenvDuration accepts Go durations ("90s") or bare seconds ("90").
func getenvDuration(k string, def time.Duration) time.Duration {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	if d, err := time.ParseDuration(v); err == nil && d >= 0 {
		return d
	}
	if secs, err := strconv.Atoi(v); err == nil && secs >= 0 {
		return time.Duration(secs) * time.Second
	}
	return def
}
