package config

import (
	"encoding/json"
	stderrors "errors"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"golang.org/x/text/language"

	"github.com/vango-dev/kiln/internal/errors"
)

const (
	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "kiln.json"

	// DefaultPort is the default preview server port.
	DefaultPort = 4000

	// DefaultHost is the default preview server host.
	DefaultHost = "localhost"

	// DefaultOutput is the default build output directory.
	DefaultOutput = "dist"

	// DefaultPages is the default page documents directory.
	DefaultPages = "pages"

	// DefaultLocale is the default site language.
	DefaultLocale = "en"

	// DefaultPollInterval is the default file watcher poll interval.
	DefaultPollInterval = "500ms"

	// DefaultCacheControl is the default Cache-Control for published pages.
	DefaultCacheControl = "public, max-age=300"
)

// Config represents the complete kiln.json configuration.
type Config struct {
	// Site contains values every page can read.
	Site SiteConfig `json:"site"`

	// Build contains page build configuration.
	Build BuildConfig `json:"build"`

	// Preview contains preview server configuration.
	Preview PreviewConfig `json:"preview"`

	// Publish contains upload configuration.
	Publish PublishConfig `json:"publish,omitempty"`

	// configPath stores the path where the config was loaded from.
	configPath string
}

// SiteConfig contains site-wide settings.
type SiteConfig struct {
	// Name is the site name.
	Name string `json:"name,omitempty"`

	// Title is the default page title.
	Title string `json:"title,omitempty"`

	// Locale is a BCP 47 language tag (e.g., "en", "pt-BR").
	Locale string `json:"locale,omitempty"`

	// BaseURL is the public URL of the site.
	BaseURL string `json:"baseURL,omitempty"`

	// AssetPrefix is the URL prefix for assets (e.g., "/assets/").
	AssetPrefix string `json:"assetPrefix,omitempty"`

	// Manifest is the path to the asset manifest JSON file.
	Manifest string `json:"manifest,omitempty"`

	// Includes is the directory holding include snippets.
	Includes string `json:"includes,omitempty"`

	// StyleSheets are linked from every page.
	StyleSheets []string `json:"stylesheets,omitempty"`
}

// BuildConfig contains page build settings.
type BuildConfig struct {
	// Output is the output directory for rendered pages.
	Output string `json:"output,omitempty"`

	// Pages is the directory holding page documents.
	Pages string `json:"pages,omitempty"`

	// Fragment renders the body only, without the document wrapper.
	Fragment bool `json:"fragment,omitempty"`
}

// PreviewConfig contains preview server settings.
type PreviewConfig struct {
	// Port is the port to run the preview server on.
	Port int `json:"port,omitempty"`

	// Host is the host to bind to.
	Host string `json:"host,omitempty"`

	// LiveReload reloads open pages when a file changes.
	LiveReload bool `json:"liveReload"`

	// PollInterval is the file watcher interval (e.g., "500ms").
	PollInterval string `json:"pollInterval,omitempty"`
}

// PublishConfig contains S3 upload settings.
type PublishConfig struct {
	// Bucket is the destination bucket.
	Bucket string `json:"bucket,omitempty"`

	// Prefix is prepended to every object key.
	Prefix string `json:"prefix,omitempty"`

	// Region overrides the AWS region.
	Region string `json:"region,omitempty"`

	// Endpoint overrides the S3 endpoint (e.g., for MinIO).
	Endpoint string `json:"endpoint,omitempty"`

	// CacheControl is set on every uploaded object.
	CacheControl string `json:"cacheControl,omitempty"`
}

// New creates a new Config with default values.
func New() *Config {
	return &Config{
		Site: SiteConfig{
			Name:     "kiln site",
			Locale:   DefaultLocale,
			Includes: "includes",
		},
		Build: BuildConfig{
			Output: DefaultOutput,
			Pages:  DefaultPages,
		},
		Preview: PreviewConfig{
			Port:         DefaultPort,
			Host:         DefaultHost,
			LiveReload:   true,
			PollInterval: DefaultPollInterval,
		},
		Publish: PublishConfig{
			CacheControl: DefaultCacheControl,
		},
	}
}

// Load reads configuration from the specified directory.
// It looks for kiln.json in the directory.
func Load(dir string) (*Config, error) {
	return LoadFile(filepath.Join(dir, ConfigFileName))
}

// LoadFile reads configuration from the specified file path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New("K120").
				WithDetail("No kiln.json found in " + filepath.Dir(path))
		}
		return nil, errors.New("K120").Wrap(err)
	}

	cfg := New()
	if err := json.Unmarshal(data, cfg); err != nil {
		kerr := errors.New("K121").WithDetail(err.Error()).Wrap(err)
		var syntax *json.SyntaxError
		if stderrors.As(err, &syntax) {
			line, col := position(data, syntax.Offset)
			kerr = kerr.WithLocation(path, line, col)
		}
		return nil, kerr
	}

	cfg.configPath = path
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// position converts a byte offset into a 1-based line and column.
func position(data []byte, offset int64) (int, int) {
	line, col := 1, 1
	for i := int64(0); i < offset && i < int64(len(data)); i++ {
		if data[i] == '\n' {
			line++
			col = 1
			continue
		}
		col++
	}
	return line, col
}

// Save writes the configuration to the file it was loaded from.
func (c *Config) Save() error {
	if c.configPath == "" {
		return errors.New("K123").WithDetail("no config path set")
	}
	return c.SaveTo(c.configPath)
}

// SaveTo writes the configuration to the specified path.
func (c *Config) SaveTo(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return errors.New("K123").Wrap(err)
	}

	// Add newline at end of file
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.New("K123").Wrap(err)
	}

	c.configPath = path
	return nil
}

// Path returns the path where the config was loaded from.
func (c *Config) Path() string {
	return c.configPath
}

// Dir returns the directory containing the config file.
func (c *Config) Dir() string {
	if c.configPath == "" {
		return ""
	}
	return filepath.Dir(c.configPath)
}

// applyDefaults fills in default values for empty fields.
func (c *Config) applyDefaults() {
	if c.Site.Locale == "" {
		c.Site.Locale = DefaultLocale
	}
	if c.Build.Output == "" {
		c.Build.Output = DefaultOutput
	}
	if c.Build.Pages == "" {
		c.Build.Pages = DefaultPages
	}
	if c.Preview.Port == 0 {
		c.Preview.Port = DefaultPort
	}
	if c.Preview.Host == "" {
		c.Preview.Host = DefaultHost
	}
	if c.Preview.PollInterval == "" {
		c.Preview.PollInterval = DefaultPollInterval
	}
	if c.Publish.CacheControl == "" {
		c.Publish.CacheControl = DefaultCacheControl
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if _, err := language.Parse(c.Site.Locale); err != nil {
		return errors.New("K122").
			WithDetailf("site.locale %q is not a language tag", c.Site.Locale).
			Wrap(err)
	}
	if c.Preview.Port < 0 || c.Preview.Port > 65535 {
		return errors.New("K122").
			WithDetail("preview.port must be between 0 and 65535")
	}
	if d, err := time.ParseDuration(c.Preview.PollInterval); err != nil || d <= 0 {
		return errors.New("K122").
			WithDetailf("preview.pollInterval %q is not a positive duration", c.Preview.PollInterval)
	}
	return nil
}

// Locale returns the parsed site locale.
func (c *Config) Locale() language.Tag {
	tag, err := language.Parse(c.Site.Locale)
	if err != nil {
		return language.English
	}
	return tag
}

// PollInterval returns the parsed watcher interval.
func (c *Config) PollInterval() time.Duration {
	d, err := time.ParseDuration(c.Preview.PollInterval)
	if err != nil || d <= 0 {
		return 500 * time.Millisecond
	}
	return d
}

// PreviewAddress returns the address string for the preview server.
func (c *Config) PreviewAddress() string {
	return net.JoinHostPort(c.Preview.Host, strconv.Itoa(c.Preview.Port))
}

// PreviewURL returns the full URL for the preview server.
func (c *Config) PreviewURL() string {
	return "http://" + c.PreviewAddress()
}

// OutputPath returns the absolute path to the build output directory.
func (c *Config) OutputPath() string { return c.resolve(c.Build.Output) }

// PagesPath returns the absolute path to the page documents directory.
func (c *Config) PagesPath() string { return c.resolve(c.Build.Pages) }

// IncludesPath returns the absolute path to the includes directory.
func (c *Config) IncludesPath() string { return c.resolve(c.Site.Includes) }

// ManifestPath returns the absolute path to the asset manifest, or "" when
// no manifest is configured.
func (c *Config) ManifestPath() string {
	if c.Site.Manifest == "" {
		return ""
	}
	return c.resolve(c.Site.Manifest)
}

// SiteValues returns the site settings as the map nodes read through
// view.Context.Site.
func (c *Config) SiteValues() map[string]any {
	return map[string]any{
		"name":    c.Site.Name,
		"title":   c.Site.Title,
		"baseURL": c.Site.BaseURL,
		"locale":  c.Site.Locale,
	}
}

func (c *Config) resolve(path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(c.Dir(), path)
}

// Exists checks if a config file exists in the given directory.
func Exists(dir string) bool {
	_, err := os.Stat(filepath.Join(dir, ConfigFileName))
	return err == nil
}

// FindProjectRoot walks up directories to find the project root.
// Returns the directory containing kiln.json, or an error if not found.
func FindProjectRoot(startDir string) (string, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", err
	}

	for {
		if Exists(dir) {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", errors.New("K120").
				WithDetail("No kiln.json found in " + startDir + " or any parent directory")
		}
		dir = parent
	}
}

// LoadOrDefault loads kiln.json from the project containing dir. Outside a
// project it returns the defaults rooted at dir.
func LoadOrDefault(dir string) (*Config, error) {
	root, err := FindProjectRoot(dir)
	if err != nil {
		if errors.CodeOf(err) != "K120" {
			return nil, err
		}
		abs, absErr := filepath.Abs(dir)
		if absErr != nil {
			return nil, absErr
		}
		cfg := New()
		cfg.configPath = filepath.Join(abs, ConfigFileName)
		return cfg, nil
	}
	return Load(root)
}
