package config

import (
	"os"
	"strconv"
)

type Config struct {
	LogLevel string

	SubsidyAPIKey string
	Gov24BaseURL  string

	WPURL         string
	WPUser        string
	WPAppPassword string
	WPCategoryID  int

	FetchPolicy       string
	FetchDays         int
	FetchPageSize     int
	FetchMaxPages     int
	FetchRatePerSec   float64
	HTTPTimeoutSecond int

	RenderVariant           string
	InteractiveTemplatePath string

	OutputDir          string
	FallbackOutputFile string
	StaticPageFile     string

	ThumbnailEnabled bool
	ThumbnailFile    string
	FontBoldPath     string
	FontRegularPath  string

	CategoryTablePath string
	XLSXExportFile    string

	NATSURL     string
	NATSSubject string

	MetricsTextfile string
}

func Load() Config {
	return Config{
		LogLevel: mustEnv("LOG_LEVEL", "info"),

		SubsidyAPIKey: mustEnv("SUBSIDY_API_KEY", ""),
		Gov24BaseURL:  mustEnv("GOV24_BASE_URL", "https://api.odcloud.kr/api/gov24/v3"),

		WPURL:         mustEnv("WP_URL", "https://yeojugoodnews.com"),
		WPUser:        mustEnv("WP_USER", ""),
		WPAppPassword: mustEnv("WP_APP_PASSWORD", ""),
		WPCategoryID:  mustEnvInt("WP_CATEGORY_ID", 139),

		FetchPolicy:       mustEnv("FETCH_POLICY", "recent"),
		FetchDays:         mustEnvInt("FETCH_DAYS", 30),
		FetchPageSize:     mustEnvInt("FETCH_PAGE_SIZE", 100),
		FetchMaxPages:     mustEnvInt("FETCH_MAX_PAGES", 10),
		FetchRatePerSec:   mustEnvFloat("FETCH_RATE_PER_SEC", 5),
		HTTPTimeoutSecond: mustEnvInt("HTTP_TIMEOUT_SECONDS", 30),

		RenderVariant:           mustEnv("RENDER_VARIANT", "interactive"),
		InteractiveTemplatePath: mustEnv("INTERACTIVE_TEMPLATE_PATH", ""),

		OutputDir:          mustEnv("OUTPUT_DIR", "."),
		FallbackOutputFile: mustEnv("FALLBACK_OUTPUT_FILE", "subsidy_output.html"),
		StaticPageFile:     mustEnv("STATIC_PAGE_FILE", "subsidy_page.html"),

		ThumbnailEnabled: mustEnvBool("THUMBNAIL_ENABLED", true),
		ThumbnailFile:    mustEnv("THUMBNAIL_FILE", "subsidy_thumbnail.png"),
		FontBoldPath:     mustEnv("FONT_BOLD_PATH", "/usr/share/fonts/truetype/nanum/NanumGothicBold.ttf"),
		FontRegularPath:  mustEnv("FONT_REGULAR_PATH", "/usr/share/fonts/truetype/nanum/NanumGothic.ttf"),

		CategoryTablePath: mustEnv("CATEGORY_TABLE_PATH", ""),
		XLSXExportFile:    mustEnv("XLSX_EXPORT_FILE", ""),

		NATSURL:     mustEnv("NATS_URL", ""),
		NATSSubject: mustEnv("NATS_SUBJECT", "digest.published"),

		MetricsTextfile: mustEnv("METRICS_TEXTFILE", ""),
	}
}

func mustEnv(key, fallback string) string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	return v
}

func mustEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func mustEnvFloat(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fallback
	}
	return f
}

func mustEnvBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}
