package videotoken

// Environment variable names for the two required secrets. Validation
// messages reference these names so operators can tell which value is
// missing without the value itself ever being reported.
const (
	EnvAPIKey    = "STREAM_API_KEY"
	EnvAPISecret = "STREAM_API_SECRET"
)

// ConfigStatus is the result of ValidateConfig.
type ConfigStatus struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors"`
}

// ValidateConfig checks that both required secrets are present. It is a pure
// function: no side effects, never fails. Errors are reported in fixed order
// (API key first, then API secret), one message per missing value.
func ValidateConfig(cfg Config) ConfigStatus {
	errs := make([]string, 0, 2)
	if cfg.APIKey == "" {
		errs = append(errs, EnvAPIKey+" is not set")
	}
	if cfg.APISecret == "" {
		errs = append(errs, EnvAPISecret+" is not set")
	}
	return ConfigStatus{Valid: len(errs) == 0, Errors: errs}
}
