package configs

type FeatureFlags struct {
	Chat          bool
	Notifications bool
}

type IntegrationFlags struct {
	Firebase bool
	Stripe   bool
}

// BrandConfig is static per-brand configuration chosen once at startup by
// APP_BRAND. There is no runtime reconfiguration.
type BrandConfig struct {
	Name         string
	DisplayName  string
	Features     FeatureFlags
	Integrations IntegrationFlags
}

const DefaultBrand = "stepsync"

var brands = map[string]BrandConfig{
	"stepsync": {
		Name:        "stepsync",
		DisplayName: "StepSync",
		Features:    FeatureFlags{Chat: true, Notifications: true},
	},
	"studiolite": {
		Name:        "studiolite",
		DisplayName: "Studio Lite",
		Features:    FeatureFlags{Chat: false, Notifications: true},
	},
}

// Brand resolves the active brand from APP_BRAND, honoring the legacy
// EXPO_PUBLIC_APP_BRAND spelling. Unknown or empty values fall back to the
// default brand.
func Brand() BrandConfig {
	key := Config("APP_BRAND")
	if key == "" {
		key = Config("EXPO_PUBLIC_APP_BRAND")
	}
	if b, ok := brands[key]; ok {
		return b
	}
	return brands[DefaultBrand]
}

// BrandByName exists for tests and tooling; ok reports whether the brand
// is registered.
func BrandByName(name string) (BrandConfig, bool) {
	b, ok := brands[name]
	return b, ok
}
