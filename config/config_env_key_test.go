package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"pubsub": map[string]any{
			"topicId": "",
		},
		"secretKey": map[string]any{
			"access": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "PUBSUB_TOPICID", want: "pubsub.topicId"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestCanonicalizeEnvKey_NestedSections(t *testing.T) {
	existing := map[string]any{
		"route": map[string]any{
			"statusCacheTTL": "30s",
			"sweepSpec":      "59 59 23 * * *",
		},
		"notifier": map[string]any{
			"dailyScheduleCap": 3,
		},
		"pubsub": map[string]any{
			"kafkaBrokers": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "ROUTE_STATUSCACHETTL", want: "route.statusCacheTTL"},
		{envKey: "ROUTE_SWEEPSPEC", want: "route.sweepSpec"},
		{envKey: "NOTIFIER_DAILYSCHEDULECAP", want: "notifier.dailyScheduleCap"},
		{envKey: "PUBSUB_KAFKABROKERS", want: "pubsub.kafkaBrokers"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)

	if cfg.Notifier.ProximityRadiusMeters != 400 {
		t.Fatalf("ProximityRadiusMeters = %v, want 400", cfg.Notifier.ProximityRadiusMeters)
	}
	if cfg.Notifier.DailyScheduleCap != 3 {
		t.Fatalf("DailyScheduleCap = %d, want 3", cfg.Notifier.DailyScheduleCap)
	}
	if cfg.Route.StatusCacheTTL.Seconds() != 30 {
		t.Fatalf("StatusCacheTTL = %v, want 30s", cfg.Route.StatusCacheTTL)
	}
	if !cfg.Route.SweepEnabled || cfg.Route.SweepSpec != "59 59 23 * * *" || cfg.Route.FallbackSpec != "0 0 * * * *" {
		t.Fatalf("unexpected route defaults: %+v", cfg.Route)
	}
}
