package snapshot

import "github.com/gofiber/fiber/v2"

// Feature wires the snapshot service into the HTTP server through the loader.
type Feature struct {
	service *Service
	enabled bool
}

// NewFeature creates the loadable snapshot feature.
func NewFeature(service *Service, enabled bool) *Feature {
	return &Feature{service: service, enabled: enabled}
}

// Name returns the feature name.
func (f *Feature) Name() string { return "snapshot" }

// IsEnabled reports whether the feature should be loaded.
func (f *Feature) IsEnabled() bool { return f.enabled }

// Load registers the snapshot routes.
func (f *Feature) Load(app fiber.Router) error {
	NewHandler(f.service).RegisterRoutes(app)
	return nil
}
