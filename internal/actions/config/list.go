package config

import (
	"github.com/footprint-tools/argtree/internal/domain"
	"github.com/footprint-tools/argtree/internal/ui/style"
	"github.com/footprint-tools/argtree/internal/values"
)

// List prints every visible key with its effective value, grouped by section.
func List(_ values.Map, deps Deps) error {
	configMap, err := deps.GetAll()
	if err != nil {
		return err
	}

	for i, section := range domain.ConfigSections() {
		if i > 0 {
			_, _ = deps.Println()
		}
		_, _ = deps.Println(style.Header(section))

		for _, key := range domain.VisibleConfigKeys() {
			if key.Section != section {
				continue
			}
			if value, exists := configMap[key.Name]; exists {
				_, _ = deps.Printf("  %s=%s\n", style.Name(key.Name), value)
			}
		}
	}

	return nil
}
