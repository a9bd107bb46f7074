package registry

import (
	_ "embed"

	"gopkg.in/yaml.v3"
)

//go:embed archetypes.yaml
var defaultArchetypeData []byte

// archetypeTable maps an equipment ini section name to the kind
// string equipment.go's builder switches on.
type archetypeTable struct {
	Equipment map[string]string `yaml:"equipment"`
}

func loadArchetypeTable(data []byte) (archetypeTable, error) {
	var t archetypeTable
	if err := yaml.Unmarshal(data, &t); err != nil {
		return archetypeTable{}, err
	}
	return t, nil
}

// WithArchetypeData overrides the built-in section-name/kind table
// with one loaded from a mod's own YAML data, merged over the
// defaults so a mod only needs to list the section names it adds.
func WithArchetypeData(data []byte) Option {
	return func(o *Options) { o.archetypeData = data }
}

func (r *Registry) archetypeTable() archetypeTable {
	table, err := loadArchetypeTable(defaultArchetypeData)
	if err != nil {
		r.log.Warn("built-in archetype table failed to parse", "error", err)
		table = archetypeTable{Equipment: map[string]string{}}
	}
	if r.opts.archetypeData == nil {
		return table
	}
	override, err := loadArchetypeTable(r.opts.archetypeData)
	if err != nil {
		r.log.Warn("custom archetype table failed to parse", "error", err)
		return table
	}
	for k, v := range override.Equipment {
		table.Equipment[k] = v
	}
	return table
}
