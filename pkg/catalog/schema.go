package catalog

import "github.com/invopop/jsonschema"

// Schema описывает формат YAML-файла каталога для редакторов и CI.
func Schema() *jsonschema.Schema {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties: false,
	}
	schema := reflector.Reflect(new(FileDefinitions))
	schema.Title = "Bestiary Theme Catalog"
	schema.Description = "Validates designer-authored theme files (effects, drops, AI behavior)"
	return schema
}
