package catalog

import (
	"bestiary/internal/domain"
	"bestiary/pkg/forge"
	"errors"
	"fmt"
	"strings"
)

// EffectDefinition - описание эффекта в каталоге
type EffectDefinition struct {
	Name        string `yaml:"name" json:"name" jsonschema:"minLength=1"`
	Potency     int    `yaml:"potency" json:"potency" jsonschema:"minimum=0"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
}

// DropDefinition - описание таблицы добычи в каталоге.
// Theme по умолчанию берется из имени темы.
type DropDefinition struct {
	Theme      string   `yaml:"theme,omitempty" json:"theme,omitempty"`
	Items      []string `yaml:"items" json:"items"`
	Gold       int      `yaml:"gold" json:"gold" jsonschema:"minimum=0"`
	Experience int      `yaml:"experience" json:"experience" jsonschema:"minimum=0"`
}

// Theme - тематический набор компонентов (огонь, лед, тень...).
// Реализует forge.Catalog: каждый вызов отдает свежие значения,
// сама тема при этом не меняется.
type Theme struct {
	Name       string             `yaml:"name" json:"name" jsonschema:"minLength=1"`
	ElementTag string             `yaml:"element,omitempty" json:"element,omitempty"`
	Behavior   string             `yaml:"ai" json:"ai"`
	Abilities  []EffectDefinition `yaml:"effects" json:"effects" jsonschema:"minItems=1"`
	Loot       DropDefinition     `yaml:"drops" json:"drops"`
}

var _ forge.Catalog = (*Theme)(nil)

// Effects строит новый список эффектов темы.
// Методы каталога безопасны для nil: пустая тема дает пустые компоненты.
func (t *Theme) Effects() []domain.Effect {
	if t == nil {
		return []domain.Effect{}
	}
	out := make([]domain.Effect, 0, len(t.Abilities))
	for _, a := range t.Abilities {
		out = append(out, domain.NewEffect(a.Name, a.Potency, a.Description))
	}
	return out
}

// DropTable строит новую таблицу добычи темы.
func (t *Theme) DropTable() *domain.DropTable {
	if t == nil {
		return nil
	}
	tag := t.Loot.Theme
	if tag == "" {
		tag = t.Name
	}
	return domain.NewDropTable(tag, t.Loot.Items, t.Loot.Gold, t.Loot.Experience)
}

func (t *Theme) AIBehavior() domain.AIBehavior {
	if t == nil {
		return domain.DefaultAIBehavior
	}
	return domain.ParseAIBehavior(t.Behavior)
}

// Element - стихия темы (каталог сам ее билдеру не передает,
// это делает вызывающий код при желании).
func (t *Theme) Element() domain.Element {
	if t == nil {
		return domain.DefaultElement
	}
	return domain.ParseElement(t.ElementTag)
}

// Validate проверяет определение темы, загруженное из файла.
func (t *Theme) Validate() error {
	var errs []error

	if strings.TrimSpace(t.Name) == "" {
		errs = append(errs, errors.New("name is required"))
	}
	if len(t.Abilities) == 0 {
		errs = append(errs, errors.New("at least one effect is required"))
	}
	for i, a := range t.Abilities {
		if strings.TrimSpace(a.Name) == "" {
			errs = append(errs, fmt.Errorf("effects[%d]: name is required", i))
		}
		if a.Potency < 0 {
			errs = append(errs, fmt.Errorf("effects[%d]: potency must not be negative", i))
		}
	}
	if t.Loot.Gold < 0 {
		errs = append(errs, errors.New("drops.gold must not be negative"))
	}
	if t.Loot.Experience < 0 {
		errs = append(errs, errors.New("drops.experience must not be negative"))
	}

	if len(errs) > 0 {
		return fmt.Errorf("theme %q: %w", t.Name, errors.Join(errs...))
	}
	return nil
}

// key - ключ темы в библиотеке
func (t *Theme) key() string {
	return strings.ToLower(strings.TrimSpace(t.Name))
}
