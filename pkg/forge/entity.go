package forge

import (
	"bestiary/internal/domain"
	"bestiary/pkg/utils"
	"fmt"
	"maps"
	"math"
	"slices"
	"strings"
)

// Stats - базовые характеристики врага
type Stats struct {
	Health  int `json:"health"`
	Damage  int `json:"damage"`
	Defense int `json:"defense"`
	Speed   int `json:"speed"`
}

// scaled умножает все четыре характеристики с округлением до ближайшего целого.
// ok=false, если хотя бы одно значение не помещается в int.
func (s Stats) scaled(factor float64) (Stats, bool) {
	var out Stats
	for _, f := range []struct {
		src int
		dst *int
	}{
		{s.Health, &out.Health},
		{s.Damage, &out.Damage},
		{s.Defense, &out.Defense},
		{s.Speed, &out.Speed},
	} {
		v, ok := scale(f.src, factor)
		if !ok {
			return s, false
		}
		*f.dst = v
	}
	return out, true
}

// float64(math.MaxInt) округляется вверх до 2^63, поэтому граница строгая
func scale(v int, factor float64) (int, bool) {
	r := math.Round(float64(v) * factor)
	if r < float64(math.MinInt) || r >= float64(math.MaxInt) {
		return 0, false
	}
	return int(r), true
}

// Stage - порог здоровья, на котором у босса начинается стадия Number.
type Stage struct {
	Number    int `json:"number"`
	Threshold int `json:"threshold"`
}

// Traits - дополнительные свойства staged-сущностей (у драконов и прочих боссов)
type Traits struct {
	CanFly       bool `json:"canFly"`
	BreathAttack bool `json:"breathAttack"`
	Wingspan     int  `json:"wingspan"`
}

// Prototype - общий контракт всех вариантов сущности.
// Клонирование и масштабирование доступны без проверки конкретного вида.
type Prototype interface {
	Clone() *Entity
	Rescale(factor float64) error
}

var (
	_ Prototype              = (*Entity)(nil)
	_ domain.Cloner[*Entity] = (*Entity)(nil)
)

// Entity - готовый враг. Создается только билдером (Build),
// после этого единственная допустимая мутация - Rescale.
//
// Эффекты и таблица добычи принадлежат сущности эксклюзивно:
// геттеры отдают копии, Clone строит глубокую копию.
type Entity struct {
	id   string
	name string
	kind domain.EntityKind

	stats   Stats
	element domain.Element
	ai      domain.AIBehavior

	effects []domain.Effect
	drops   *domain.DropTable

	// Только для KindStaged
	stages map[int]int
	traits Traits
}

// ID - идентификатор экземпляра. Каждый клон получает новый ID,
// в структурное равенство он не входит.
func (e *Entity) ID() string                    { return e.id }
func (e *Entity) Name() string                  { return e.name }
func (e *Entity) Kind() domain.EntityKind       { return e.kind }
func (e *Entity) Stats() Stats                  { return e.stats }
func (e *Entity) Health() int                   { return e.stats.Health }
func (e *Entity) Damage() int                   { return e.stats.Damage }
func (e *Entity) Defense() int                  { return e.stats.Defense }
func (e *Entity) Speed() int                    { return e.stats.Speed }
func (e *Entity) Element() domain.Element       { return e.element }
func (e *Entity) AIBehavior() domain.AIBehavior { return e.ai }
func (e *Entity) Traits() Traits                { return e.traits }

// Effects возвращает копию списка эффектов в порядке добавления.
func (e *Entity) Effects() []domain.Effect {
	return slices.Clone(e.effects)
}

// DropTable возвращает копию таблицы добычи (nil, если добычи нет).
func (e *Entity) DropTable() *domain.DropTable {
	return e.drops.Clone()
}

// Stages возвращает стадии, отсортированные по номеру.
// У BASIC-сущностей стадий нет.
func (e *Entity) Stages() []Stage {
	out := make([]Stage, 0, len(e.stages))
	for _, n := range slices.Sorted(maps.Keys(e.stages)) {
		out = append(out, Stage{Number: n, Threshold: e.stages[n]})
	}
	return out
}

// Stage возвращает порог стадии n.
func (e *Entity) Stage(n int) (int, bool) {
	t, ok := e.stages[n]
	return t, ok
}

// Clone - глубокая копия. Характеристики копируются по значению,
// эффекты клонируются поэлементно в новый слайс, таблица добычи клонируется,
// стадии копируются в новую карту.
func (e *Entity) Clone() *Entity {
	c := &Entity{
		id:      utils.GenerateID(),
		name:    e.name,
		kind:    e.kind,
		stats:   e.stats,
		element: e.element,
		ai:      e.ai,
		effects: domain.CloneAll(e.effects),
		drops:   e.drops.Clone(),
		traits:  e.traits,
	}
	if e.stages != nil {
		c.stages = maps.Clone(e.stages)
	}
	return c
}

// Rescale умножает здоровье, урон, защиту и скорость на factor
// с округлением до ближайшего целого. Пороги стадий не меняются.
// factor должен быть положительным конечным числом, а результат
// помещаться в int, иначе сущность остается без изменений.
func (e *Entity) Rescale(factor float64) error {
	if math.IsNaN(factor) || math.IsInf(factor, 0) || factor <= 0 {
		return domain.NewValidationError(domain.RuleFactorPositive, "rescale factor must be positive, got %v", factor)
	}
	scaled, ok := e.stats.scaled(factor)
	if !ok {
		return domain.NewValidationError(domain.RuleFactorOverflow, "rescale by %v overflows stats of %s", factor, e.name)
	}
	e.stats = scaled
	return nil
}

// Equal - структурное равенство (без учета ID).
func (e *Entity) Equal(other *Entity) bool {
	if e == nil || other == nil {
		return e == other
	}
	return e.name == other.name &&
		e.kind == other.kind &&
		e.stats == other.stats &&
		e.element == other.element &&
		e.ai == other.ai &&
		e.traits == other.traits &&
		slices.Equal(e.effects, other.effects) &&
		e.drops.Equal(other.drops) &&
		maps.Equal(e.stages, other.stages)
}

// Summary - текст для вывода в консоль/лог
func (e *Entity) Summary() string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "=== %s (%s) ===\n", e.name, e.kind)
	fmt.Fprintf(&sb, "Health: %d | Damage: %d | Defense: %d | Speed: %d\n",
		e.stats.Health, e.stats.Damage, e.stats.Defense, e.stats.Speed)
	fmt.Fprintf(&sb, "Element: %s | AI: %s\n", e.element, e.ai)

	fmt.Fprintf(&sb, "Effects (%d):\n", len(e.effects))
	for _, eff := range e.effects {
		fmt.Fprintf(&sb, "  - %s: %s\n", eff.Name(), eff.Description())
	}

	if e.kind == domain.KindStaged {
		fmt.Fprintf(&sb, "Stages: %d\n", len(e.stages))
		for _, st := range e.Stages() {
			fmt.Fprintf(&sb, "  Stage %d: triggers at %d HP\n", st.Number, st.Threshold)
		}
		fmt.Fprintf(&sb, "Can Fly: %t | Breath Attack: %t | Wingspan: %d\n",
			e.traits.CanFly, e.traits.BreathAttack, e.traits.Wingspan)
	}

	sb.WriteString(e.drops.Summary())
	return sb.String()
}

func (e *Entity) String() string {
	return fmt.Sprintf("%s[%s hp=%d dmg=%d def=%d spd=%d]",
		e.name, e.kind, e.stats.Health, e.stats.Damage, e.stats.Defense, e.stats.Speed)
}
