package forge

import (
	"bestiary/internal/domain"
	"maps"
	"slices"
)

// StagedBuilder собирает боссов со стадиями (драконы, повелители демонов).
// Кроме стадий умеет дополнительные свойства: полет, дыхание, размах крыльев.
type StagedBuilder struct {
	d      draft
	stages map[int]int
	traits Traits
}

var _ Builder = (*StagedBuilder)(nil)

func NewStagedBuilder() *StagedBuilder {
	return &StagedBuilder{
		d:      newDraft(),
		stages: make(map[int]int),
	}
}

func (b *StagedBuilder) SetName(name string) Builder {
	b.d.name = name
	return b
}

func (b *StagedBuilder) SetHealth(health int) Builder {
	b.d.stats.Health = health
	return b
}

func (b *StagedBuilder) SetDamage(damage int) Builder {
	b.d.stats.Damage = damage
	return b
}

func (b *StagedBuilder) SetDefense(defense int) Builder {
	b.d.stats.Defense = defense
	return b
}

func (b *StagedBuilder) SetSpeed(speed int) Builder {
	b.d.stats.Speed = speed
	return b
}

func (b *StagedBuilder) SetElement(element domain.Element) Builder {
	b.d.element = element
	return b
}

func (b *StagedBuilder) AddEffect(effect domain.Effect) Builder {
	b.d.addEffect(effect)
	return b
}

func (b *StagedBuilder) SetEffects(effects []domain.Effect) Builder {
	b.d.setEffects(effects)
	return b
}

func (b *StagedBuilder) SetDropTable(drops *domain.DropTable) Builder {
	b.d.drops = drops
	return b
}

func (b *StagedBuilder) SetAIBehavior(ai domain.AIBehavior) Builder {
	b.d.ai = ai
	return b
}

// AddStage запоминает порог стадии. Повторный вызов для той же стадии
// перезаписывает порог. Проверка значений - в Build.
func (b *StagedBuilder) AddStage(stage, threshold int) Builder {
	b.stages[stage] = threshold
	return b
}

func (b *StagedBuilder) SupportsStages() bool { return true }

func (b *StagedBuilder) SetCanFly(canFly bool) *StagedBuilder {
	b.traits.CanFly = canFly
	return b
}

func (b *StagedBuilder) SetBreathAttack(breath bool) *StagedBuilder {
	b.traits.BreathAttack = breath
	return b
}

func (b *StagedBuilder) SetWingspan(wingspan int) *StagedBuilder {
	b.traits.Wingspan = wingspan
	return b
}

func (b *StagedBuilder) Reset() Builder {
	b.d = newDraft()
	b.stages = make(map[int]int)
	b.traits = Traits{}
	return b
}

// Build проверяет (по порядку) имя, здоровье, наличие хотя бы одной стадии
// и корректность каждой стадии. Стадии 1..3, не заданные явно,
// получают пороги по умолчанию: health, health/2, health/4 (целочисленно).
// Порог не бывает меньше 1: при health < 4 (стадия 3) и health < 2 (стадия 2)
// значение по умолчанию равно 1, а не floor(health/div).
func (b *StagedBuilder) Build() (*Entity, error) {
	if err := b.d.validate(); err != nil {
		return nil, err
	}
	if len(b.stages) == 0 {
		return nil, domain.NewValidationError(domain.RuleStageRequired, "boss must have at least one stage")
	}
	for _, n := range slices.Sorted(maps.Keys(b.stages)) {
		if n < domain.FirstStage {
			return nil, domain.NewValidationError(domain.RuleStageThresholdPositive, "stage number must be >= %d, got %d", domain.FirstStage, n)
		}
		if t := b.stages[n]; t <= 0 {
			return nil, domain.NewValidationError(domain.RuleStageThresholdPositive, "stage %d threshold must be positive, got %d", n, t)
		}
	}

	stages := maps.Clone(b.stages)
	for n := domain.FirstStage; n <= domain.LastDefaultStage; n++ {
		if _, ok := stages[n]; ok {
			continue
		}
		// У очень слабых боссов health/4 может дать 0, порог не бывает меньше 1
		if t, ok := domain.DefaultStageThreshold(n, b.d.stats.Health); ok {
			stages[n] = max(t, 1)
		}
	}

	e := b.d.finalize(domain.KindStaged)
	e.stages = stages
	e.traits = b.traits
	return e, nil
}
