package forge

import "bestiary/internal/domain"

// BasicBuilder собирает простых врагов (гоблины, скелеты, орки).
// Стадий у таких врагов нет: AddStage принимается и игнорируется.
type BasicBuilder struct {
	d draft
}

var _ Builder = (*BasicBuilder)(nil)

func NewBasicBuilder() *BasicBuilder {
	return &BasicBuilder{d: newDraft()}
}

func (b *BasicBuilder) SetName(name string) Builder {
	b.d.name = name
	return b
}

func (b *BasicBuilder) SetHealth(health int) Builder {
	b.d.stats.Health = health
	return b
}

func (b *BasicBuilder) SetDamage(damage int) Builder {
	b.d.stats.Damage = damage
	return b
}

func (b *BasicBuilder) SetDefense(defense int) Builder {
	b.d.stats.Defense = defense
	return b
}

func (b *BasicBuilder) SetSpeed(speed int) Builder {
	b.d.stats.Speed = speed
	return b
}

func (b *BasicBuilder) SetElement(element domain.Element) Builder {
	b.d.element = element
	return b
}

func (b *BasicBuilder) AddEffect(effect domain.Effect) Builder {
	b.d.addEffect(effect)
	return b
}

func (b *BasicBuilder) SetEffects(effects []domain.Effect) Builder {
	b.d.setEffects(effects)
	return b
}

func (b *BasicBuilder) SetDropTable(drops *domain.DropTable) Builder {
	b.d.drops = drops
	return b
}

func (b *BasicBuilder) SetAIBehavior(ai domain.AIBehavior) Builder {
	b.d.ai = ai
	return b
}

// AddStage - no-op: у простых врагов нет стадий, это не ошибка.
func (b *BasicBuilder) AddStage(stage, threshold int) Builder {
	return b
}

func (b *BasicBuilder) SupportsStages() bool { return false }

func (b *BasicBuilder) Reset() Builder {
	b.d = newDraft()
	return b
}

// Build проверяет имя и здоровье и возвращает BASIC-сущность.
func (b *BasicBuilder) Build() (*Entity, error) {
	if err := b.d.validate(); err != nil {
		return nil, err
	}
	return b.d.finalize(domain.KindBasic), nil
}
