package forge

import (
	"bestiary/internal/domain"
	"bestiary/pkg/logger"
	"bestiary/pkg/utils"
	"slices"
	"strings"

	"github.com/sirupsen/logrus"
)

// Builder предоставляет fluent API для сборки врага.
// Все сеттеры возвращают тот же билдер, порядок вызовов произвольный.
//
// После успешного Build билдер считается израсходованным: повторный Build
// вернет ошибку, пока не вызван Reset.
type Builder interface {
	SetName(name string) Builder
	SetHealth(health int) Builder
	SetDamage(damage int) Builder
	SetDefense(defense int) Builder
	SetSpeed(speed int) Builder
	SetElement(element domain.Element) Builder

	// AddEffect добавляет один эффект в конец списка (пустой эффект игнорируется).
	AddEffect(effect domain.Effect) Builder
	// SetEffects заменяет весь список эффектов.
	SetEffects(effects []domain.Effect) Builder

	SetDropTable(drops *domain.DropTable) Builder
	SetAIBehavior(ai domain.AIBehavior) Builder

	// AddStage задает порог здоровья для стадии.
	// Билдеры без поддержки стадий принимают вызов и ничего не делают.
	AddStage(stage, threshold int) Builder
	SupportsStages() bool

	// Reset возвращает билдер в исходное состояние.
	Reset() Builder
	Build() (*Entity, error)
}

// draft - накопленные атрибуты, общие для всех билдеров
type draft struct {
	name    string
	stats   Stats
	element domain.Element
	ai      domain.AIBehavior
	effects []domain.Effect
	drops   *domain.DropTable

	consumed bool
}

func newDraft() draft {
	return draft{
		element: domain.DefaultElement,
		ai:      domain.DefaultAIBehavior,
		effects: make([]domain.Effect, 0),
	}
}

func (d *draft) addEffect(effect domain.Effect) {
	if effect.IsZero() {
		return
	}
	d.effects = append(d.effects, effect)
}

func (d *draft) setEffects(effects []domain.Effect) {
	d.effects = make([]domain.Effect, 0, len(effects))
	for _, eff := range effects {
		d.addEffect(eff)
	}
}

// validate проверяет обязательные поля в фиксированном порядке:
// сначала билдер не израсходован, затем имя, затем здоровье.
func (d *draft) validate() error {
	if d.consumed {
		return domain.NewValidationError(domain.RuleBuilderConsumed, "builder already produced an entity, call Reset")
	}
	if strings.TrimSpace(d.name) == "" {
		return domain.NewValidationError(domain.RuleNameRequired, "enemy name is mandatory")
	}
	if d.stats.Health <= 0 {
		return domain.NewValidationError(domain.RuleHealthPositive, "enemy health must be positive, got %d", d.stats.Health)
	}
	return nil
}

// finalize собирает сущность. Эффекты копируются, таблица добычи
// передается сущности (билдер ее забывает), билдер помечается израсходованным.
func (d *draft) finalize(kind domain.EntityKind) *Entity {
	e := &Entity{
		id:      utils.GenerateID(),
		name:    d.name,
		kind:    kind,
		stats:   d.stats,
		element: d.element,
		ai:      d.ai,
		effects: slices.Clone(d.effects),
		drops:   d.drops,
	}
	if e.effects == nil {
		e.effects = make([]domain.Effect, 0)
	}

	d.drops = nil
	d.consumed = true

	logger.Log.WithFields(logrus.Fields{
		"id":      e.id,
		"name":    e.name,
		"kind":    kind,
		"effects": len(e.effects),
	}).Debug("entity built")

	return e
}
