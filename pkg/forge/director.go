package forge

import (
	"bestiary/internal/domain"
	"bestiary/pkg/logger"
	"errors"
	"fmt"
	"slices"

	"github.com/sirupsen/logrus"
)

// Имена пресетов директора
const (
	PresetMinion   = "minion"
	PresetElite    = "elite"
	PresetMiniBoss = "mini-boss"
	PresetRaidBoss = "raid-boss"
)

// ErrNilCatalog - пресет вызван без каталога компонентов.
var ErrNilCatalog = errors.New("forge: nil catalog")

// preset - фиксированная последовательность атрибутов
type preset struct {
	name   string
	stats  Stats
	stages []Stage
	staged bool
}

var presets = map[string]preset{
	PresetMinion: {
		name:  "Minion",
		stats: Stats{Health: 50, Damage: 5, Defense: 2, Speed: 20},
	},
	PresetElite: {
		name:  "Elite Enemy",
		stats: Stats{Health: 200, Damage: 20, Defense: 8, Speed: 25},
	},
	PresetMiniBoss: {
		name:   "Mini Boss",
		stats:  Stats{Health: 1000, Damage: 50, Defense: 15, Speed: 30},
		stages: []Stage{{1, 1000}, {2, 500}},
		staged: true,
	},
	PresetRaidBoss: {
		name:   "Ancient Dragon",
		stats:  Stats{Health: 10000, Damage: 200, Defense: 50, Speed: 40},
		stages: []Stage{{1, 10000}, {2, 5000}, {3, 2500}},
		staged: true,
	},
}

// Presets возвращает имена всех пресетов (отсортированы).
func Presets() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Director прогоняет билдер по готовым рецептам.
// Компоненты (эффекты, добыча, ИИ) берутся из переданного каталога,
// характеристики зашиты в пресет: одинаковый каталог и пресет
// всегда дают врагов с одинаковыми характеристиками.
type Director struct {
	builder Builder
	log     logrus.FieldLogger
}

// NewDirector оборачивает билдер. b не может быть nil.
func NewDirector(b Builder) *Director {
	return &Director{
		builder: b,
		log:     logger.Log.WithField("component", "director"),
	}
}

// CreateMinion - слабый рядовой враг.
func (d *Director) CreateMinion(c Catalog) (*Entity, error) {
	return d.Preset(PresetMinion, c)
}

// CreateElite - враг средней сложности.
func (d *Director) CreateElite(c Catalog) (*Entity, error) {
	return d.Preset(PresetElite, c)
}

// CreateMiniBoss - мини-босс с двумя стадиями. Нужен StagedBuilder.
func (d *Director) CreateMiniBoss(c Catalog) (*Entity, error) {
	return d.Preset(PresetMiniBoss, c)
}

// CreateRaidBoss - рейдовый босс с тремя стадиями. Нужен StagedBuilder.
func (d *Director) CreateRaidBoss(c Catalog) (*Entity, error) {
	return d.Preset(PresetRaidBoss, c)
}

// Preset собирает врага по имени пресета.
//
// Последовательность: Reset, имя, здоровье, урон, защита, скорость,
// стадии (для staged-пресетов), эффекты, добыча, ИИ, Build.
// Staged-пресет на билдере без стадий падает сразу, билдер не трогается.
// Простой пресет на StagedBuilder вернет ошибку stage_required из Build.
// Проверяется только nil-интерфейс: типизированный nil-указатель
// передается дальше, и каталог сам решает, что отдать.
func (d *Director) Preset(name string, c Catalog) (*Entity, error) {
	p, ok := presets[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownPreset, name)
	}
	if p.staged && !d.builder.SupportsStages() {
		return nil, &domain.PresetUnsupportedError{Preset: name}
	}
	if c == nil {
		return nil, ErrNilCatalog
	}

	b := d.builder.Reset().
		SetName(p.name).
		SetHealth(p.stats.Health).
		SetDamage(p.stats.Damage).
		SetDefense(p.stats.Defense).
		SetSpeed(p.stats.Speed)

	for _, st := range p.stages {
		b.AddStage(st.Number, st.Threshold)
	}

	e, err := b.
		SetEffects(c.Effects()).
		SetDropTable(c.DropTable()).
		SetAIBehavior(c.AIBehavior()).
		Build()
	if err != nil {
		return nil, fmt.Errorf("preset %s: %w", name, err)
	}

	d.log.WithFields(logrus.Fields{
		"preset": name,
		"id":     e.ID(),
	}).Debug("preset built")

	return e, nil
}
