package forge

import (
	"bestiary/internal/domain"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requireRule(t *testing.T, err error, rule string) {
	t.Helper()

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)

	var ve *domain.ValidationError
	require.True(t, errors.As(err, &ve), "expected *ValidationError, got %T", err)
	assert.Equal(t, rule, ve.Rule)
}

func TestBuild_Validation(t *testing.T) {
	tests := []struct {
		name    string
		builder func() Builder
		rule    string
	}{
		{
			name:    "basic without name",
			builder: func() Builder { return NewBasicBuilder().SetHealth(100) },
			rule:    domain.RuleNameRequired,
		},
		{
			name:    "basic blank name",
			builder: func() Builder { return NewBasicBuilder().SetName("   ").SetHealth(100) },
			rule:    domain.RuleNameRequired,
		},
		{
			name:    "basic zero health",
			builder: func() Builder { return NewBasicBuilder().SetName("Goblin") },
			rule:    domain.RuleHealthPositive,
		},
		{
			name:    "basic negative health",
			builder: func() Builder { return NewBasicBuilder().SetName("Goblin").SetHealth(-1) },
			rule:    domain.RuleHealthPositive,
		},
		{
			// Имя проверяется раньше здоровья
			name:    "name checked before health",
			builder: func() Builder { return NewBasicBuilder().SetHealth(0) },
			rule:    domain.RuleNameRequired,
		},
		{
			name:    "staged without stages",
			builder: func() Builder { return NewStagedBuilder().SetName("Dragon").SetHealth(5000) },
			rule:    domain.RuleStageRequired,
		},
		{
			name:    "staged health checked before stages",
			builder: func() Builder { return NewStagedBuilder().SetName("Dragon") },
			rule:    domain.RuleHealthPositive,
		},
		{
			name: "staged non-positive threshold",
			builder: func() Builder {
				return NewStagedBuilder().SetName("Dragon").SetHealth(5000).AddStage(1, 5000).AddStage(2, 0)
			},
			rule: domain.RuleStageThresholdPositive,
		},
		{
			name: "staged invalid stage number",
			builder: func() Builder {
				return NewStagedBuilder().SetName("Dragon").SetHealth(5000).AddStage(0, 100)
			},
			rule: domain.RuleStageThresholdPositive,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, err := tt.builder().Build()
			assert.Nil(t, e, "failed build must not return an entity")
			requireRule(t, err, tt.rule)
		})
	}
}

func TestBasicBuilder_Defaults(t *testing.T) {
	e, err := NewBasicBuilder().SetName("Goblin").SetHealth(100).Build()
	require.NoError(t, err)

	assert.Equal(t, "Goblin", e.Name())
	assert.Equal(t, domain.KindBasic, e.Kind())
	assert.Equal(t, Stats{Health: 100}, e.Stats())
	assert.Equal(t, domain.ElementNone, e.Element())
	assert.Equal(t, domain.AINeutral, e.AIBehavior())
	assert.Empty(t, e.Effects())
	assert.Nil(t, e.DropTable())
	assert.Empty(t, e.Stages())
	assert.Equal(t, Traits{}, e.Traits())
	assert.NotEmpty(t, e.ID())
}

func TestBasicBuilder_AddStageIsNoOp(t *testing.T) {
	b := NewBasicBuilder()
	assert.False(t, b.SupportsStages())

	e, err := b.SetName("Skeleton").SetHealth(80).AddStage(1, 100).Build()
	require.NoError(t, err, "AddStage on a basic builder must be accepted")

	assert.Empty(t, e.Stages())
	_, ok := e.Stage(1)
	assert.False(t, ok)
}

func TestBuilder_FluentOrderIndependent(t *testing.T) {
	fire := domain.NewEffect("Flame Breath", 150, "cone of fire")
	drops := domain.NewDropTable("Fire", []string{"Fire Gem"}, 500, 250)

	a, err := NewBasicBuilder().
		SetName("Imp").SetHealth(40).SetDamage(7).SetDefense(1).SetSpeed(30).
		SetElement(domain.ElementFire).AddEffect(fire).SetDropTable(drops).
		SetAIBehavior(domain.AIAggressive).
		Build()
	require.NoError(t, err)

	b, err := NewBasicBuilder().
		SetAIBehavior(domain.AIAggressive).SetDropTable(drops.Clone()).AddEffect(fire).
		SetElement(domain.ElementFire).SetSpeed(30).SetDefense(1).SetDamage(7).SetHealth(40).
		SetName("Imp").
		Build()
	require.NoError(t, err)

	assert.True(t, a.Equal(b))
	assert.NotEqual(t, a.ID(), b.ID())
}

func TestBuilder_Effects(t *testing.T) {
	e1 := domain.NewEffect("A", 1, "a")
	e2 := domain.NewEffect("B", 2, "b")
	e3 := domain.NewEffect("C", 3, "c")

	t.Run("add keeps insertion order and skips zero", func(t *testing.T) {
		e, err := NewBasicBuilder().SetName("x").SetHealth(1).
			AddEffect(e2).AddEffect(domain.Effect{}).AddEffect(e1).
			Build()
		require.NoError(t, err)
		assert.Equal(t, []domain.Effect{e2, e1}, e.Effects())
	})

	t.Run("set replaces", func(t *testing.T) {
		e, err := NewBasicBuilder().SetName("x").SetHealth(1).
			AddEffect(e1).SetEffects([]domain.Effect{e3, e2}).
			Build()
		require.NoError(t, err)
		assert.Equal(t, []domain.Effect{e3, e2}, e.Effects())
	})

	t.Run("set nil clears", func(t *testing.T) {
		e, err := NewBasicBuilder().SetName("x").SetHealth(1).
			AddEffect(e1).SetEffects(nil).
			Build()
		require.NoError(t, err)
		assert.NotNil(t, e.Effects())
		assert.Empty(t, e.Effects())
	})

	t.Run("caller slice is not aliased", func(t *testing.T) {
		list := []domain.Effect{e1, e2}
		b := NewBasicBuilder().SetName("x").SetHealth(1).SetEffects(list)
		list[0] = e3

		e, err := b.Build()
		require.NoError(t, err)
		assert.Equal(t, []domain.Effect{e1, e2}, e.Effects())
	})
}

func TestBuilder_ConsumedAfterBuild(t *testing.T) {
	b := NewBasicBuilder()
	first, err := b.SetName("Orc").SetHealth(120).AddEffect(domain.NewEffect("Smash", 10, "")).Build()
	require.NoError(t, err)

	// Дальнейшие вызовы не меняют уже собранную сущность
	b.AddEffect(domain.NewEffect("Rage", 5, "")).SetHealth(1)
	assert.Len(t, first.Effects(), 1)
	assert.Equal(t, 120, first.Health())

	_, err = b.Build()
	requireRule(t, err, domain.RuleBuilderConsumed)

	// После Reset билдер снова пригоден
	second, err := b.Reset().SetName("Orc").SetHealth(90).Build()
	require.NoError(t, err)
	assert.Equal(t, 90, second.Health())
	assert.Empty(t, second.Effects())
}

func TestBuilder_DropTableMovedToEntity(t *testing.T) {
	b := NewStagedBuilder()
	drops := domain.NewDropTable("Ice", []string{"Ice Gem"}, 450, 225)

	e, err := b.SetName("Wyrm").SetHealth(400).AddStage(1, 400).SetDropTable(drops).Build()
	require.NoError(t, err)

	assert.True(t, drops.Equal(e.DropTable()))
	assert.Nil(t, b.d.drops, "builder must forget the drop table after build")
}

func TestStagedBuilder_DefaultStages(t *testing.T) {
	// Задана только первая стадия: 2 и 3 считаются от реального здоровья
	e, err := NewStagedBuilder().SetName("Lich").SetHealth(1001).AddStage(1, 999).Build()
	require.NoError(t, err)

	assert.Equal(t, domain.KindStaged, e.Kind())
	assert.Equal(t, []Stage{{1, 999}, {2, 500}, {3, 250}}, e.Stages())

	t1, _ := e.Stage(1)
	t2, _ := e.Stage(2)
	t3, _ := e.Stage(3)
	assert.Equal(t, 999, t1)
	assert.Equal(t, e.Health()/2, t2)
	assert.Equal(t, e.Health()/4, t3)
}

func TestStagedBuilder_ExplicitAndExtraStages(t *testing.T) {
	e, err := NewStagedBuilder().SetName("Hydra").SetHealth(800).
		AddStage(3, 100).AddStage(5, 50).AddStage(3, 150).
		Build()
	require.NoError(t, err)

	// Стадия 3 перезаписана, стадия 5 сохранена, 1 и 2 по умолчанию
	assert.Equal(t, []Stage{{1, 800}, {2, 400}, {3, 150}, {5, 50}}, e.Stages())
}

func TestStagedBuilder_TinyHealthThresholdsStayPositive(t *testing.T) {
	e, err := NewStagedBuilder().SetName("Sprite").SetHealth(2).AddStage(1, 2).Build()
	require.NoError(t, err)

	for _, st := range e.Stages() {
		assert.Positive(t, st.Threshold, "stage %d", st.Number)
	}

	// 3/2=1, 3/4=0 -> 1
	e, err = NewStagedBuilder().SetName("Imp").SetHealth(3).AddStage(1, 3).Build()
	require.NoError(t, err)
	assert.Equal(t, []Stage{{1, 3}, {2, 1}, {3, 1}}, e.Stages())
}

func TestStagedBuilder_Traits(t *testing.T) {
	b := NewStagedBuilder()
	b.SetCanFly(true).SetBreathAttack(true).SetWingspan(40)

	e, err := b.SetName("Fire Dragon").SetHealth(5000).AddStage(1, 5000).Build()
	require.NoError(t, err)
	assert.Equal(t, Traits{CanFly: true, BreathAttack: true, Wingspan: 40}, e.Traits())

	// Reset сбрасывает стадии и свойства
	b.Reset()
	_, err = b.SetName("Fire Dragon").SetHealth(5000).Build()
	requireRule(t, err, domain.RuleStageRequired)
	assert.Equal(t, Traits{}, b.traits)
}

func TestScenario_FireDragon(t *testing.T) {
	e, err := NewStagedBuilder().
		SetName("Fire Dragon").
		SetHealth(5000).
		AddStage(1, 5000).
		AddStage(2, 2500).
		AddStage(3, 1250).
		Build()
	require.NoError(t, err)

	assert.Equal(t, []Stage{{1, 5000}, {2, 2500}, {3, 1250}}, e.Stages())
}
