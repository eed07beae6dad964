package domain

// Значения по умолчанию для новых сущностей
const (
	DefaultElement    = ElementNone
	DefaultAIBehavior = AINeutral
)

// Стадии (фазы) босса.
// Стадии 1..3 всегда присутствуют у staged-сущности: если не заданы явно,
// порог считается от здоровья делением на соответствующий делитель.
const (
	FirstStage       = 1
	LastDefaultStage = 3
)

// stageDivisors - делитель здоровья для порога стадии по умолчанию
var stageDivisors = map[int]int{
	1: 1, // полное здоровье
	2: 2, // половина
	3: 4, // четверть
}

// DefaultStageThreshold возвращает порог по умолчанию для стадии 1..3.
// ok=false для стадий без значения по умолчанию.
func DefaultStageThreshold(stage, health int) (threshold int, ok bool) {
	div, ok := stageDivisors[stage]
	if !ok {
		return 0, false
	}
	return health / div, true
}
