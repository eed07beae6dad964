package domain

import "strings"

// Element - стихия врага. Набор открытый: каталоги могут вводить свои теги,
// константы ниже - только встроенные.
type Element string

const (
	ElementNone   Element = "NONE"
	ElementFire   Element = "FIRE"
	ElementIce    Element = "ICE"
	ElementShadow Element = "SHADOW"
)

// AIBehavior - тег поведения ИИ.
type AIBehavior string

const (
	AINeutral    AIBehavior = "NEUTRAL"
	AIAggressive AIBehavior = "AGGRESSIVE"
	AIDefensive  AIBehavior = "DEFENSIVE"
	AITactical   AIBehavior = "TACTICAL"
)

// EntityKind - вариант сущности (какой билдер ее собрал)
type EntityKind string

const (
	KindBasic  EntityKind = "BASIC"
	KindStaged EntityKind = "STAGED"
)

// ParseElement нормализует строку из конфигов/YAML.
// Пустая строка дает ElementNone.
func ParseElement(s string) Element {
	s = strings.ToUpper(strings.TrimSpace(s))
	if s == "" {
		return ElementNone
	}
	return Element(s)
}

// ParseAIBehavior - то же для тега ИИ, пустая строка дает AINeutral.
func ParseAIBehavior(s string) AIBehavior {
	s = strings.ToUpper(strings.TrimSpace(s))
	if s == "" {
		return AINeutral
	}
	return AIBehavior(s)
}

func (e Element) String() string    { return string(e) }
func (a AIBehavior) String() string { return string(a) }
func (k EntityKind) String() string { return string(k) }
