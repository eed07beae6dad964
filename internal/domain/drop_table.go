package domain

import (
	"fmt"
	"slices"
	"strings"
)

// DropTable - таблица добычи, которая выпадает с врага.
// Порядок предметов значим, дубликаты разрешены.
// Тема используется только в Summary.
type DropTable struct {
	theme      string
	items      []string
	gold       int
	experience int
}

// NewDropTable копирует переданный список предметов,
// так что вызывающий может дальше менять свой слайс.
func NewDropTable(theme string, items []string, gold, experience int) *DropTable {
	return &DropTable{
		theme:      theme,
		items:      cloneItems(items),
		gold:       gold,
		experience: experience,
	}
}

func (d *DropTable) Theme() string   { return d.theme }
func (d *DropTable) Gold() int       { return d.gold }
func (d *DropTable) Experience() int { return d.experience }

// Items возвращает копию списка предметов.
func (d *DropTable) Items() []string {
	return cloneItems(d.items)
}

// Clone - глубокая копия: у клона собственный слайс предметов.
// nil клонируется в nil (у врага может не быть добычи).
func (d *DropTable) Clone() *DropTable {
	if d == nil {
		return nil
	}
	return &DropTable{
		theme:      d.theme,
		items:      cloneItems(d.items),
		gold:       d.gold,
		experience: d.experience,
	}
}

// Equal сравнивает таблицы по содержимому.
func (d *DropTable) Equal(other *DropTable) bool {
	if d == nil || other == nil {
		return d == other
	}
	return d.theme == other.theme &&
		d.gold == other.gold &&
		d.experience == other.experience &&
		slices.Equal(d.items, other.items)
}

// Summary - человекочитаемое описание добычи
func (d *DropTable) Summary() string {
	if d == nil {
		return "Loot: None"
	}

	var sb strings.Builder
	title := d.theme
	if title == "" {
		title = "Generic"
	}
	fmt.Fprintf(&sb, "=== %s Loot ===\n", title)
	fmt.Fprintf(&sb, "Items: [%s]\n", strings.Join(d.items, ", "))
	fmt.Fprintf(&sb, "Gold: %d\n", d.gold)
	fmt.Fprintf(&sb, "Experience: %d", d.experience)
	return sb.String()
}

func (d *DropTable) String() string {
	if d == nil {
		return "DropTable <nil>"
	}
	return fmt.Sprintf("DropTable[%s] [Items: %v, Gold: %d, XP: %d]", d.theme, d.items, d.gold, d.experience)
}

func cloneItems(items []string) []string {
	if items == nil {
		return []string{}
	}
	return slices.Clone(items)
}
