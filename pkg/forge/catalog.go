package forge

import "bestiary/internal/domain"

// Catalog - тематический источник компонентов врага.
// Каждый вызов возвращает свежие копии, так что результаты можно
// отдавать билдеру без опасения разделить их с другим врагом.
type Catalog interface {
	Effects() []domain.Effect
	DropTable() *domain.DropTable
	AIBehavior() domain.AIBehavior
}
