package domain

// Cloner - общий контракт прототипа: Clone возвращает структурно
// равную копию, не разделяющую с источником изменяемых подобъектов.
type Cloner[T any] interface {
	Clone() T
}

// CloneAll строит новый слайс, клонируя каждый элемент.
// Для nil возвращает пустой (не nil) слайс.
func CloneAll[T Cloner[T]](items []T) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		out = append(out, item.Clone())
	}
	return out
}
