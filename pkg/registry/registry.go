package registry

import (
	"bestiary/internal/domain"
	"bestiary/pkg/forge"
	"bestiary/pkg/logger"
	"slices"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
)

// Registry хранит именованные шаблоны врагов и выдает их клоны.
//
// Хранимый шаблон никогда не отдается наружу: Register сохраняет
// собственную копию, Instantiate возвращает новый клон при каждом вызове.
// Повторная регистрация под тем же именем перезаписывает шаблон.
type Registry struct {
	mu        sync.RWMutex
	templates map[string]*forge.Entity
	log       logrus.FieldLogger
}

// New создает пустой реестр.
func New() *Registry {
	return &Registry{
		templates: make(map[string]*forge.Entity),
		log:       logger.Log.WithField("component", "registry"),
	}
}

// Register сохраняет шаблон под именем name.
// Реестр забирает себе клон e: дальнейшие изменения e (например, Rescale)
// на шаблон не влияют, e перестает быть "шаблоном".
func (r *Registry) Register(name string, e *forge.Entity) error {
	if strings.TrimSpace(name) == "" {
		return &domain.KeyError{Key: name, Reason: "name must not be empty"}
	}
	if e == nil {
		return domain.ErrInvalidTemplate
	}

	stored := e.Clone()

	r.mu.Lock()
	_, existed := r.templates[name]
	r.templates[name] = stored
	r.mu.Unlock()

	fields := logrus.Fields{
		"template": name,
		"entity":   stored.Name(),
		"kind":     stored.Kind(),
	}
	if existed {
		r.log.WithFields(fields).Warn("template overwritten")
	} else {
		r.log.WithFields(fields).Debug("template registered")
	}
	return nil
}

// Instantiate возвращает новый независимый клон шаблона.
func (r *Registry) Instantiate(name string) (*forge.Entity, error) {
	r.mu.RLock()
	tpl, ok := r.templates[name]
	var c *forge.Entity
	if ok {
		c = tpl.Clone()
	}
	r.mu.RUnlock()

	if !ok {
		return nil, &domain.NotFoundError{Name: name}
	}

	r.log.WithFields(logrus.Fields{
		"template": name,
		"id":       c.ID(),
	}).Debug("template instantiated")
	return c, nil
}

// InstantiateScaled - клон шаблона с умноженными характеристиками
// (варианты вида "Elite" x2, "Champion" x5).
func (r *Registry) InstantiateScaled(name string, factor float64) (*forge.Entity, error) {
	c, err := r.Instantiate(name)
	if err != nil {
		return nil, err
	}
	if err := c.Rescale(factor); err != nil {
		return nil, err
	}
	return c, nil
}

// Contains проверяет, есть ли шаблон с таким именем.
func (r *Registry) Contains(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.templates[name]
	return ok
}

// Count - количество шаблонов.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.templates)
}

// Names возвращает имена шаблонов. Порядок не значим,
// для стабильного вывода список отсортирован.
func (r *Registry) Names() []string {
	r.mu.RLock()
	names := make([]string, 0, len(r.templates))
	for name := range r.templates {
		names = append(names, name)
	}
	r.mu.RUnlock()

	slices.Sort(names)
	return names
}
