package catalog

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrUnknownTheme - темы с таким именем нет в библиотеке.
var ErrUnknownTheme = errors.New("unknown theme")

// FileDefinitions - формат YAML-файла каталога
type FileDefinitions struct {
	Themes []Theme `yaml:"themes" json:"themes"`
}

// Library - набор тем по имени (ключ в нижнем регистре)
type Library map[string]*Theme

// Lookup ищет тему без учета регистра.
func (l Library) Lookup(name string) (*Theme, error) {
	t, ok := l[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTheme, name)
	}
	return t, nil
}

// Names возвращает отсортированные ключи тем.
func (l Library) Names() []string {
	names := make([]string, 0, len(l))
	for name := range l {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Merge возвращает новую библиотеку: темы из other перекрывают одноименные.
func (l Library) Merge(other Library) Library {
	out := make(Library, len(l)+len(other))
	for k, v := range l {
		out[k] = v
	}
	for k, v := range other {
		out[k] = v
	}
	return out
}

// Decode читает темы из YAML. Файл может содержать несколько документов
// (разделитель ---), темы из всех документов собираются вместе.
// Неизвестные поля - ошибка, каждая тема проверяется через Validate,
// дубликаты имен запрещены (в том числе между документами).
func Decode(r io.Reader) (Library, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	lib := make(Library)
	for doc := 1; ; doc++ {
		var defs FileDefinitions
		err := dec.Decode(&defs)
		if errors.Is(err, io.EOF) {
			return lib, nil
		}
		if err != nil {
			return nil, fmt.Errorf("decode catalog (document %d): %w", doc, err)
		}

		for i := range defs.Themes {
			t := &defs.Themes[i]
			if err := t.Validate(); err != nil {
				return nil, err
			}
			if _, dup := lib[t.key()]; dup {
				return nil, fmt.Errorf("duplicate theme %q", t.Name)
			}
			lib[t.key()] = t
		}
	}
}

// Load читает один YAML-файл каталога.
func Load(path string) (Library, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	lib, err := Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return lib, nil
}

// LoadDir читает все *.yaml / *.yml из папки (без рекурсии).
// Одинаковые темы в разных файлах - ошибка.
func LoadDir(dir string) (Library, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	result := make(Library)
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !(strings.HasSuffix(name, ".yaml") || strings.HasSuffix(name, ".yml")) {
			continue
		}

		lib, err := Load(filepath.Join(dir, name))
		if err != nil {
			return nil, err
		}
		for k, t := range lib {
			if _, dup := result[k]; dup {
				return nil, fmt.Errorf("%s: duplicate theme %q", name, t.Name)
			}
			result[k] = t
		}
	}
	return result, nil
}
