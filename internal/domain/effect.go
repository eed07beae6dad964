package domain

import "fmt"

// Effect - описание способности (эффекта) врага.
// Значение неизменяемо: поля закрыты, наружу только геттеры.
// Равенство структурное, поэтому Effect можно сравнивать через ==.
type Effect struct {
	name        string
	potency     int
	description string
}

// NewEffect создает эффект. Potency для защитных эффектов обычно 0.
func NewEffect(name string, potency int, description string) Effect {
	return Effect{
		name:        name,
		potency:     potency,
		description: description,
	}
}

func (e Effect) Name() string        { return e.name }
func (e Effect) Potency() int        { return e.potency }
func (e Effect) Description() string { return e.description }

// IsZero - пустой эффект (аналог "нет эффекта"), билдеры его пропускают.
func (e Effect) IsZero() bool {
	return e == Effect{}
}

// Clone возвращает независимую копию.
// Effect не содержит ссылочных полей, так что копии значения достаточно.
func (e Effect) Clone() Effect {
	return Effect{
		name:        e.name,
		potency:     e.potency,
		description: e.description,
	}
}

func (e Effect) String() string {
	return fmt.Sprintf("[%s] Potency: %d - %s", e.name, e.potency, e.description)
}
