package version

import (
	"fmt"
	"time"
)

// Заполняются при сборке:
//
//	go build -ldflags "-X bestiary/internal/version.BuildDate=2026-10-18 -X bestiary/internal/version.BuildCommit=abc123"
var (
	BuildDate   string // YYYY-MM-DD (UTC)
	BuildCommit string
	BuildBranch string
)

// Name - имя приложения в строке версии
const Name = "bestiary"

// epoch - день первого релиза, от него считается номер сборки
var epoch = time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)

// Info - метаданные сборки
type Info struct {
	BuildID int
	Date    string
	Commit  string
	Branch  string
	Err     error
}

// BuildID - номер сборки: количество дней от epoch до BuildDate.
func BuildID(date string) (int, error) {
	if date == "" {
		return 0, fmt.Errorf("build date is empty")
	}

	t, err := time.ParseInLocation(time.DateOnly, date, time.UTC)
	if err != nil {
		return 0, fmt.Errorf("invalid build date %q: %w", date, err)
	}
	if t.Before(epoch) {
		return 0, fmt.Errorf("build date %s is before %s", date, epoch.Format(time.DateOnly))
	}

	return int(t.Sub(epoch).Hours() / 24), nil
}

// Current возвращает метаданные текущей сборки.
func Current() Info {
	id, err := BuildID(BuildDate)
	return Info{
		BuildID: id,
		Date:    BuildDate,
		Commit:  or(BuildCommit, "unknown"),
		Branch:  or(BuildBranch, "unknown"),
		Err:     err,
	}
}

// String - строка для лога при старте.
func String() string {
	info := Current()
	if info.Err != nil {
		return fmt.Sprintf("%s dev build (%v)", Name, info.Err)
	}
	return fmt.Sprintf("%s build %d (%s) commit[%s] branch[%s]", Name, info.BuildID, info.Date, info.Commit, info.Branch)
}

func or(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
