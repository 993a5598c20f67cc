package domain

import "strings"

// Level is a log severity level from the closed TRACE..FATAL set.
// Construct only via ParseLevel; unknown input is rejected, never coerced.
type Level string

const (
	LevelTrace Level = "TRACE"
	LevelDebug Level = "DEBUG"
	LevelInfo  Level = "INFO"
	LevelWarn  Level = "WARN"
	LevelError Level = "ERROR"
	LevelFatal Level = "FATAL"
)

var levelSeverity = map[Level]int{
	LevelTrace: 1,
	LevelDebug: 2,
	LevelInfo:  3,
	LevelWarn:  4,
	LevelError: 5,
	LevelFatal: 6,
}

func ParseLevel(value string) (Level, error) {
	if strings.TrimSpace(value) == "" {
		return "", ErrInvalidLogLevel
	}

	level := Level(strings.ToUpper(value))
	if _, ok := levelSeverity[level]; !ok {
		return "", ErrInvalidLogLevel
	}

	return level, nil
}

func (l Level) Severity() int {
	return levelSeverity[l]
}

func (l Level) MoreSevereThan(other Level) bool {
	return l.Severity() > other.Severity()
}

func (l Level) LessSevereThan(other Level) bool {
	return l.Severity() < other.Severity()
}

func (l Level) String() string {
	return string(l)
}

// AllLevels returns the closed level set ordered by ascending severity.
func AllLevels() []Level {
	return []Level{LevelTrace, LevelDebug, LevelInfo, LevelWarn, LevelError, LevelFatal}
}
