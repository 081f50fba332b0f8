// Package log is a small leveled key-value logger for the CLI shell. The
// parser core never logs; everything here goes to stderr so piped output
// stays clean.
package log

import (
	"fmt"
	stdlog "log"
	"os"
	"sync"
)

type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelError
)

var (
	mu       sync.Mutex
	logger   = stdlog.New(os.Stderr, "", stdlog.LstdFlags)
	minLevel = LevelInfo
)

// SetLevel sets the minimum level that gets written.
func SetLevel(l Level) {
	mu.Lock()
	defer mu.Unlock()
	minLevel = l
}

func Debug(msg string, kv ...any) { write(LevelDebug, "DEBUG", msg, kv...) }
func Info(msg string, kv ...any)  { write(LevelInfo, "INFO", msg, kv...) }

func Error(msg string, err error, kv ...any) {
	write(LevelError, "ERROR", msg, append([]any{"err", err}, kv...)...)
}

func write(l Level, tag, msg string, kv ...any) {
	mu.Lock()
	defer mu.Unlock()
	if l < minLevel {
		return
	}

	line := "[" + tag + "] " + msg
	for i := 0; i+1 < len(kv); i += 2 {
		key, ok := kv[i].(string)
		if !ok {
			continue
		}
		line += " " + key + "=" + fmt.Sprint(kv[i+1])
	}
	logger.Println(line)
}
