package logger

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type LogLevel string

const (
	LevelInfo  LogLevel = "info"
	LevelWarn  LogLevel = "warn"
	LevelError LogLevel = "error"
)

type LogEntry struct {
	Timestamp time.Time              `json:"timestamp"`
	Level     LogLevel               `json:"level"`
	UserID    *string                `json:"user_id,omitempty"`
	Action    string                 `json:"action"`
	Details   map[string]interface{} `json:"details,omitempty"`
	Error     string                 `json:"error,omitempty"`
	Caller    string                 `json:"caller,omitempty"`
}

type Logger struct {
	mu     sync.Mutex
	output io.Writer
	color  bool
}

var globalLogger *Logger

func New(output io.Writer) *Logger {
	if output == nil {
		output = os.Stdout
	}
	return &Logger{output: output, color: output == os.Stdout}
}

// Init routes the package-level helpers to stdout.
func Init() {
	globalLogger = New(os.Stdout)
}

// SetOutput routes the package-level helpers to w. Tests use it to capture lines.
func SetOutput(w io.Writer) {
	globalLogger = New(w)
}

func (l *Logger) log(level LogLevel, action string, userID *string, details map[string]interface{}, err error) {
	entry := LogEntry{
		Timestamp: time.Now().UTC(),
		Level:     level,
		UserID:    userID,
		Action:    action,
		Details:   details,
		Caller:    caller(),
	}
	if err != nil {
		entry.Error = err.Error()
	}

	data, marshalErr := json.Marshal(entry)
	if marshalErr != nil {
		data = []byte(fmt.Sprintf(`{"level":"error","action":"log_marshal_failed","error":%q}`, marshalErr.Error()))
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.color {
		fmt.Fprintf(l.output, "%s\n", data)
		return
	}

	colorCode := "\033[36m"
	switch level {
	case LevelError:
		colorCode = "\033[31m"
	case LevelWarn:
		colorCode = "\033[33m"
	}
	fmt.Fprintf(l.output, "%s%s\033[0m\n", colorCode, data)
}

func Info(action string, details map[string]interface{}) {
	if globalLogger != nil {
		globalLogger.log(LevelInfo, action, nil, details, nil)
	}
}

func InfoWithUser(userID string, action string, details map[string]interface{}) {
	if globalLogger != nil {
		globalLogger.log(LevelInfo, action, &userID, details, nil)
	}
}

func Warn(action string, details map[string]interface{}) {
	if globalLogger != nil {
		globalLogger.log(LevelWarn, action, nil, details, nil)
	}
}

func WarnWithUser(userID string, action string, details map[string]interface{}) {
	if globalLogger != nil {
		globalLogger.log(LevelWarn, action, &userID, details, nil)
	}
}

func Error(action string, err error, details map[string]interface{}) {
	if globalLogger != nil {
		globalLogger.log(LevelError, action, nil, details, err)
	}
}

func ErrorWithUser(userID string, action string, err error, details map[string]interface{}) {
	if globalLogger != nil {
		globalLogger.log(LevelError, action, &userID, details, err)
	}
}

// GetUserIDFromContext returns the authenticated subject stored by the auth middleware.
func GetUserIDFromContext(c *fiber.Ctx) *string {
	if userID := c.Locals("userID"); userID != nil {
		if id, ok := userID.(string); ok && id != "" {
			return &id
		}
	}
	return nil
}

func caller() string {
	// log -> exported helper -> call site
	if _, file, line, ok := runtime.Caller(3); ok {
		if idx := strings.LastIndex(file, "/"); idx >= 0 {
			if prev := strings.LastIndex(file[:idx], "/"); prev >= 0 {
				file = file[prev+1:]
			}
		}
		return fmt.Sprintf("%s:%d", file, line)
	}
	return ""
}

var sensitiveFields = []string{"password", "confirmPassword", "oldPassword", "newPassword", "secret", "token", "access_token"}

func redactSensitiveFields(jsonMap map[string]interface{}) {
	for _, field := range sensitiveFields {
		if _, exists := jsonMap[field]; exists {
			jsonMap[field] = "[REDACTED]"
		}
	}
}

func GetRequestBodySummary(c *fiber.Ctx) string {
	body := c.Body()
	if len(body) == 0 {
		return "empty"
	}

	if len(body) > 1024 {
		return fmt.Sprintf("large (%d bytes)", len(body))
	}

	var jsonMap map[string]interface{}
	if err := json.Unmarshal(body, &jsonMap); err == nil {
		redactSensitiveFields(jsonMap)
		if jsonBytes, err := json.Marshal(jsonMap); err == nil {
			if len(jsonBytes) > 200 {
				return string(jsonBytes[:200]) + "..."
			}
			return string(jsonBytes)
		}
	}

	return fmt.Sprintf("binary (%d bytes)", len(body))
}

func GetResponseSizeSummary(c *fiber.Ctx) string {
	body := c.Response().Body()
	if len(body) == 0 {
		return "empty"
	}
	return fmt.Sprintf("%d bytes", len(body))
}

func GenerateRequestID() string {
	return uuid.New().String()
}
