package internal

import (
	"time"
)

type Config struct {
	Host             string        `env:"HOST,default=0.0.0.0"`
	Port             int           `env:"PORT,default=5000"`
	LogFilepath      string        `env:"LOG_FILEPATH,default=Data/message_log.json"`
	AuditFilepath    string        `env:"AUDIT_FILEPATH,default=Data/audit"`
	LogLevel         string        `env:"LOG_LEVEL,default=INFO"`
	RequireMessageID bool          `env:"REQUIRE_MESSAGE_ID,default=false"`
	StrictEdits      bool          `env:"STRICT_EDITS,default=false"`
	ReadTimeout      time.Duration `env:"READ_TIMEOUT,default=10s"`
	WriteTimeout     time.Duration `env:"WRITE_TIMEOUT,default=10s"`
	ShutdownTimeout  time.Duration `env:"SHUTDOWN_TIMEOUT,default=5s"`
	DebugPort        int           `env:"DEBUG_PORT,default=8081"`
}
