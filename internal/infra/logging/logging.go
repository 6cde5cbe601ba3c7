package logging

import (
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Init создает zap-логгер: читаемый вывод в консоль плюс JSON-файл с ротацией.
func Init(logDir string, debug bool) (*zap.Logger, error) {
	fileCore, err := newFileCore(logDir)
	if err != nil {
		return nil, err
	}

	core := zapcore.NewTee(
		fileCore,
		newConsoleCore(debug),
	)

	return zap.New(core, zap.AddCaller()), nil
}

// newFileCore создает core, пишущий JSON-логи уровня Info и выше
// в файл с ротацией.
func newFileCore(logDir string) (zapcore.Core, error) {
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return nil, err
	}

	encoderConfig := zapcore.EncoderConfig{
		MessageKey:   "message",
		LevelKey:     "level",
		TimeKey:      "time",
		CallerKey:    "caller",
		EncodeLevel:  zapcore.CapitalLevelEncoder,
		EncodeTime:   zapcore.ISO8601TimeEncoder,
		EncodeCaller: zapcore.ShortCallerEncoder,
	}

	writer := zapcore.AddSync(&lumberjack.Logger{
		Filename:   filepath.Join(logDir, "bot.log"),
		MaxSize:    10, // мегабайты
		MaxBackups: 3,
		MaxAge:     7, // дни
		Compress:   true,
	})

	return zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderConfig),
		writer,
		zap.LevelEnablerFunc(func(l zapcore.Level) bool {
			return l >= zapcore.InfoLevel
		}),
	), nil
}

// newConsoleCore создает core для консоли. В режиме отладки выводится
// и уровень Debug.
func newConsoleCore(debug bool) zapcore.Core {
	minLevel := zapcore.InfoLevel
	if debug {
		minLevel = zapcore.DebugLevel
	}

	consoleEncoderConfig := zap.NewDevelopmentEncoderConfig()
	consoleEncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder

	return zapcore.NewCore(
		zapcore.NewConsoleEncoder(consoleEncoderConfig),
		zapcore.AddSync(os.Stdout),
		zap.LevelEnablerFunc(func(l zapcore.Level) bool {
			return l >= minLevel
		}),
	)
}
