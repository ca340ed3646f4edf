package logging

import (
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// NewFileLogger returns a logger that appends JSON lines to filename, rotating the file once it
// grows past maxSizeMB. Close the returned closer when done logging.
func NewFileLogger(name, filename string, maxSizeMB int) (Logger, io.Closer) {
	sink := &lumberjack.Logger{
		Filename:   filename,
		MaxSize:    maxSizeMB,
		MaxBackups: 2,
		Compress:   true,
	}
	encoderConfig := NewLoggerConfig().EncoderConfig
	encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder

	atomic := zap.NewAtomicLevelAt(INFO)
	core := zapcore.NewCore(zapcore.NewJSONEncoder(encoderConfig), zapcore.AddSync(sink), atomic)
	return &impl{zap.New(core).Sugar().Named(name), atomic}, sink
}
