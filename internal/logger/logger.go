package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

type Logger struct {
	zl zerolog.Logger
}

var nivelGlobal = zerolog.InfoLevel

// SetLevel fija el nivel para los loggers creados después de la llamada.
func SetLevel(nivel string) {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(nivel)))
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	nivelGlobal = lvl
}

// New crea un logger etiquetado con el componente que lo usa.
func New(componente string) *Logger {
	zerolog.TimeFieldFormat = time.RFC3339

	zl := zerolog.New(os.Stdout).
		With().
		Timestamp().
		Str("componente", componente).
		Logger().
		Level(nivelGlobal)

	return &Logger{zl: zl}
}

// Nop descarta todo; útil en pruebas.
func Nop() *Logger {
	return &Logger{zl: zerolog.Nop()}
}

func (l *Logger) WithOutput(w io.Writer) *Logger {
	return &Logger{zl: l.zl.Output(w)}
}

func (l *Logger) With() zerolog.Context {
	return l.zl.With()
}

// Con devuelve un logger hijo con un campo adicional.
func (l *Logger) Con(clave, valor string) *Logger {
	return &Logger{zl: l.zl.With().Str(clave, valor).Logger()}
}

func (l *Logger) Debug(msg string) {
	l.zl.Debug().Msg(msg)
}

func (l *Logger) Debugf(format string, v ...any) {
	l.zl.Debug().Msgf(format, v...)
}

func (l *Logger) Info(msg string) {
	l.zl.Info().Msg(msg)
}

func (l *Logger) Infof(format string, v ...any) {
	l.zl.Info().Msgf(format, v...)
}

func (l *Logger) Warn(msg string) {
	l.zl.Warn().Msg(msg)
}

func (l *Logger) Warnf(format string, v ...any) {
	l.zl.Warn().Msgf(format, v...)
}

func (l *Logger) Error(err error, msg string) {
	l.zl.Error().Err(err).Msg(msg)
}

func (l *Logger) Errorf(err error, format string, v ...any) {
	l.zl.Error().Err(err).Msgf(format, v...)
}

// ErrorFila registra el fallo de una fila de planilla.
func (l *Logger) ErrorFila(err error, fila int, msg string) {
	l.zl.Error().Err(err).Int("fila", fila).Msg(msg)
}

// Printf permite usar el logger como escritor del logger de gorm.
func (l *Logger) Printf(format string, v ...any) {
	l.zl.Error().Msgf(format, v...)
}

func (l *Logger) Fatal(err error, msg string) {
	l.zl.Fatal().Err(err).Msg(msg)
}
