// Copyright 2025 NetApp, Inc. All Rights Reserved.

package logging

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"
	"golang.org/x/term"

	"github.com/netapp/vnx-blockdevice/config"
)

const (
	TextFormat             = "text"
	JSONFormat             = "json"
	defaultTimestampFormat = time.RFC3339
)

// InitLoggingForDaemon configures logging for the long-running daemon. Entries are written to a log file
// under LogRoot as well as to stdout/stderr; since logrus supports a single writer, each stream is a hook.
func InitLoggingForDaemon(logName, logFormat string) error {
	log.SetOutput(io.Discard)

	logFileHook, err := NewFileHook(logName, logFormat)
	if err != nil {
		return fmt.Errorf("could not initialize logging to file: %v", err)
	}
	log.AddHook(logFileHook)

	logConsoleHook, err := NewConsoleHook(logFormat)
	if err != nil {
		return fmt.Errorf("could not initialize logging to console: %v", err)
	}
	log.AddHook(logConsoleHook)

	if customInterval := os.Getenv(RandomLogcheckEnvVar); customInterval != "" {
		if v, err := strconv.Atoi(customInterval); err == nil && v > 0 {
			randomLogcheckInterval = v
		}
	}

	log.WithFields(log.Fields{
		"logLevel":        log.GetLevel().String(),
		"logFileLocation": logFileHook.GetLocation(),
		"buildTime":       config.BuildTime,
	}).Info("Initialized logging.")

	return nil
}

// InitLogLevel configures the logging level. The debug flag takes precedence if set,
// otherwise the logLevel flag (trace, debug, info, warn, error, fatal) is used.
func InitLogLevel(debug bool, logLevel string) error {
	if debug {
		log.SetLevel(log.DebugLevel)
		return nil
	}
	level, err := log.ParseLevel(logLevel)
	if err != nil {
		return err
	}
	log.SetLevel(level)
	return nil
}

// InitLogFormat configures the log format, allowing a choice of text or JSON.
func InitLogFormat(logFormat string) error {
	switch logFormat {
	case TextFormat:
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	case JSONFormat:
		log.SetFormatter(&JSONFormatter{})
	default:
		return fmt.Errorf("unknown log format: %s", logFormat)
	}
	return nil
}

// InitLogOutput redirects the standard logger, mostly so tests can silence it.
func InitLogOutput(w io.Writer) {
	log.SetOutput(w)
}

// GetLogLevel returns the name of the current log level.
func GetLogLevel() string {
	return log.GetLevel().String()
}

func formatterFor(logFormat string, plain bool) (log.Formatter, error) {
	switch logFormat {
	case TextFormat:
		if plain {
			return &PlainTextFormatter{}, nil
		}
		return &log.TextFormatter{FullTimestamp: true}, nil
	case JSONFormat:
		return &JSONFormatter{}, nil
	default:
		return nil, fmt.Errorf("unknown log format: %s", logFormat)
	}
}

// ConsoleHook sends log entries to stdout or stderr depending on severity.
type ConsoleHook struct {
	formatter log.Formatter
}

func NewConsoleHook(logFormat string) (*ConsoleHook, error) {
	formatter, err := formatterFor(logFormat, false)
	if err != nil {
		return nil, err
	}
	return &ConsoleHook{formatter: formatter}, nil
}

func (hook *ConsoleHook) Levels() []log.Level {
	return log.AllLevels
}

func (hook *ConsoleHook) Fire(entry *log.Entry) error {
	var logWriter *os.File
	switch entry.Level {
	case log.TraceLevel, log.DebugLevel, log.InfoLevel, log.WarnLevel:
		logWriter = os.Stdout
	case log.ErrorLevel, log.FatalLevel, log.PanicLevel:
		logWriter = os.Stderr
	default:
		return fmt.Errorf("unknown log level: %v", entry.Level)
	}

	if textFormatter, ok := hook.formatter.(*log.TextFormatter); ok {
		textFormatter.ForceColors = term.IsTerminal(int(logWriter.Fd()))
	}

	lineBytes, err := hook.formatter.Format(entry)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Unable to read entry, %v", err)
		return err
	}
	return writeTruncated(logWriter, lineBytes)
}

func writeTruncated(w io.Writer, line []byte) error {
	if len(line) <= MaxLogEntryLength {
		_, err := w.Write(line)
		return err
	}
	if _, err := w.Write(line[:MaxLogEntryLength]); err != nil {
		return err
	}
	_, err := w.Write([]byte("<truncated>\n"))
	return err
}

// FileHook sends log entries to a file, rotating it to <name>.old once it grows past the threshold.
type FileHook struct {
	logFileLocation string
	formatter       log.Formatter
	mutex           *sync.Mutex
}

func NewFileHook(logName, logFormat string) (*FileHook, error) {
	formatter, err := formatterFor(logFormat, true)
	if err != nil {
		return nil, err
	}

	dir, err := os.Lstat(LogRoot)
	if os.IsNotExist(err) {
		if err := os.MkdirAll(LogRoot, 0o755); err != nil {
			return nil, fmt.Errorf("could not create log directory %v. %v", LogRoot, err)
		}
	}
	if dir != nil && !dir.IsDir() {
		return nil, fmt.Errorf("log path %v exists and is not a directory, please remove it", LogRoot)
	}

	return &FileHook{
		logFileLocation: filepath.Join(LogRoot, logName+".log"),
		formatter:       formatter,
		mutex:           &sync.Mutex{},
	}, nil
}

func (hook *FileHook) Levels() []log.Level {
	return log.AllLevels
}

func (hook *FileHook) Fire(entry *log.Entry) error {
	lineBytes, err := hook.formatter.Format(entry)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Could not read log entry. %v", err)
		return err
	}

	logFile, err := hook.openFile()
	if err != nil {
		return err
	}
	_, err = logFile.Write(lineBytes)
	_ = logFile.Close()
	if err != nil {
		return err
	}

	// Checking the size on every entry is wasteful; do it on a random subset.
	if rand.Intn(randomLogcheckInterval) == 0 {
		return hook.doLogfileRotation()
	}
	return nil
}

func (hook *FileHook) GetLocation() string {
	return hook.logFileLocation
}

func (hook *FileHook) openFile() (*os.File, error) {
	logFile, err := os.OpenFile(hook.logFileLocation, os.O_APPEND|os.O_CREATE|os.O_RDWR, 0o666)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Could not open log file %v. %v", hook.logFileLocation, err)
		return nil, err
	}
	return logFile, nil
}

func (hook *FileHook) logfileNeedsRotation() bool {
	info, err := os.Stat(hook.logFileLocation)
	if err != nil {
		return false
	}
	return info.Size() >= LogRotationThreshold
}

func (hook *FileHook) doLogfileRotation() error {
	if !hook.logfileNeedsRotation() {
		return nil
	}

	hook.mutex.Lock()
	defer hook.mutex.Unlock()

	// Recheck under the lock; the winner of the race rotates the file.
	if hook.logfileNeedsRotation() {
		return os.Rename(hook.logFileLocation, hook.logFileLocation+".old")
	}
	return nil
}

// PlainTextFormatter is a formatter that does no coloring *and* does not insist on writing logs as key/value pairs.
type PlainTextFormatter struct {
	TimestampFormat string
	DisableSorting  bool
}

func (f *PlainTextFormatter) Format(entry *log.Entry) ([]byte, error) {
	keys := make([]string, 0, len(entry.Data))
	for k := range entry.Data {
		keys = append(keys, k)
	}
	if !f.DisableSorting {
		sort.Strings(keys)
	}

	b := entry.Buffer
	if b == nil {
		b = &bytes.Buffer{}
	}

	timestampFormat := f.TimestampFormat
	if timestampFormat == "" {
		timestampFormat = defaultTimestampFormat
	}

	levelText := strings.ToUpper(entry.Level.String())[0:4]
	fmt.Fprintf(b, "%s[%s] %-44s ", levelText, entry.Time.Format(timestampFormat), entry.Message)
	for _, k := range keys {
		fmt.Fprintf(b, " %s=", k)
		appendValue(b, entry.Data[k])
	}
	b.WriteByte('\n')

	return b.Bytes(), nil
}

func needsQuoting(text string) bool {
	for _, ch := range text {
		if !((ch >= 'a' && ch <= 'z') ||
			(ch >= 'A' && ch <= 'Z') ||
			(ch >= '0' && ch <= '9') ||
			ch == '-' || ch == '.' || ch == '/' || ch == ':') {
			return true
		}
	}
	return false
}

func appendValue(b *bytes.Buffer, value interface{}) {
	var text string
	switch v := value.(type) {
	case string:
		text = v
	case error:
		text = v.Error()
	default:
		fmt.Fprint(b, value)
		return
	}
	if needsQuoting(text) {
		fmt.Fprintf(b, "%q", text)
	} else {
		b.WriteString(text)
	}
}

type JSONFormatter struct {
	TimestampFormat  string
	DisableTimestamp bool
	PrettyPrint      bool
}

func (f *JSONFormatter) Format(entry *log.Entry) ([]byte, error) {
	data := make(map[string]string, len(entry.Data)+3)
	for k, v := range entry.Data {
		switch v := v.(type) {
		case error:
			// Otherwise errors are ignored by `encoding/json`
			data[k] = v.Error()
		default:
			data[k] = fmt.Sprintf("%+v", v)
		}
	}

	timestampFormat := f.TimestampFormat
	if timestampFormat == "" {
		timestampFormat = defaultTimestampFormat
	}
	if !f.DisableTimestamp {
		data["@timestamp"] = entry.Time.Format(timestampFormat)
	}
	data["message"] = entry.Message
	data["level"] = entry.Level.String()

	b := entry.Buffer
	if b == nil {
		b = &bytes.Buffer{}
	}

	encoder := json.NewEncoder(b)
	if f.PrettyPrint {
		encoder.SetIndent("", "  ")
	}
	if err := encoder.Encode(data); err != nil {
		return nil, fmt.Errorf("failed to marshal fields to JSON, %v", err)
	}

	return b.Bytes(), nil
}
