package utils

import (
	"bytes"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	. "gopkg.in/check.v1"
)

type LoggingSuite struct {
	origLogger zerolog.Logger
}

var _ = Suite(&LoggingSuite{})

func (s *LoggingSuite) SetUpTest(c *C) {
	s.origLogger = log.Logger
}

func (s *LoggingSuite) TearDownTest(c *C) {
	log.Logger = s.origLogger
}

func (s *LoggingSuite) TestLogWriter(c *C) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)
	logWriter := LogWriter{Logger: logger}

	testData := []byte("test log message")
	n, err := logWriter.Write(testData)
	c.Check(err, IsNil)
	c.Check(n, Equals, len(testData))

	output := buf.String()
	c.Check(strings.Contains(output, "test log message"), Equals, true)
}

func (s *LoggingSuite) TestSetupJSONLogger(c *C) {
	var buf bytes.Buffer
	SetupJSONLogger("info", &buf)

	c.Check(zerolog.MessageFieldName, Equals, "message")
	c.Check(zerolog.LevelFieldName, Equals, "level")

	log.Info().Msg("test message")

	output := buf.String()
	c.Check(strings.Contains(output, "\"message\":\"test message\""), Equals, true)
	c.Check(strings.Contains(output, "\"time\":"), Equals, true)
}

func (s *LoggingSuite) TestSetupJSONLoggerLevel(c *C) {
	var buf bytes.Buffer
	SetupJSONLogger("warn", &buf)

	log.Info().Msg("should be dropped")
	c.Check(buf.Len(), Equals, 0)

	log.Warn().Msg("should be kept")
	c.Check(strings.Contains(buf.String(), "should be kept"), Equals, true)
}

func (s *LoggingSuite) TestSetupDefaultLogger(c *C) {
	SetupDefaultLogger("warn")

	c.Check(zerolog.MessageFieldName, Equals, "message")
	c.Check(zerolog.LevelFieldName, Equals, "level")
	c.Check(log.Logger.GetLevel(), Equals, zerolog.WarnLevel)
}

func (s *LoggingSuite) TestGetLogLevelOrDebug(c *C) {
	testCases := map[string]zerolog.Level{
		"debug":   zerolog.DebugLevel,
		"DEBUG":   zerolog.DebugLevel,
		"info":    zerolog.InfoLevel,
		"warn":    zerolog.WarnLevel,
		"warning": zerolog.WarnLevel,
		"WARNING": zerolog.WarnLevel,
		"error":   zerolog.ErrorLevel,
		"fatal":   zerolog.FatalLevel,
		"trace":   zerolog.TraceLevel,
	}

	for levelStr, expectedLevel := range testCases {
		c.Check(GetLogLevelOrDebug(levelStr), Equals, expectedLevel, Commentf("level: %s", levelStr))
	}
}

func (s *LoggingSuite) TestGetLogLevelOrDebugInvalid(c *C) {
	var buf bytes.Buffer
	log.Logger = zerolog.New(&buf).Level(zerolog.TraceLevel)

	c.Check(GetLogLevelOrDebug("verbose"), Equals, zerolog.DebugLevel)
	c.Check(strings.Contains(buf.String(), "Unknown log level"), Equals, true)
}
