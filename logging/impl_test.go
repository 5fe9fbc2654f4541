package logging

import (
	"bytes"
	"strings"
	"testing"

	"go.uber.org/zap/zapcore"
	"go.viam.com/test"
)

// assertLogMatches will fuzzy match log lines. Notably, this checks the time format, but ignores
// the exact time. And it expects a match on the filename, but the exact line number can be wrong.
func assertLogMatches(t *testing.T, actual *bytes.Buffer, expected string) {
	t.Helper()

	output, err := actual.ReadString('\n')
	test.That(t, err, test.ShouldBeNil)

	actualParts := strings.Split(strings.TrimSuffix(output, "\n"), "\t")
	expectedParts := strings.Split(expected, "\t")
	test.That(t, len(actualParts), test.ShouldEqual, len(expectedParts))
	// Use the length of the first string as a weak verification of checking that the result looks like a date.
	test.That(t, len(actualParts[0]), test.ShouldEqual, len(expectedParts[0]))
	// Log level and logger name.
	test.That(t, actualParts[1], test.ShouldEqual, expectedParts[1])
	test.That(t, actualParts[2], test.ShouldEqual, expectedParts[2])

	// Filename, without the line number.
	actualFilename, _, found := strings.Cut(actualParts[3], ":")
	test.That(t, found, test.ShouldBeTrue)
	expectedFilename, _, _ := strings.Cut(expectedParts[3], ":")
	test.That(t, actualFilename, test.ShouldEqual, expectedFilename)

	for i := 4; i < len(expectedParts); i++ {
		test.That(t, actualParts[i], test.ShouldEqual, expectedParts[i])
	}
}

func newBufferLogger(name string, level Level) (Logger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	logger := NewBlankLogger(name)
	logger.SetLevel(level)
	logger.AddAppender(NewWriterAppender(buf))
	return logger, buf
}

func TestConsoleOutputFormat(t *testing.T) {
	logger, buf := newBufferLogger("impl", DEBUG)

	logger.Info("impl Info log")
	assertLogMatches(t, buf,
		`2023-10-30T09:12:09.459Z	INFO	impl	logging/impl_test.go:67	impl Info log`)

	logger.Debugf("impl logf %d", 5)
	assertLogMatches(t, buf,
		`2023-10-30T09:12:09.459Z	DEBUG	impl	logging/impl_test.go:67	impl logf 5`)

	logger.Infow("impl logw", "key", "value", "count", 3)
	assertLogMatches(t, buf,
		`2023-10-30T09:12:09.459Z	INFO	impl	logging/impl_test.go:67	impl logw	{"key": "value", "count": 3}`)
}

func TestLevelFiltering(t *testing.T) {
	logger, buf := newBufferLogger("filter", WARN)

	logger.Debug("dropped")
	logger.Info("dropped")
	test.That(t, buf.Len(), test.ShouldEqual, 0)

	logger.Warnf("kept %s", "warning")
	logger.Errorw("kept", "err", "boom")
	test.That(t, strings.Count(buf.String(), "\n"), test.ShouldEqual, 2)
	test.That(t, logger.GetLevel(), test.ShouldEqual, WARN)
}

func TestSublogger(t *testing.T) {
	logger, buf := newBufferLogger("parent", INFO)
	sub := logger.Sublogger("child")
	sub.Info("from child")
	assertLogMatches(t, buf,
		`2023-10-30T09:12:09.459Z	INFO	parent.child	logging/impl_test.go:67	from child`)

	// changing the child level must not affect the parent
	sub.SetLevel(ERROR)
	test.That(t, logger.GetLevel(), test.ShouldEqual, INFO)
}

func TestObservedTestLogger(t *testing.T) {
	logger, logs := NewObservedTestLogger(t)
	logger.Debugw("planner progress", "iteration", 10)
	logger.Info("done")

	test.That(t, logs.Len(), test.ShouldEqual, 2)
	test.That(t, logs.FilterMessageSnippet("progress").Len(), test.ShouldEqual, 1)
	entry := logs.FilterMessage("planner progress").All()[0]
	test.That(t, entry.ContextMap()["iteration"], test.ShouldEqual, int64(10))
}

func TestUnpairedKey(t *testing.T) {
	logger, logs := NewObservedTestLogger(t)
	logger.Infow("unpaired", "lonely")
	test.That(t, logs.All()[0].ContextMap()["lonely"], test.ShouldEqual, "unpaired log key")
}

func TestLevelStrings(t *testing.T) {
	for _, level := range []Level{DEBUG, INFO, WARN, ERROR} {
		parsed, err := LevelFromString(strings.ToUpper(level.String()))
		test.That(t, err, test.ShouldBeNil)
		test.That(t, parsed, test.ShouldEqual, level)
		test.That(t, LevelFromZap(level.AsZap()), test.ShouldEqual, level)
	}
	test.That(t, WARN.AsZap(), test.ShouldEqual, zapcore.WarnLevel)
	test.That(t, LevelFromZap(zapcore.FatalLevel), test.ShouldEqual, ERROR)

	parsed, err := LevelFromString("Warning")
	test.That(t, err, test.ShouldBeNil)
	test.That(t, parsed, test.ShouldEqual, WARN)

	_, err = LevelFromString("loud")
	test.That(t, err, test.ShouldNotBeNil)
}
