package ocr

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubRunner returns canned output instead of executing tesseract.
type stubRunner struct {
	stdout string
	err    error

	gotName string
	gotArgs []string
}

func (s *stubRunner) Run(_ context.Context, name string, args ...string) ([]byte, []byte, error) {
	s.gotName = name
	s.gotArgs = args
	return []byte(s.stdout), nil, s.err
}

func TestRecognize_SplitsTrimmedLines(t *testing.T) {
	stub := &stubRunner{stdout: "  Château Margaux  \n\n2015\n   \nMargaux\n"}
	rec := NewRecognizer(Config{}, nil).WithRunner(stub)

	res, err := rec.Recognize(context.Background(), "/tmp/label.jpg")
	require.NoError(t, err)

	assert.Equal(t, []string{"Château Margaux", "2015", "Margaux"}, res.Lines)
	assert.Equal(t, "Château Margaux\n2015\nMargaux", res.FullText)
	assert.False(t, res.IsBlank())
}

func TestRecognize_DefaultsAndArgs(t *testing.T) {
	stub := &stubRunner{stdout: "text"}
	rec := NewRecognizer(Config{PSM: 6, TessdataDir: "/usr/share/tessdata"}, nil).WithRunner(stub)

	_, err := rec.Recognize(context.Background(), "in.png")
	require.NoError(t, err)

	assert.Equal(t, "tesseract", stub.gotName)
	assert.Equal(t, []string{
		"in.png", "stdout", "-l", "swe+eng",
		"--psm", "6",
		"--tessdata-dir", "/usr/share/tessdata",
	}, stub.gotArgs)
}

func TestRecognize_BlankOutput(t *testing.T) {
	stub := &stubRunner{stdout: "   \n \n"}
	rec := NewRecognizer(Config{}, nil).WithRunner(stub)

	res, err := rec.Recognize(context.Background(), "in.jpg")
	require.NoError(t, err)
	assert.True(t, res.IsBlank())
	assert.Empty(t, res.Lines)
}

func TestRecognize_RunnerError(t *testing.T) {
	stub := &stubRunner{err: errors.New("binary not found")}
	rec := NewRecognizer(Config{}, nil).WithRunner(stub)

	_, err := rec.Recognize(context.Background(), "in.jpg")
	assert.ErrorContains(t, err, "tesseract")
}
