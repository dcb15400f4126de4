package printer

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrinter_Lines(t *testing.T) {
	var buf bytes.Buffer
	p := New(&buf)

	p.Successf("created %s", "a.org")
	p.Infof("found %d files", 3)
	p.Warnf("skipped %d", 1)
	p.Errorf("failed")
	p.Printf("plain")

	out := buf.String()
	assert.Contains(t, out, "created a.org\n")
	assert.Contains(t, out, "found 3 files\n")
	assert.Contains(t, out, "skipped 1\n")
	assert.Contains(t, out, "failed\n")
	assert.Contains(t, out, "plain\n")
}

func TestPrinter_SuccessDetail(t *testing.T) {
	var buf bytes.Buffer
	New(&buf).Success("Project created", "/tmp/p/README.org")

	assert.Contains(t, buf.String(), "Project created\n")
	assert.Contains(t, buf.String(), "/tmp/p/README.org")

	buf.Reset()
	New(&buf).Success("Done", "")
	assert.Equal(t, 1, bytes.Count(buf.Bytes(), []byte("\n")))
}

func TestCtx(t *testing.T) {
	var buf bytes.Buffer
	p := New(&buf)

	ctx := NewContext(context.Background(), p)
	assert.Same(t, p, Ctx(ctx))

	assert.NotNil(t, Ctx(context.Background()))
}
