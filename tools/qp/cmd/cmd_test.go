package cmd_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zostay/go-qpstream/tools/qp/cmd"
)

func run(t *testing.T, in string, args ...string) (string, error) {
	t.Helper()

	out := &bytes.Buffer{}
	c := cmd.NewRootCmd()
	c.SetArgs(args)
	c.SetIn(strings.NewReader(in))
	c.SetOut(out)
	c.SetErr(&bytes.Buffer{})

	err := c.Execute()
	return out.String(), err
}

func TestEncode(t *testing.T) {
	t.Parallel()

	out, err := run(t, "a=b\r\n.", "encode")
	require.NoError(t, err)
	assert.Equal(t, "a=3Db\r\n..", out)
}

func TestEncode_Options(t *testing.T) {
	t.Parallel()

	out, err := run(t, "0123456789", "encode", "-l", "8")
	require.NoError(t, err)
	assert.Equal(t, "0123456=\r\n789", out)

	out, err = run(t, "a\r\nb", "encode", "--encode-crlf")
	require.NoError(t, err)
	assert.Equal(t, "a=0D=0Ab", out)

	_, err = run(t, "x", "encode", "--line-length", "-1")
	assert.Error(t, err)
}

func TestEncode_Charset(t *testing.T) {
	t.Parallel()

	out, err := run(t, "café", "encode", "--charset", "iso-8859-1")
	require.NoError(t, err)
	assert.Equal(t, "caf=E9", out)
}

func TestEncode_File(t *testing.T) {
	t.Parallel()

	name := filepath.Join(t.TempDir(), "in.txt")
	require.NoError(t, os.WriteFile(name, []byte("tab\tend\t"), 0o644))

	out, err := run(t, "", "encode", name)
	require.NoError(t, err)
	assert.Equal(t, "tab\tend\t", out)

	_, err = run(t, "", "encode", filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)
}

func TestDecode(t *testing.T) {
	t.Parallel()

	out, err := run(t, "a=3Db=\r\nc", "decode")
	require.NoError(t, err)
	assert.Equal(t, "a=bc", out)

	out, err = run(t, "caf=E9", "decode", "--charset", "iso-8859-1")
	require.NoError(t, err)
	assert.Equal(t, "café", out)

	_, err = run(t, "bad=XY", "decode")
	assert.Error(t, err)
}

func TestRoundtrip(t *testing.T) {
	t.Parallel()

	out, err := run(t, "a=b\r\n.\r\n", "roundtrip")
	require.NoError(t, err)
	assert.Equal(t, "ok: 8 bytes in, 11 bytes encoded, longest line 5\n", out)

	out, err = run(t, "x", "roundtrip", "--show")
	require.NoError(t, err)
	assert.Equal(t, "x\nok: 1 bytes in, 1 bytes encoded, longest line 1\n", out)
}

func TestCompose(t *testing.T) {
	t.Parallel()

	out, err := run(t, "x = y\r\n",
		"compose",
		"--from", "qp@example.com",
		"--to", "sterling@example.com",
		"--subject", "test",
		"--date", "Tue, 14 Mar 2023 15:09:26 +0000",
	)
	require.NoError(t, err)

	assert.Contains(t, out, "MIME-Version: 1.0\r\n")
	assert.Contains(t, out, "Content-type: text/plain; charset=utf-8\r\n")
	assert.Contains(t, out, "Content-transfer-encoding: quoted-printable\r\n")
	assert.Contains(t, out, "sterling@example.com")
	assert.Contains(t, out, "Subject: test\r\n")
	assert.Contains(t, out, "Date: Tue, 14 Mar 2023 15:09:26 +0000\r\n")
	assert.True(t, strings.HasSuffix(out, "\r\n\r\nx =3D y\r\n"), out)
}

func TestCompose_DisplayNames(t *testing.T) {
	t.Parallel()

	out, err := run(t, "hi\r\n",
		"compose",
		"--from", "Sender Person <qp@example.com>",
		"--to", "Recipient Name <r@example.com>",
		"--to", `"Doe, Jane" <j@example.com>`,
		"--date", "Tue, 14 Mar 2023 15:09:26 +0000",
	)
	require.NoError(t, err)

	assert.Contains(t, out, "From: Sender Person <qp@example.com>\r\n")
	assert.Contains(t, out, `To: Recipient Name <r@example.com>, "Doe, Jane" <j@example.com>`+"\r\n")
}

func TestCompose_Errors(t *testing.T) {
	t.Parallel()

	_, err := run(t, "", "compose", "--date", "not a date at all")
	assert.Error(t, err)

	_, err = run(t, "", "compose", "--encoding", "x-uuencode")
	assert.Error(t, err)
}
