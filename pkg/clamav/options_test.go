package clamav

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDBOptions(t *testing.T) {
	opts, err := ParseDBOptions([]string{"stdopt", " PUA "})
	require.NoError(t, err)
	assert.Equal(t, DBStdOpt|DBPUA, opts)
	assert.Equal(t, []string{"phishing", "phishing_urls", "pua", "bytecode"}, opts.Names())
	assert.Equal(t, "0", DBOptions(0).String())

	_, err = ParseDBOptions([]string{"everything"})
	assert.Error(t, err)
}

func TestScanOptions(t *testing.T) {
	opts, err := ParseScanOptions([]string{"raw"})
	require.NoError(t, err)
	assert.Equal(t, ScanRaw, opts)
	assert.Equal(t, "raw", opts.String())

	std, err := ParseScanOptions([]string{"stdopt"})
	require.NoError(t, err)
	assert.Equal(t, ScanStdOpt, std)
	assert.NotEmpty(t, std.Names())
}

func TestCountSigsOptions(t *testing.T) {
	for in, want := range map[string]CountSigsOptions{
		"official":   CountSigsOfficial,
		"unofficial": CountSigsUnofficial,
		"all":        CountSigsAll,
		"":           CountSigsAll,
	} {
		got, err := ParseCountSigsOptions(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := ParseCountSigsOptions("some")
	assert.Error(t, err)
}

func TestBytecodeEnums(t *testing.T) {
	s, err := ParseBytecodeSecurity("trust_signed")
	require.NoError(t, err)
	assert.Equal(t, BytecodeTrustSigned, s)
	assert.False(t, BytecodeSecurity(3).Valid())

	m, err := ParseBytecodeMode("Interpreter")
	require.NoError(t, err)
	assert.Equal(t, BytecodeModeInterpreter, m)
	assert.Equal(t, "off", BytecodeModeOff.String())
	assert.Equal(t, "bytecode_mode(5)", BytecodeMode(5).String())

	_, err = ParseBytecodeMode("fast")
	assert.ErrorIs(t, err, ErrValueOutOfRange)
}

func TestMsgLevel(t *testing.T) {
	assert.Equal(t, "warn", MsgWarn.String())
	assert.Equal(t, "cl_msg(1)", MsgLevel(1).String())
}
