package clamav

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEngineHooksDefaults(t *testing.T) {
	h := &engineHooks{}

	assert.Equal(t, int32(CodeClean), h.PreScan(3))
	assert.Equal(t, int32(CodeClean), h.PostScan(3, int32(CodeVirus), "Eicar-Test-Signature"))
	assert.Equal(t, int32(0), h.SigLoad("db", "Eicar-Test-Signature"))
	assert.NotPanics(t, func() { h.Hash(3, 68, make([]byte, 16), "") })
}

func TestEngineHooksDispatch(t *testing.T) {
	h := &engineHooks{
		preScan: func(fd int) Code { return CodeBreak },
		postScan: func(fd int, result Code, virus string) Code {
			if result == CodeVirus && virus == "Eicar-Test-Signature" {
				return CodeBreak
			}
			return CodeClean
		},
		sigLoad: func(kind, name string) bool { return name == "skip.me" },
	}
	var hashed []byte
	h.hash = func(fd int, size uint64, md5 []byte, virus string) { hashed = md5 }

	assert.Equal(t, int32(CodeBreak), h.PreScan(3))
	assert.Equal(t, int32(CodeBreak), h.PostScan(3, int32(CodeVirus), "Eicar-Test-Signature"))
	assert.Equal(t, int32(CodeClean), h.PostScan(3, int32(CodeClean), ""))
	assert.Equal(t, int32(1), h.SigLoad("db", "skip.me"))
	assert.Equal(t, int32(0), h.SigLoad("db", "keep.me"))
	h.Hash(3, 68, []byte{1, 2}, "")
	assert.Equal(t, []byte{1, 2}, hashed)
}

func TestEngineHooksRegistration(t *testing.T) {
	h := &engineHooks{}
	assert.Zero(t, h.registered())

	ctx := h.context()
	require.NotZero(t, ctx)
	assert.Equal(t, ctx, h.context())
	assert.Equal(t, ctx, h.registered())

	h.unregister()
	assert.Zero(t, h.registered())
	assert.NotEqual(t, ctx, h.context())
	h.unregister()
}

func TestVerdict(t *testing.T) {
	v, err := verdict("Eicar-Test-Signature", 1, int32(CodeVirus))
	require.NoError(t, err)
	assert.Equal(t, Verdict{Infected: true, Virus: "Eicar-Test-Signature", Scanned: 4096}, v)

	v, err = verdict("", 3, int32(CodeClean))
	require.NoError(t, err)
	assert.Equal(t, Verdict{Scanned: 3 * 4096}, v)

	_, err = verdict("", 0, int32(CodeEOpen))
	assert.True(t, IsCode(err, CodeEOpen))
}
