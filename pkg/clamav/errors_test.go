package clamav

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrapCleanIsNil(t *testing.T) {
	require.NoError(t, Wrap(func() Code { return CodeClean }))
	require.NoError(t, Wrap(func() Code { return CodeSuccess }))
}

func TestWrapFailureCarriesCode(t *testing.T) {
	for _, code := range Codes()[1:] {
		err := Wrap(func() Code { return code })
		require.Error(t, err, code.String())

		var ce *Error
		require.True(t, errors.As(err, &ce))
		assert.Equal(t, code, ce.Code)
		assert.Equal(t, Describe(code), ce.Description)
		assert.Contains(t, err.Error(), code.String())
	}
}

func TestWrapValue(t *testing.T) {
	v, err := WrapValue(func() (uint32, Code) { return 42, CodeSuccess })
	require.NoError(t, err)
	assert.Equal(t, uint32(42), v)

	v, err = WrapValue(func() (uint32, Code) { return 42, CodeEMem })
	require.Error(t, err)
	assert.Zero(t, v)
	assert.True(t, IsCode(err, CodeEMem))
}

func TestErrorIsMatchesByCode(t *testing.T) {
	err := fmt.Errorf("load /db: %w", NewError(CodeEOpen))

	assert.ErrorIs(t, err, NewError(CodeEOpen))
	assert.NotErrorIs(t, err, NewError(CodeERead))

	code, ok := CodeOf(err)
	require.True(t, ok)
	assert.Equal(t, CodeEOpen, code)

	_, ok = CodeOf(ErrClosed)
	assert.False(t, ok)
}

func TestDescribe(t *testing.T) {
	assert.Equal(t, "Virus(es) detected", Describe(CodeVirus))
	for _, code := range Codes() {
		assert.NotEmpty(t, Describe(code), code.String())
	}
	assert.Equal(t, "Unknown error code", Describe(Code(999)))
}

func TestCodeNames(t *testing.T) {
	assert.Equal(t, "CL_CLEAN", CodeClean.String())
	assert.Equal(t, "CL_VIRUS", CodeVirus.String())
	assert.Equal(t, "CL_EBYTECODE_TESTFAIL", CodeEBytecodeTestFail.String())
	assert.Equal(t, "CL_ESTATE", CodeEState.String())
	assert.Equal(t, "CL_ELAST_ERROR", CodeELastError.String())
	assert.Equal(t, "cl_error_t(-1)", Code(-1).String())
	assert.Len(t, Codes(), 32)
	assert.False(t, CodeELastError.Declared())
}

func TestCodeCategory(t *testing.T) {
	tests := []struct {
		code Code
		want Category
	}{
		{CodeClean, CategoryNone},
		{CodeVirus, CategoryDetection},
		{CodeENullArg, CategoryArgument},
		{CodeEUnpack, CategoryArgument},
		{CodeEOpen, CategoryIO},
		{CodeETimeout, CategoryIO},
		{CodeBreak, CategoryInternal},
		{CodeEBytecodeTestFail, CategoryInternal},
		{CodeELock, CategoryState},
		{CodeEState, CategoryState},
		{CodeELastError, CategoryUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.code.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.code.Category())
		})
	}

	assert.True(t, CodeEMaxFiles.Internal())
	assert.False(t, CodeEMem.Internal())
	assert.False(t, CodeClean.IsError())
	assert.True(t, CodeVirus.IsError())
}
