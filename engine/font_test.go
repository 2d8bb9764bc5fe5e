package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/gobold"
)

func TestDefaultFontRegistryCoversAllIdentifiers(t *testing.T) {
	r := DefaultFontRegistry()
	for _, id := range FontIdentifiers() {
		assert.NotNil(t, r.Font(id), "identifier %c should be bound", id)
	}
}

func TestRegisterBindsIdentifiers(t *testing.T) {
	r := NewFontRegistry()
	require.Nil(t, r.Font('A'))

	err := r.Register("bold", gobold.TTF, 'A', 'B')
	require.NoError(t, err)

	assert.NotNil(t, r.Font('A'))
	assert.NotNil(t, r.Font('B'))
	assert.Nil(t, r.Font('C'))
}

func TestRegisterRejectsInvalidData(t *testing.T) {
	r := NewFontRegistry()
	err := r.Register("broken", []byte("not a font"), 'A')
	require.Error(t, err)

	var fontErr *FontError
	assert.ErrorAs(t, err, &fontErr)
	assert.Nil(t, r.Font('A'))
}
