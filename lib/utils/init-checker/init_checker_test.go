package initchecker

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type provider interface{ Do() }

type impl struct{}

func (impl) Do() {}

func TestCheckInit(t *testing.T) {
	var p provider
	var ptr *impl
	require.Panics(t, func() { CheckInit("p", p) })
	require.Panics(t, func() { CheckInit("ptr", ptr) })
	require.Panics(t, func() { CheckInit("odd") })
	require.NotPanics(t, func() { CheckInit("p", provider(impl{}), "n", 1) })
}
