package schema

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDescriptorCheck(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		desc  Descriptor
		value any
		ok    bool
	}{
		{"string accepts string", String(), "/x", true},
		{"string rejects int", String(), 3, false},
		{"number accepts int", Number(), 3, true},
		{"number accepts float", Number(), 1.5, true},
		{"number accepts uint8", Number(), uint8(2), true},
		{"number rejects string", Number(), "3", false},
		{"bool accepts bool", Bool(), true, true},
		{"bool rejects string", Bool(), "true", false},
		{"enum accepts member", Enum("a", "b"), "b", true},
		{"enum rejects non member", Enum("a", "b"), "c", false},
		{"enum rejects non string", Enum("a"), 1, false},
		{"any accepts nil", Any(), nil, true},
		{"string rejects nil", String(), nil, false},
		{"unknown kind rejects", Descriptor{Kind: "date"}, "x", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := tt.desc.Check(tt.value)
			if tt.ok {
				require.NoError(t, err)
			} else {
				require.Error(t, err)
			}
		})
	}
}

func TestDescriptorParse(t *testing.T) {
	t.Parallel()

	v, err := Number().Parse("2.5")
	require.NoError(t, err)
	require.Equal(t, 2.5, v)

	v, err = Bool().Parse("true")
	require.NoError(t, err)
	require.Equal(t, true, v)

	v, err = Enum("primary").Parse("primary")
	require.NoError(t, err)
	require.Equal(t, "primary", v)

	_, err = Enum("primary").Parse("secondary")
	require.Error(t, err)

	_, err = Number().Parse("abc")
	require.ErrorContains(t, err, "parse number")
}

func TestDescriptorString(t *testing.T) {
	t.Parallel()

	require.Equal(t, "string", String().String())
	require.Equal(t, "enum(primary|danger)", Enum("primary", "danger").String())
	require.Equal(t, "nil", TypeOf(nil))
	require.Equal(t, "int", TypeOf(1))
}
