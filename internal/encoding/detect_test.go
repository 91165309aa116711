package encoding_test

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"

	"github.com/MrJamesThe3rd/nomina/internal/encoding"
)

func readAll(t *testing.T, input []byte) string {
	t.Helper()

	r, _, err := encoding.Decode(bytes.NewReader(input))
	require.NoError(t, err)

	got, err := io.ReadAll(r)
	require.NoError(t, err)

	return string(got)
}

func TestDecode_UTF8Passthrough(t *testing.T) {
	input := "Cédula;Tipo;Fecha;Valor\n1020304050;Incapacidad médica;2024-04-02;3\n79888777;Año nuevo;2024-01-01;1\n"
	assert.Equal(t, input, readAll(t, []byte(input)))
}

func TestDecode_Windows1252(t *testing.T) {
	// Windows-1252 encoded "Cédula;Descripción\n": é = 0xE9, ó = 0xF3.
	latin1Bytes := []byte{
		'C', 0xE9, 'd', 'u', 'l', 'a', ';',
		'D', 'e', 's', 'c', 'r', 'i', 'p', 'c', 'i', 0xF3, 'n', '\n',
	}

	assert.Equal(t, "Cédula;Descripción\n", readAll(t, latin1Bytes))
}

func TestDecode_Windows1252Sheet(t *testing.T) {
	input := "Cédula;Monto;Fecha;Descripción\n1020304050;200.000;2024-03-28;Adelanto de nómina\n"

	encoded, err := charmap.Windows1252.NewEncoder().String(input)
	require.NoError(t, err)

	assert.Equal(t, input, readAll(t, []byte(encoded)))
}

func TestDecode_UTF8BOM(t *testing.T) {
	bom := []byte{0xEF, 0xBB, 0xBF}
	input := append(bom, []byte("Cédula;Monto\n")...)

	assert.Equal(t, "Cédula;Monto\n", readAll(t, input))
}

func TestDecode_UTF16LEBOM(t *testing.T) {
	encoded, err := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewEncoder().String("Cédula;Monto\n")
	require.NoError(t, err)

	assert.Equal(t, "Cédula;Monto\n", readAll(t, []byte(encoded)))
}

func TestDecode_Empty(t *testing.T) {
	assert.Empty(t, readAll(t, nil))
}

func TestDecode_Charset(t *testing.T) {
	latin, err := charmap.Windows1252.NewEncoder().String("Cédula;Descripción;Año\n1;Adelanto de nómina;2024\n")
	require.NoError(t, err)

	utf16, err := unicode.UTF16(unicode.BigEndian, unicode.UseBOM).NewEncoder().String("Cédula\n")
	require.NoError(t, err)

	tests := []struct {
		name  string
		input []byte
		want  encoding.Charset
	}{
		{name: "PlainUTF8", input: []byte("Cédula;Monto\n"), want: encoding.UTF8},
		{name: "UTF8BOM", input: []byte("\xEF\xBB\xBFCédula\n"), want: encoding.UTF8},
		{name: "UTF16BEBOM", input: []byte(utf16), want: encoding.UTF16BE},
		{name: "Windows1252", input: []byte(latin), want: encoding.Windows1252},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, got, err := encoding.Decode(bytes.NewReader(tt.input))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
