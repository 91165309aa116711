package fold_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MrJamesThe3rd/nomina/internal/fold"
)

func TestKey(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "Cédula", want: "cedula"},
		{in: "  CÉDULA ", want: "cedula"},
		{in: "Descripción", want: "descripcion"},
		{in: "Horas extra NE", want: "horas extra ne"},
		{in: "UNEXPECTED_OVERTIME", want: "unexpected overtime"},
		{in: "Horas_Extra-NE", want: "horas extra ne"},
		{in: "Incapacidad  médica", want: "incapacidad medica"},
		{in: "Sí", want: "si"},
		{in: "", want: ""},
		{in: " _- ", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, fold.Key(tt.in))
		})
	}
}
