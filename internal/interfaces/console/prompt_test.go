package console_test

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-console/internal/interfaces/console"
)

func TestCoerceNumber(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"zero", "0"},
		{" Cinco ", "5"},
		{"TRÊS", "3"},
		{"diez", "10"},
		{"42", "42"},
		{"cincuenta", "cincuenta"},
		{"cinco mil", "cinco mil"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, console.CoerceNumber(tt.in), tt.in)
	}
}

func TestPrompter_IntRepregunta(t *testing.T) {
	out := &bytes.Buffer{}
	p := console.NewPrompter(strings.NewReader("\nabc\ndos\n"), out)

	n, err := p.Int(context.Background(), "Cantidad: ")
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, "Cantidad: Campo obligatorio. Ingrese un número: Entrada inválida. Ingrese un número válido: ", out.String())
}

func TestPrompter_DecimalConComa(t *testing.T) {
	p := console.NewPrompter(strings.NewReader("1.234\n2,50\n"), io.Discard)

	d, err := p.Decimal(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, "1.234", d.String())

	d, err = p.Decimal(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, "2.5", d.String())
}

func TestPrompter_FinDeEntrada(t *testing.T) {
	p := console.NewPrompter(strings.NewReader(""), io.Discard)

	_, err := p.Int(context.Background(), "Opción: ")
	assert.ErrorIs(t, err, io.EOF)
}

// La cancelación del contexto libera una lectura bloqueada.
func TestPrompter_CancelacionConLecturaBloqueada(t *testing.T) {
	r, w := io.Pipe()
	t.Cleanup(func() { _ = w.Close() })
	p := console.NewPrompter(r, io.Discard)

	ctx, cancel := context.WithCancel(context.Background())
	time.AfterFunc(20*time.Millisecond, cancel)

	_, err := p.Int(ctx, "Opción: ")
	assert.ErrorIs(t, err, context.Canceled)
}

// Una línea leída por adelantado no se pierde tras una cancelación.
func TestPrompter_ConservaLineaTrasCancelacion(t *testing.T) {
	r, w := io.Pipe()
	t.Cleanup(func() { _ = w.Close() })
	p := console.NewPrompter(r, io.Discard)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := p.Line(ctx, "")
	require.ErrorIs(t, err, context.Canceled)

	go func() { _, _ = io.WriteString(w, "7\n") }()
	n, err := p.Int(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, 7, n)
}
