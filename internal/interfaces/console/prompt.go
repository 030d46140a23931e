package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"

	"github.com/shopspring/decimal"
)

// numberWords palabras numéricas aceptadas como entrada (español y portugués).
var numberWords = map[string]string{
	"zero": "0", "cero": "0",
	"um": "1", "uma": "1", "uno": "1", "una": "1",
	"dois": "2", "duas": "2", "dos": "2",
	"três": "3", "tres": "3",
	"quatro": "4", "cuatro": "4",
	"cinco": "5",
	"seis": "6",
	"sete": "7", "siete": "7",
	"oito": "8", "ocho": "8",
	"nove": "9", "nueve": "9",
	"dez": "10", "diez": "10",
	"cem": "100", "cien": "100",
	"mil": "1000",
}

// CoerceNumber convierte una palabra numérica completa en dígitos; el resto pasa igual.
func CoerceNumber(s string) string {
	s = strings.TrimSpace(s)
	if d, ok := numberWords[strings.ToLower(s)]; ok {
		return d
	}
	return s
}

// Prompter lee líneas de la entrada y re-pregunta ante valores numéricos inválidos.
// Fin de la entrada ⇒ io.EOF; contexto cancelado ⇒ ctx.Err(), aunque la lectura siga bloqueada.
type Prompter struct {
	in    *bufio.Scanner
	out   io.Writer
	once  sync.Once
	lines chan scanned
}

type scanned struct {
	text string
	err  error
}

// NewPrompter construye el lector sobre in, escribiendo los mensajes en out.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewScanner(in), out: out}
}

// read lanza una sola vez la goroutine que consume la entrada línea a línea.
func (p *Prompter) read() <-chan scanned {
	p.once.Do(func() {
		p.lines = make(chan scanned)
		go func() {
			defer close(p.lines)
			for p.in.Scan() {
				p.lines <- scanned{text: p.in.Text()}
			}
			if err := p.in.Err(); err != nil {
				p.lines <- scanned{err: err}
			}
		}()
	})
	return p.lines
}

// Line muestra label y devuelve la línea leída sin espacios en los extremos.
func (p *Prompter) Line(ctx context.Context, label string) (string, error) {
	if label != "" {
		fmt.Fprint(p.out, label)
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r, ok := <-p.read():
		if !ok {
			return "", io.EOF
		}
		if r.err != nil {
			return "", r.err
		}
		return strings.TrimSpace(r.text), nil
	}
}

// Int lee un entero; re-pregunta si la línea está vacía o no es numérica.
func (p *Prompter) Int(ctx context.Context, label string) (int, error) {
	s, err := p.Line(ctx, label)
	for err == nil {
		if s == "" {
			s, err = p.Line(ctx, "Campo obligatorio. Ingrese un número: ")
			continue
		}
		n, convErr := strconv.Atoi(CoerceNumber(s))
		if convErr == nil {
			return n, nil
		}
		s, err = p.Line(ctx, "Entrada inválida. Ingrese un número válido: ")
	}
	return 0, err
}

// Decimal lee un número decimal; acepta coma como separador.
func (p *Prompter) Decimal(ctx context.Context, label string) (decimal.Decimal, error) {
	s, err := p.Line(ctx, label)
	for err == nil {
		if s == "" {
			s, err = p.Line(ctx, "Campo obligatorio. Ingrese un número: ")
			continue
		}
		d, convErr := decimal.NewFromString(strings.ReplaceAll(CoerceNumber(s), ",", "."))
		if convErr == nil {
			return d, nil
		}
		s, err = p.Line(ctx, "Entrada inválida. Ingrese un número válido: ")
	}
	return decimal.Zero, err
}

// isEOF indica fin de la entrada.
func isEOF(err error) bool {
	return errors.Is(err, io.EOF)
}
