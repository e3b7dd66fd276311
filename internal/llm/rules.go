package llm

import "strings"

// regla es una fila de una tabla de palabras clave: si cualquiera de las
// frases aparece en el texto, gana el valor asociado. Las tablas se evalúan
// en orden y se corta en la primera coincidencia.
type regla[T any] struct {
	frases []string
	valor  T
}

func primeraCoincidencia[T any](texto string, tabla []regla[T], fallback T) T {
	for _, r := range tabla {
		for _, f := range r.frases {
			if strings.Contains(texto, f) {
				return r.valor
			}
		}
	}
	return fallback
}
