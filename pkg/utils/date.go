package utils

import (
	"time"

	"github.com/pkg/errors"
)

const dateLayout = "2006-01-02"

// ParseDate converte uma data no formato 2006-01-02. Uma data vazia é
// inválida: toda transação precisa de uma data para entrar na tendência
// diária.
func ParseDate(dateStr string) (*time.Time, error) {
	if dateStr == "" {
		return nil, errors.New("data vazia")
	}

	date, err := time.Parse(dateLayout, dateStr)
	if err != nil {
		return nil, errors.Wrapf(err, "data %q fora do formato %s", dateStr, dateLayout)
	}

	return &date, nil
}
