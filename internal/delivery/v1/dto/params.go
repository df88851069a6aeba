package dto

import (
	"strings"

	"github.com/DRSN-tech/bifl-catalog/internal/usecase"
	"github.com/spf13/cast"
)

const pageSizeAll = "all"

// ParsePage разбирает номер страницы из строки или числа.
// Нечисловые и неположительные значения дают 0, дальше их нормализует usecase.
func ParsePage(v any) int {
	n, err := cast.ToIntE(trim(v))
	if err != nil || n < 1 {
		return 0
	}
	return n
}

// ParsePageSize понимает число или "all". Всё остальное даёт 0, то есть размер по умолчанию.
func ParsePageSize(v any) int {
	v = trim(v)
	if s, ok := v.(string); ok && strings.EqualFold(s, pageSizeAll) {
		return usecase.PageSizeAll
	}

	n, err := cast.ToIntE(v)
	if err != nil || n < 1 {
		return 0
	}
	return n
}

// trim убирает пробелы и ведущие нули, чтобы "010" разбиралось как десятичное 10.
func trim(v any) any {
	s, ok := v.(string)
	if !ok {
		return v
	}

	s = strings.TrimSpace(s)
	if t := strings.TrimLeft(s, "0"); t != s {
		if t == "" || t[0] == '.' {
			t = "0" + t
		}
		s = t
	}
	return s
}
