package query

import (
	"fmt"
	"strings"
)

// Condition — условие WHERE.
type Condition interface {
	// SQL возвращает фрагмент и его аргументы. argIndex — номер первого плейсхолдера ($argIndex).
	SQL(argIndex int) (string, []any)
}

type compareCondition struct {
	field string
	op    string
	value any
}

func (c *compareCondition) SQL(argIndex int) (string, []any) {
	return fmt.Sprintf("%s %s $%d", c.field, c.op, argIndex), []any{c.value}
}

// Eq — field = value.
func Eq(field string, value any) Condition {
	return &compareCondition{field: field, op: "=", value: value}
}

// Gte — field >= value.
func Gte(field string, value any) Condition {
	return &compareCondition{field: field, op: ">=", value: value}
}

// Lt — field < value.
func Lt(field string, value any) Condition {
	return &compareCondition{field: field, op: "<", value: value}
}

// Contains — регистронезависимый поиск подстроки: field ILIKE '%value%'.
// Символы %, _ и \ в value экранируются и сравниваются буквально.
func Contains(field, value string) Condition {
	return &compareCondition{field: field, op: "ILIKE", value: "%" + EscapeLike(value) + "%"}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// EscapeLike экранирует метасимволы LIKE (экранирующий символ по умолчанию в PostgreSQL — \).
func EscapeLike(s string) string {
	return likeEscaper.Replace(s)
}

type isNullCondition struct {
	field string
	not   bool
}

func (c *isNullCondition) SQL(int) (string, []any) {
	if c.not {
		return c.field + " IS NOT NULL", nil
	}
	return c.field + " IS NULL", nil
}

// IsNull — field IS NULL.
func IsNull(field string) Condition {
	return &isNullCondition{field: field}
}

// IsNotNull — field IS NOT NULL.
func IsNotNull(field string) Condition {
	return &isNullCondition{field: field, not: true}
}

type groupCondition struct {
	sep   string
	conds []Condition
}

func (c *groupCondition) SQL(argIndex int) (string, []any) {
	var (
		parts = make([]string, 0, len(c.conds))
		args  []any
	)

	for _, cond := range c.conds {
		fragment, condArgs := cond.SQL(argIndex + len(args))
		parts = append(parts, fragment)
		args = append(args, condArgs...)
	}

	return "(" + strings.Join(parts, c.sep) + ")", args
}

// And объединяет условия через AND. nil-условия отбрасываются.
// Пустой список даёт nil, одно условие возвращается как есть.
func And(conds ...Condition) Condition {
	return group(" AND ", conds)
}

// Or объединяет условия через OR. Правила те же, что у And.
func Or(conds ...Condition) Condition {
	return group(" OR ", conds)
}

func group(sep string, conds []Condition) Condition {
	filtered := make([]Condition, 0, len(conds))
	for _, c := range conds {
		if c != nil {
			filtered = append(filtered, c)
		}
	}

	switch len(filtered) {
	case 0:
		return nil
	case 1:
		return filtered[0]
	default:
		return &groupCondition{sep: sep, conds: filtered}
	}
}
