// Package query собирает SELECT-запросы для PostgreSQL с позиционными параметрами ($1, $2, ...).
// Builder неизменяем: каждый метод возвращает копию, поэтому один базовый запрос
// можно безопасно разветвить на запрос данных и запрос количества.
package query

import (
	"fmt"
	"strings"
)

// Direction — направление сортировки.
type Direction int

const (
	Asc Direction = iota
	Desc
)

// Statement — готовый SQL и аргументы в порядке плейсхолдеров.
type Statement struct {
	SQL  string
	Args []any
}

type orderTerm struct {
	expr string
	dir  Direction
}

// Builder строит SELECT с JOIN, WHERE, ORDER BY, LIMIT и OFFSET.
type Builder struct {
	table      string
	joins      []string
	selectCols []string
	where      []Condition
	orderBy    []orderTerm
	limitVal   int64
	offsetVal  int64
}

// From создаёт Builder для таблицы (допускается алиас: "products p").
func From(table string) *Builder {
	return &Builder{table: table}
}

// LeftJoin добавляет LEFT JOIN table ON on.
func (b *Builder) LeftJoin(table, on string) *Builder {
	nb := b.clone()
	nb.joins = append(nb.joins, fmt.Sprintf("LEFT JOIN %s ON %s", table, on))
	return nb
}

// Select добавляет колонки к списку выборки.
func (b *Builder) Select(columns ...string) *Builder {
	nb := b.clone()
	nb.selectCols = append(nb.selectCols, columns...)
	return nb
}

// Where добавляет условие. Несколько условий объединяются через AND, nil игнорируется.
func (b *Builder) Where(condition Condition) *Builder {
	if condition == nil {
		return b
	}

	nb := b.clone()
	nb.where = append(nb.where, condition)
	return nb
}

// OrderBy добавляет ключ сортировки. Повторные вызовы задают вторичные ключи.
func (b *Builder) OrderBy(expr string, direction Direction) *Builder {
	nb := b.clone()
	nb.orderBy = append(nb.orderBy, orderTerm{expr: expr, dir: direction})
	return nb
}

// Limit задаёт LIMIT. Значения <= 0 означают отсутствие ограничения.
func (b *Builder) Limit(limit int64) *Builder {
	nb := b.clone()
	nb.limitVal = limit
	return nb
}

// Offset задаёт OFFSET. Значения <= 0 не выводятся.
func (b *Builder) Offset(offset int64) *Builder {
	nb := b.clone()
	nb.offsetVal = offset
	return nb
}

// Count возвращает Builder для COUNT(*) с теми же FROM, JOIN и WHERE.
// Сортировка и пагинация сбрасываются.
func (b *Builder) Count() *Builder {
	nb := b.clone()
	nb.selectCols = []string{"COUNT(*)"}
	nb.orderBy = nil
	nb.limitVal = 0
	nb.offsetVal = 0
	return nb
}

// Build собирает итоговый Statement.
func (b *Builder) Build() Statement {
	var (
		sql  strings.Builder
		args []any
	)

	sql.WriteString("SELECT ")
	if len(b.selectCols) == 0 {
		sql.WriteString("*")
	} else {
		sql.WriteString(strings.Join(b.selectCols, ", "))
	}

	sql.WriteString(" FROM ")
	sql.WriteString(b.table)

	for _, j := range b.joins {
		sql.WriteString(" ")
		sql.WriteString(j)
	}

	if len(b.where) > 0 {
		parts := make([]string, 0, len(b.where))
		for _, c := range b.where {
			fragment, condArgs := c.SQL(len(args) + 1)
			parts = append(parts, fragment)
			args = append(args, condArgs...)
		}
		sql.WriteString(" WHERE ")
		sql.WriteString(strings.Join(parts, " AND "))
	}

	if len(b.orderBy) > 0 {
		terms := make([]string, 0, len(b.orderBy))
		for _, o := range b.orderBy {
			if o.dir == Desc {
				terms = append(terms, o.expr+" DESC")
			} else {
				terms = append(terms, o.expr+" ASC")
			}
		}
		sql.WriteString(" ORDER BY ")
		sql.WriteString(strings.Join(terms, ", "))
	}

	if b.limitVal > 0 {
		args = append(args, b.limitVal)
		fmt.Fprintf(&sql, " LIMIT $%d", len(args))
	}

	if b.offsetVal > 0 {
		args = append(args, b.offsetVal)
		fmt.Fprintf(&sql, " OFFSET $%d", len(args))
	}

	return Statement{SQL: sql.String(), Args: args}
}

func (b *Builder) clone() *Builder {
	nb := &Builder{
		table:      b.table,
		joins:      make([]string, len(b.joins)),
		selectCols: make([]string, len(b.selectCols)),
		where:      make([]Condition, len(b.where)),
		orderBy:    make([]orderTerm, len(b.orderBy)),
		limitVal:   b.limitVal,
		offsetVal:  b.offsetVal,
	}
	copy(nb.joins, b.joins)
	copy(nb.selectCols, b.selectCols)
	copy(nb.where, b.where)
	copy(nb.orderBy, b.orderBy)
	return nb
}

// String возвращает запрос и аргументы для отладки.
func (b *Builder) String() string {
	stmt := b.Build()
	return fmt.Sprintf("SQL: %s\nArgs: %v", stmt.SQL, stmt.Args)
}
