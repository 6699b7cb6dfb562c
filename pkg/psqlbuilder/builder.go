package psqlbuilder

import "github.com/Masterminds/squirrel"

// Builders do squirrel já configurados com placeholders do Postgres ($1, $2, ...)

var builder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// Select cria um SELECT com placeholder Dollar
func Select(columns ...string) squirrel.SelectBuilder {
	return builder.Select(columns...)
}

// Insert cria um INSERT com placeholder Dollar
func Insert(into string) squirrel.InsertBuilder {
	return builder.Insert(into)
}

// Update cria um UPDATE com placeholder Dollar
func Update(table string) squirrel.UpdateBuilder {
	return builder.Update(table)
}

// Delete cria um DELETE com placeholder Dollar
func Delete(from string) squirrel.DeleteBuilder {
	return builder.Delete(from)
}
