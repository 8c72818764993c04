package utils

import "strings"

// JoinWithAnd joins a slice of strings with AND operator
func JoinWithAnd(clauses []string) string {
	return strings.Join(clauses, " AND ")
}

// WhereClause trả "" khi không có điều kiện nào
func WhereClause(clauses []string) string {
	if len(clauses) == 0 {
		return ""
	}
	return " WHERE " + JoinWithAnd(clauses)
}
