package database

import (
	"strings"

	"gorm.io/gorm/schema"
)

// namingConvention names generated constraints the same way on every engine:
//
//	ix_<table>_<column>
//	uq_<table>_<column>
//	ck_<table>_<name>
//	fk_<table>_<column>_<referred_table>
//
// Table and column names themselves come from the embedded gorm strategy.
type namingConvention struct {
	schema.NamingStrategy
}

// NamingConvention returns the schema.Namer used for every connection
func NamingConvention() schema.Namer {
	return namingConvention{}
}

// RelationshipFKName names the foreign key after the owning table, its column and the referenced table
func (n namingConvention) RelationshipFKName(rel schema.Relationship) string {
	for _, ref := range rel.References {
		if ref.ForeignKey == nil || ref.PrimaryKey == nil {
			continue
		}
		return join("fk", ref.ForeignKey.Schema.Table, ref.ForeignKey.DBName, ref.PrimaryKey.Schema.Table)
	}
	return n.NamingStrategy.RelationshipFKName(rel)
}

func (n namingConvention) IndexName(table, column string) string {
	return join("ix", table, column)
}

func (n namingConvention) UniqueName(table, column string) string {
	return join("uq", table, column)
}

func (n namingConvention) CheckerName(table, column string) string {
	return join("ck", table, column)
}

func join(prefix string, parts ...string) string {
	return prefix + "_" + strings.Join(parts, "_")
}
