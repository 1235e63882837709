package main

import (
	"league/internal/infra/persistence/model"

	"gorm.io/gen"
)

// Generates type-safe query helpers for the review schema models.
func main() {
	models := []any{
		model.MemberModel{},
		model.StoreModel{},
		model.ReviewModel{},
	}

	gen := gen.NewGenerator(gen.Config{
		OutPath:       "./internal/infra/persistence/postgres/query",
		Mode:          gen.WithDefaultQuery | gen.WithQueryInterface,
		FieldNullable: true,
	})

	gen.ApplyBasic(models...)

	gen.Execute()
}
